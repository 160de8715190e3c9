package main

import (
	"github.com/sirupsen/logrus"
)

// logrusLogger adapts logrus to display.Logger, carrying the component as a
// field.
type logrusLogger struct {
	l *logrus.Logger
}

func (g logrusLogger) Infof(component, format string, args ...any) {
	g.l.WithField("component", component).Infof(format, args...)
}

func (g logrusLogger) Errorf(component, format string, args ...any) {
	g.l.WithField("component", component).Errorf(format, args...)
}
