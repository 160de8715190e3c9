package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvLayout   = "MONODASH_LAYOUT"
	EnvDevice   = "MONODASH_DEVICE"
	EnvLogLevel = "MONODASH_LOG_LEVEL"
	EnvPeriod   = "MONODASH_PERIOD"
	EnvSplash   = "MONODASH_SPLASH"
	EnvRotated  = "MONODASH_ROTATED"
)

// config holds the flag defaults read from the environment.
type config struct {
	Layout   string
	Device   string
	LogLevel string
	Period   time.Duration
	Splash   time.Duration
	Rotated  bool
}

func configFromEnv() (config, error) {
	cfg := config{
		Layout:   os.Getenv(EnvLayout),
		Device:   os.Getenv(EnvDevice),
		LogLevel: os.Getenv(EnvLogLevel),
		Period:   time.Second,
	}
	if cfg.Layout == "" {
		cfg.Layout = "dashboard.yaml"
	}
	if cfg.Device == "" {
		cfg.Device = deviceSSD1306I2C
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	var err error
	if cfg.Period, err = durationEnv(EnvPeriod, cfg.Period); err != nil {
		return config{}, err
	}
	if cfg.Splash, err = durationEnv(EnvSplash, 0); err != nil {
		return config{}, err
	}
	if raw := os.Getenv(EnvRotated); raw != "" {
		cfg.Rotated, err = strconv.ParseBool(raw)
		if err != nil {
			return config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvRotated, raw, err)
		}
	}
	return cfg, nil
}

func durationEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (got %q): %w", name, raw, err)
	}
	return d, nil
}
