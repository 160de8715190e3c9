// Package display moves canvas frames onto physical and virtual screens.
//
// A Task owns the refresh cycle: it clears the device, optionally shows a
// splash screen and then polls the canvas on a fixed period, sending only the
// byte-aligned region that changed since the last transfer.
//
// Sinks implement Drawer:
//
//   - SSD1306 over I²C or SPI (periph.io), see OpenSSD1306
//   - SSD1322 over SPI, lit pixels drawn at a configurable grey level
//   - the Linux framebuffer, scaled to the screen, see OpenFramebuffer
//   - PNGSink, which writes every frame to a file
//
// Hardware initialisation can be retried with OpenRetry.
package display

import (
	"image"
)

// Drawer is a device that accepts frames. It is the subset of periph's
// display.Drawer used by Task, so periph display drivers satisfy it as is.
type Drawer interface {
	// Bounds returns the device size in pixels.
	Bounds() image.Rectangle
	// Draw copies the r region of the device from src, starting at sp.
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
}

// Logger receives diagnostics. Component is a short tag such as "display".
type Logger interface {
	Infof(component, format string, args ...any)
	Errorf(component, format string, args ...any)
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...any)  {}
func (NoopLogger) Errorf(component, format string, args ...any) {}

const component = "display"
