//go:build !linux

package display

import (
	"errors"
	"image"
)

// Framebuffer is only available on Linux.
type Framebuffer struct{}

// OpenFramebuffer always fails outside Linux.
func OpenFramebuffer(path string, w, h int, log Logger) (*Framebuffer, error) {
	return nil, errors.New("display: framebuffer is only supported on linux")
}

// Bounds returns an empty rectangle.
func (f *Framebuffer) Bounds() image.Rectangle { return image.Rectangle{} }

// Draw always fails outside Linux.
func (f *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	return errors.New("display: framebuffer is only supported on linux")
}

// Close does nothing.
func (f *Framebuffer) Close() error { return nil }
