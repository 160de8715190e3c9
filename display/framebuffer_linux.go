//go:build linux

package display

import (
	"errors"
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var consoles = []string{"/dev/tty", "/dev/tty0"}

// Framebuffer shows a logical WxH monochrome frame on a Linux framebuffer,
// scaled with nearest-neighbour sampling to fill the screen.
type Framebuffer struct {
	dev  *fb.Device
	rect image.Rectangle
	log  Logger

	graphics bool // Console switched to KD_GRAPHICS
}

// OpenFramebuffer opens the framebuffer at path (default: /dev/fb0) and
// switches the active console to graphics mode so the text cursor does not
// draw over the frame. Failing to switch the console is logged, not fatal.
func OpenFramebuffer(path string, w, h int, log Logger) (*Framebuffer, error) {
	if path == "" {
		path = "/dev/fb0"
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("display: invalid framebuffer size %dx%d", w, h)
	}
	if log == nil {
		log = NoopLogger{}
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("display: open %s: %w", path, err)
	}
	b := dev.Bounds()
	log.Infof("fb", "framebuffer open, bounds=%dx%d", b.Dx(), b.Dy())

	f := &Framebuffer{dev: dev, rect: image.Rect(0, 0, w, h), log: log}
	if err := setConsoleMode(kdGraphics); err != nil {
		log.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	} else {
		f.graphics = true
		log.Infof("tty", "KD_GRAPHICS set")
	}
	return f, nil
}

// Bounds returns the logical frame size.
func (f *Framebuffer) Bounds() image.Rectangle {
	return f.rect
}

// Draw scales the r region of src, starting at sp, onto the matching screen
// area.
func (f *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if f.dev == nil {
		return errors.New("display: framebuffer closed")
	}
	r = r.Intersect(f.rect)
	if r.Empty() {
		return nil
	}
	dr := f.screenRect(r)
	sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}
	xdraw.NearestNeighbor.Scale(f.dev, dr, src, sr, xdraw.Src, nil)
	return nil
}

// screenRect maps a logical rectangle to device pixels.
func (f *Framebuffer) screenRect(r image.Rectangle) image.Rectangle {
	b := f.dev.Bounds()
	w, h := f.rect.Dx(), f.rect.Dy()
	return image.Rect(
		b.Min.X+r.Min.X*b.Dx()/w, b.Min.Y+r.Min.Y*b.Dy()/h,
		b.Min.X+r.Max.X*b.Dx()/w, b.Min.Y+r.Max.Y*b.Dy()/h,
	)
}

// Close restores the console text mode and releases the framebuffer.
func (f *Framebuffer) Close() error {
	var err error
	if f.graphics {
		if err = setConsoleMode(kdText); err != nil {
			f.log.Errorf("tty", "KD_TEXT failed: %v", err)
		}
		f.graphics = false
	}
	if f.dev != nil {
		f.dev.Close()
		f.dev = nil
	}
	return err
}

func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range consoles {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE on %s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}
