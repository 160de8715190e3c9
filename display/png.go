package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/flavioheleno/monocanvas/image1bit"
)

// PNGSink is a virtual device that keeps a full frame and rewrites Path as a
// two-colour PNG after every Draw. The file is replaced atomically.
type PNGSink struct {
	Path string

	// Scale enlarges every pixel to Scale×Scale in the output (default: 1).
	Scale int

	mu    sync.Mutex
	frame *image1bit.HorizontalMSB
}

// NewPNGSink creates a sink of the given size writing to path.
func NewPNGSink(path string, w, h int) (*PNGSink, error) {
	if path == "" {
		return nil, errors.New("display: PNG sink needs a path")
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("display: invalid PNG size %dx%d", w, h)
	}
	return &PNGSink{Path: path, frame: image1bit.NewHorizontalMSB(image.Rect(0, 0, w, h))}, nil
}

// Bounds returns the frame size.
func (s *PNGSink) Bounds() image.Rectangle {
	return s.frame.Rect
}

// Draw copies the r region from src and writes the whole frame.
func (s *PNGSink) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r = r.Intersect(s.frame.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.frame.Set(x, y, src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y))
		}
	}
	return s.write()
}

// Frame returns a copy of the last frame drawn.
func (s *PNGSink) Frame() *image1bit.HorizontalMSB {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image1bit.NewHorizontalMSB(s.frame.Rect)
	out.CopyFrom(s.frame)
	return out
}

var pngPalette = color.Palette{color.Black, color.White}

func (s *PNGSink) write() error {
	scale := max(s.Scale, 1)
	b := s.frame.Rect
	img := image.NewPaletted(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), pngPalette)
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			if s.frame.BitAt(b.Min.X+x/scale, b.Min.Y+y/scale) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".frame-*.png")
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("display: encode %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
