package monocanvas

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/flavioheleno/monocanvas/glyph"
	"github.com/flavioheleno/monocanvas/image1bit"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Default canvas dimensions, matching the common 128x64 SSD1306 module.
const (
	DefaultWidth  = 128
	DefaultHeight = 64
)

// maxDimension keeps every coordinate representable as a signed 16-bit value.
const maxDimension = 1<<15 - 1

// Opts is the configuration for a Canvas.
type Opts struct {
	W int // Width (default: 128)
	H int // Height (default: 64)

	// Face used for text printing (default: glyph.Classic).
	Face font.Face

	// NoWrap disables wrapping text at the right edge.
	NoWrap bool
}

// Canvas is an in-memory monochrome bitmap with drawing primitives and a
// text cursor.
//
// Drawing methods are not synchronized individually. A frame is composed
// inside Update, which holds the canvas lock, so that Snapshot never observes
// a partially drawn frame.
type Canvas struct {
	mu  sync.Mutex
	img *image1bit.HorizontalMSB
	gen atomic.Uint64

	face      font.Face
	ascent    int
	lineH     int
	cursorX   int
	cursorY   int
	textColor image1bit.Bit
	wrap      bool
}

// New creates a cleared canvas.
//
// opts can be nil to use defaults (128x64, classic font).
func New(opts *Opts) (*Canvas, error) {
	if opts == nil {
		opts = &Opts{W: DefaultWidth, H: DefaultHeight}
	}
	w, h := opts.W, opts.H
	if w == 0 && h == 0 {
		w, h = DefaultWidth, DefaultHeight
	}
	if w <= 0 || w > maxDimension {
		return nil, fmt.Errorf("monocanvas: width must be between 1 and %d", maxDimension)
	}
	if h <= 0 || h > maxDimension {
		return nil, fmt.Errorf("monocanvas: height must be between 1 and %d", maxDimension)
	}

	c := &Canvas{
		img:       image1bit.NewHorizontalMSB(image.Rect(0, 0, w, h)),
		textColor: image1bit.On,
		wrap:      !opts.NoWrap,
	}
	face := opts.Face
	if face == nil {
		face = glyph.Classic
	}
	if err := c.SetFace(face); err != nil {
		return nil, err
	}
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Bounds returns the canvas bounds.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Image returns the backing buffer. Readers running concurrently with
// drawing should use Snapshot instead.
func (c *Canvas) Image() *image1bit.HorizontalMSB { return c.img }

// Update runs fn with the canvas locked and then publishes the frame by
// advancing the generation counter. The error of fn is returned as is.
func (c *Canvas) Update(fn func(*Canvas) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := fn(c)
	c.gen.Add(1)
	return err
}

// Generation returns the number of frames published through Update.
func (c *Canvas) Generation() uint64 { return c.gen.Load() }

// Snapshot copies the canvas into dst under the canvas lock and returns it.
// A new image is allocated when dst is nil or has different bounds.
func (c *Canvas) Snapshot(dst *image1bit.HorizontalMSB) *image1bit.HorizontalMSB {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dst == nil || dst.Rect != c.img.Rect {
		dst = image1bit.NewHorizontalMSB(c.img.Rect)
	}
	dst.CopyFrom(c.img)
	return dst
}

// SetFace sets the font face used by Print.
func (c *Canvas) SetFace(face font.Face) error {
	if face == nil {
		return errors.New("monocanvas: nil font face")
	}
	m := face.Metrics()
	c.face = face
	c.ascent = m.Ascent.Ceil()
	c.lineH = m.Height.Ceil()
	if c.lineH <= 0 {
		c.lineH = glyph.LineHeight
	}
	return nil
}

// Face returns the current font face.
func (c *Canvas) Face() font.Face { return c.face }

// SetCursor moves the text cursor to the top-left corner of the next glyph cell.
func (c *Canvas) SetCursor(x, y int) {
	c.cursorX = x
	c.cursorY = y
}

// CursorX returns the text cursor column.
func (c *Canvas) CursorX() int { return c.cursorX }

// CursorY returns the text cursor row.
func (c *Canvas) CursorY() int { return c.cursorY }

// SetTextColor sets the glyph color. The background is always transparent.
func (c *Canvas) SetTextColor(b image1bit.Bit) { c.textColor = b }

// TextColor returns the glyph color.
func (c *Canvas) TextColor() image1bit.Bit { return c.textColor }

// SetTextWrap enables or disables wrapping at the right edge.
func (c *Canvas) SetTextWrap(wrap bool) { c.wrap = wrap }

// Print draws one rune at the cursor and advances it.
//
// '\n' moves the cursor to column 0 of the next line and '\r' is ignored.
// Runes missing from the face are printed as '?'.
func (c *Canvas) Print(r rune) {
	switch r {
	case '\n':
		c.cursorX = 0
		c.cursorY += c.lineH
		return
	case '\r':
		return
	}

	adv, ok := c.face.GlyphAdvance(r)
	if !ok {
		r = '?'
		adv, _ = c.face.GlyphAdvance(r)
	}
	w := adv.Ceil()
	if c.wrap && c.cursorX+w > c.Width() {
		c.cursorX = 0
		c.cursorY += c.lineH
	}

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.textColor),
		Face: c.face,
		Dot:  fixed.P(c.cursorX, c.cursorY+c.ascent),
	}
	d.DrawString(string(r))
	c.cursorX += w
}

// PrintString prints every rune of s.
func (c *Canvas) PrintString(s string) {
	for _, r := range s {
		c.Print(r)
	}
}

// Write prints p as UTF-8 text. It never fails and implements io.Writer.
func (c *Canvas) Write(p []byte) (int, error) {
	c.PrintString(string(p))
	return len(p), nil
}

// Printf formats according to a format specifier and prints the result.
func (c *Canvas) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c, format, args...)
}
