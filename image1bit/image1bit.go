// Package image1bit provides a 1-bit monochrome image format for small pixel displays.
//
// Pixels are stored in horizontal MSB-first packing where each byte contains 8 pixels.
// Bit 7 represents the leftmost pixel of the byte, bit 0 the rightmost.
// This package provides the Bit color type and HorizontalMSB image implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel value.
type Bit bool

const (
	// On is a set pixel (lit on an OLED).
	On Bit = true
	// Off is a cleared pixel.
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA: On is white, Off is opaque black.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// Standard luminance: 0.299R + 0.587G + 0.114B, thresholded at half scale.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// HorizontalMSB is a 1-bit image where pixels are stored in horizontal MSB-first packing.
// Each row is padded to a whole number of bytes.
type HorizontalMSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalMSB creates a new HorizontalMSB image with the specified bounds.
func NewHorizontalMSB(r image.Rectangle) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalMSB{Rect: r}
	}
	stride := (w + 7) / 8
	return &HorizontalMSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *HorizontalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *HorizontalMSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *HorizontalMSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
// Out of bounds pixels read as Off.
func (p *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *HorizontalMSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// Out of bounds writes are ignored.
func (p *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Fill sets every pixel to b.
func (p *HorizontalMSB) Fill(b Bit) {
	v := byte(0)
	if b {
		v = 0xFF
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// CopyFrom copies the pixels of src into p. Both images must share bounds.
func (p *HorizontalMSB) CopyFrom(src *HorizontalMSB) {
	if p.Rect != src.Rect {
		panic("image1bit: CopyFrom bounds mismatch")
	}
	copy(p.Pix, src.Pix)
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: each byte contains 8 pixels horizontally, bit 7 = leftmost.
func (p *HorizontalMSB) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx&7)
	return
}
