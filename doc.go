// Package monocanvas provides an in-memory 1-bit canvas for small monochrome
// displays such as 128×64 SSD1306 OLED modules.
//
// The canvas owns a bit-packed framebuffer (see package image1bit) and offers
// the primitives the widget package draws with: pixels, lines, rectangles,
// circles, quarter-circle arcs and cursor-based text printing through any
// golang.org/x/image/font face.
//
// # Canvas Characteristics
//
// - 1 bit per pixel, MSB-first horizontal packing (GFXcanvas1 compatible)
// - Signed 16-bit coordinate space; writes outside the canvas are dropped
// - Text cursor with transparent background and optional wrapping
// - Built-in 5×7 font in a 6×8 cell (glyph.Classic), TrueType/OpenType optional
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/monocanvas"
//		"github.com/flavioheleno/monocanvas/image1bit"
//		"github.com/flavioheleno/monocanvas/widget"
//	)
//
//	func main() {
//		c, _ := monocanvas.New(nil) // 128×64
//
//		_ = c.Update(func(c *monocanvas.Canvas) error {
//			c.Clear()
//			c.DrawRect(0, 0, c.Width(), c.Height(), image1bit.On)
//			return widget.ProgressBar(c, 42, widget.Rect{X: 4, Y: 4, W: 120, H: 14, Scale: true})
//		})
//	}
//
// # Frames and Concurrency
//
// Drawing methods are plain, unsynchronized calls. A frame is composed inside
// Update, which holds the canvas lock for the duration of the callback and then
// advances the frame generation. Readers take a consistent copy of the buffer
// with Snapshot, which waits for any Update in progress:
//
//	frame := c.Snapshot(nil)
//
// The display package uses Generation and Snapshot to decide when to blit and
// what to send, so a refresh never transfers a half-drawn frame.
//
// # Text
//
// Print draws one rune at the cursor and advances it by the glyph advance.
// '\n' returns to column 0 on the next line. Printf and the io.Writer
// implementation format into the same cursor:
//
//	c.SetCursor(0, 56)
//	c.Printf("%.3g V", 3.3)
//
// The glyph color is set with SetTextColor; the background is never painted,
// so text drawn Off over a filled area cuts through it.
//
// # Coordinates
//
// The origin is the top-left pixel. The canvas silently drops pixels outside
// its bounds; widgets do not clip and callers are expected to lay them out
// inside the canvas.
package monocanvas
