package monocanvas

import "github.com/flavioheleno/monocanvas/image1bit"

// Quadrant masks for DrawCircleHelper.
const (
	QuadTopLeft     uint8 = 0x1
	QuadTopRight    uint8 = 0x2
	QuadBottomRight uint8 = 0x4
	QuadBottomLeft  uint8 = 0x8
)

// DrawPixel sets a single pixel. Out of bounds coordinates are ignored.
func (c *Canvas) DrawPixel(x, y int, b image1bit.Bit) {
	c.img.SetBit(x, y, b)
}

// FillScreen sets every pixel to b.
func (c *Canvas) FillScreen(b image1bit.Bit) {
	c.img.Fill(b)
}

// Clear turns every pixel off and homes the cursor.
func (c *Canvas) Clear() {
	c.img.Fill(image1bit.Off)
	c.SetCursor(0, 0)
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, b image1bit.Bit) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		c.DrawFastVLine(x0, y0, y1-y0+1, b)
		return
	}
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		c.DrawFastHLine(x0, y0, x1-x0+1, b)
		return
	}

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			c.img.SetBit(y0, x0, b)
		} else {
			c.img.SetBit(x0, y0, b)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// DrawFastHLine draws a horizontal line of w pixels starting at (x, y).
// A negative w extends to the left of x.
func (c *Canvas) DrawFastHLine(x, y, w int, b image1bit.Bit) {
	if w < 0 {
		w = -w
		x -= w - 1
	}
	for i := 0; i < w; i++ {
		c.img.SetBit(x+i, y, b)
	}
}

// DrawFastVLine draws a vertical line of h pixels starting at (x, y).
// A negative h extends above y.
func (c *Canvas) DrawFastVLine(x, y, h int, b image1bit.Bit) {
	if h < 0 {
		h = -h
		y -= h - 1
	}
	for i := 0; i < h; i++ {
		c.img.SetBit(x, y+i, b)
	}
}

// DrawRect draws a rectangle outline.
func (c *Canvas) DrawRect(x, y, w, h int, b image1bit.Bit) {
	c.DrawFastHLine(x, y, w, b)
	c.DrawFastHLine(x, y+h-1, w, b)
	c.DrawFastVLine(x, y, h, b)
	c.DrawFastVLine(x+w-1, y, h, b)
}

// FillRect fills a rectangle column by column. A non-positive width draws
// nothing; a negative height fills upwards from y.
func (c *Canvas) FillRect(x, y, w, h int, b image1bit.Bit) {
	for i := x; i < x+w; i++ {
		c.DrawFastVLine(i, y, h, b)
	}
}

// DrawCircle draws a circle outline using the midpoint circle algorithm.
func (c *Canvas) DrawCircle(x0, y0, r int, b image1bit.Bit) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	c.img.SetBit(x0, y0+r, b)
	c.img.SetBit(x0, y0-r, b)
	c.img.SetBit(x0+r, y0, b)
	c.img.SetBit(x0-r, y0, b)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		c.img.SetBit(x0+x, y0+y, b)
		c.img.SetBit(x0-x, y0+y, b)
		c.img.SetBit(x0+x, y0-y, b)
		c.img.SetBit(x0-x, y0-y, b)
		c.img.SetBit(x0+y, y0+x, b)
		c.img.SetBit(x0-y, y0+x, b)
		c.img.SetBit(x0+y, y0-x, b)
		c.img.SetBit(x0-y, y0-x, b)
	}
}

// DrawCircleHelper draws the quarter circles selected by the quadrant mask
// (QuadTopLeft, QuadTopRight, QuadBottomRight, QuadBottomLeft). The four
// axis points of the circle are not drawn.
func (c *Canvas) DrawCircleHelper(x0, y0, r int, quadrants uint8, b image1bit.Bit) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if quadrants&QuadBottomRight != 0 {
			c.img.SetBit(x0+x, y0+y, b)
			c.img.SetBit(x0+y, y0+x, b)
		}
		if quadrants&QuadTopRight != 0 {
			c.img.SetBit(x0+x, y0-y, b)
			c.img.SetBit(x0+y, y0-x, b)
		}
		if quadrants&QuadBottomLeft != 0 {
			c.img.SetBit(x0-y, y0+x, b)
			c.img.SetBit(x0-x, y0+y, b)
		}
		if quadrants&QuadTopLeft != 0 {
			c.img.SetBit(x0-y, y0-x, b)
			c.img.SetBit(x0-x, y0-y, b)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
