package widget

import (
	"fmt"
	"math"

	"github.com/flavioheleno/monocanvas"
	"github.com/flavioheleno/monocanvas/image1bit"
)

// Needle sweep: value 0 points left (-π/2), full scale points right (+π/2).
const (
	needleSweep  = 3.1415
	needleOffset = 1.5787
)

// Gauge draws a semicircular dial centred at (d.X, d.Y) with a needle at
// value.
//
// The needle angle is normalised by hi alone, so lo only affects the
// label; a dial with lo != 0 still reads 0 at the far left. With Scale set,
// lo and hi are printed at the ends of the arc and value above the pivot.
func Gauge(c Canvas, lo, hi, value float64, d Dial) error {
	if hi == 0 {
		return fmt.Errorf("widget: gauge full scale %g: %w", hi, ErrEmptyRange)
	}

	c.DrawCircleHelper(d.X, d.Y, d.R, monocanvas.QuadTopLeft, image1bit.On)
	c.DrawCircleHelper(d.X, d.Y, d.R, monocanvas.QuadTopRight, image1bit.On)
	c.DrawPixel(d.X, d.Y-d.R, image1bit.On)
	c.DrawCircle(d.X, d.Y-1, 4, image1bit.On)
	c.DrawLine(d.X-d.R, d.Y, d.X+d.R, d.Y, image1bit.On)

	x2, y2 := needle(d, value/hi)
	c.DrawLine(d.X, d.Y, x2, y2, image1bit.On)

	if !d.Scale {
		return nil
	}
	c.SetCursor(d.X-d.R+4, d.Y-8)
	c.Printf(labelFormat, lo)
	c.SetCursor(d.X+d.R-20, d.Y-8)
	c.Printf(labelFormat, hi)
	c.SetCursor(d.X-4, d.Y-d.R/2-8)
	c.Printf(labelFormat, value)
	return nil
}

// GaugeInt is Gauge for integer values.
func GaugeInt(c Canvas, lo, hi, value int, d Dial) error {
	return Gauge(c, float64(lo), float64(hi), float64(value), d)
}

// needle returns the needle tip for a value at ratio of full scale.
func needle(d Dial, ratio float64) (int, int) {
	a := needleSweep*ratio - needleOffset
	x := int(float64(d.X) + math.Sin(a)*float64(d.R) + 1)
	y := int(float64(d.Y-1) - math.Cos(a)*float64(d.R) + 1)
	return x, y
}
