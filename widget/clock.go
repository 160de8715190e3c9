package widget

import (
	"math"
	"time"

	"github.com/flavioheleno/monocanvas/image1bit"
)

const radToDeg = 57.29577951

// Hand and tick insets, in pixels from the dial radius.
const (
	tickInset   = 5
	minuteInset = 3
	hourInset   = 11
)

// AnalogClock draws a clock face with hour, minute and second hands for t,
// read in t's location. Pass time.Unix(epoch, 0) to show local time.
//
// The face has a 2px pivot and twelve ticks; there are no numerals, so
// d.Scale has no effect.
func AnalogClock(c Canvas, t time.Time, d Dial) error {
	hour, minute, sec := t.Clock()
	r := d.R

	c.DrawCircle(d.X, d.Y, 2, image1bit.On)
	for deg := 0; deg < 360; deg += 30 {
		x1, y1 := polar(d.X, d.Y, deg, r)
		x2, y2 := polar(d.X, d.Y, deg, r-tickInset)
		c.DrawLine(x1, y1, x2, y2, image1bit.On)
	}

	x2, y2 := polar(d.X, d.Y, sec*6, r)
	c.DrawLine(d.X, d.Y, x2, y2, image1bit.On)

	// The minute hand's x endpoint is offset from the y anchor, so it only
	// lines up with the other hands on dials centred on the diagonal. Kept
	// for pixel compatibility with existing layouts.
	x2, y2 = polar(d.Y, d.Y, minute*6, r-minuteInset)
	c.DrawLine(d.X, d.Y, x2, y2, image1bit.On)

	x2, y2 = polar(d.X, d.Y, hour*30+(minute/12)*6, r-hourInset)
	c.DrawLine(d.X, d.Y, x2, y2, image1bit.On)
	return nil
}

// polar returns the point at length from (cx, cy), deg degrees clockwise
// from 12 o'clock. Coordinates are truncated towards zero.
func polar(cx, cy, deg, length int) (int, int) {
	a := float64(deg) / radToDeg
	x := int(float64(cx) + math.Sin(a)*float64(length))
	y := int(float64(cy) - math.Cos(a)*float64(length))
	return x, y
}
