package widget

import (
	"fmt"

	"github.com/flavioheleno/monocanvas/image1bit"
)

// scaleOffset is the left margin reserved for the min/max labels.
const scaleOffset = 24

// LineGraph plots series as connected segments, auto-scaled to the height of
// r. Samples are spread evenly over the width.
func LineGraph(c Canvas, series []float64, r Rect) error {
	return plot(c, series, r, false)
}

// LineGraphInt is LineGraph for integer samples.
func LineGraphInt[T Integer](c Canvas, series []T, r Rect) error {
	return plot(c, toFloats(series), r, false)
}

// BarGraph plots series as one filled bar per pair of consecutive samples.
func BarGraph(c Canvas, series []float64, r Rect) error {
	return plot(c, series, r, true)
}

// BarGraphInt is BarGraph for integer samples.
func BarGraphInt[T Integer](c Canvas, series []T, r Rect) error {
	return plot(c, toFloats(series), r, true)
}

// Bounds returns the smallest and largest sample of series.
func Bounds(series []float64) (lo, hi float64) {
	if len(series) == 0 {
		return 0, 0
	}
	lo, hi = series[0], series[0]
	for _, v := range series[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Step returns the horizontal distance between samples in pixels.
func Step(n int, r Rect) int {
	w := r.W
	if r.Scale {
		w -= scaleOffset
	}
	return w / (n - 1)
}

func plot(c Canvas, a []float64, r Rect, bars bool) error {
	if len(a) < 2 {
		return fmt.Errorf("widget: graph of %d samples: %w", len(a), ErrShortSeries)
	}

	x1 := r.X
	if r.Scale {
		x1 += scaleOffset
	}
	dx := Step(len(a), r)
	lo, hi := Bounds(a)

	// Samples are divided by the range, not shifted by the minimum: a series
	// far from zero is drawn off the plot area. A flat series has no range
	// and is drawn at mid height.
	ratio := func(v float64) float64 {
		if hi == lo {
			return 0.5
		}
		return v / (hi - lo)
	}
	bottom := float64(r.Y + r.H)
	h := float64(r.H)

	c.DrawLine(x1, r.Y, x1, r.Y+r.H-1, image1bit.On)
	c.DrawLine(x1, r.Y+r.H-1, x1+r.W, r.Y+r.H-1, image1bit.On)

	for i := 0; i < len(a)-1; i++ {
		x := x1 + i*dx
		y := int(bottom - ratio(a[i])*h)
		if bars {
			c.FillRect(x, y, dx, int(ratio(a[i+1])*h), image1bit.On)
			continue
		}
		c.DrawLine(x, y, x+dx, int(bottom-ratio(a[i+1])*h), image1bit.On)
	}

	if r.Scale {
		c.SetCursor(r.X, r.Y)
		c.Printf(labelFormat, hi)
		c.SetCursor(r.X, r.Y+r.H-8)
		c.Printf(labelFormat, lo)
	}
	return nil
}
