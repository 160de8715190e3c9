package widget

import (
	"fmt"

	"github.com/flavioheleno/monocanvas/image1bit"
)

// Tank draws a vertical column filled from the bottom in proportion to
// value/(hi-lo).
//
// The fill keeps a 3px margin above the bottom border. With Scale set, hi,
// value and lo are printed to the right of the tank; the value label
// follows the fill level but stays at least 8px below the top and 16px above
// the bottom so it does not overlap the other two.
func Tank(c Canvas, lo, hi, value float64, r Rect) error {
	if hi == lo {
		return fmt.Errorf("widget: tank range [%g, %g]: %w", lo, hi, ErrEmptyRange)
	}

	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.W-2, r.Y+r.H-2
	border(c, x1, y1, x2, y2)

	fill := tankFill(y2-y1-2, lo, hi, value)
	offset := r.H - fill - 5
	c.FillRect(x1+2, y1+2+offset, x2-x1-3, fill, image1bit.On)

	if !r.Scale {
		return nil
	}
	labelX := r.X + r.W + 1
	c.SetCursor(labelX, r.Y)
	c.Printf(labelFormat, hi)

	textY := y1 + 2 + offset - 4
	if textY-r.Y < 8 {
		textY = r.Y + 8
	} else if r.Y+r.H-textY < 16 {
		textY = r.Y + r.H - 16
	}
	c.SetCursor(labelX, textY)
	c.Printf(labelFormat, value)

	c.SetCursor(labelX, r.Y+r.H-8)
	c.Printf(labelFormat, lo)
	return nil
}

// tankFill returns the fill height for an interior of span pixels. The value
// is scaled by the range only, it is not offset by lo.
func tankFill(span int, lo, hi, value float64) int {
	return int(float64(span) * value / (hi - lo))
}
