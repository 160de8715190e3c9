package widget

import (
	"fmt"

	"github.com/flavioheleno/monocanvas/image1bit"
)

// progressTextCap bounds the percentage label, "-100%" included.
const progressTextCap = 5

// ProgressBar draws a horizontal bar filled to percentage.
//
// The frame spans (X, Y) to (X+W-2, Y+H-2) and the fill starts 2px inside
// it. Values outside 0..100 are not clamped. With Scale set the percentage
// is printed at the horizontal centre of the canvas; glyphs starting over
// the fill are drawn Off so the label stays readable across the boundary.
func ProgressBar(c Canvas, percentage int, r Rect) error {
	var label string
	if r.Scale {
		label = fmt.Sprintf("%d%%", percentage)
		if len(label) > progressTextCap {
			return fmt.Errorf("widget: progress label %q: %w", label, ErrTextOverflow)
		}
	}

	x1, y1 := r.X, r.Y
	x2, y2 := r.X+r.W-2, r.Y+r.H-2
	border(c, x1, y1, x2, y2)

	fill := progressFill(x2-x1-2, percentage)
	c.FillRect(x1+2, y1+2, fill, y2-y1-3, image1bit.On)

	if !r.Scale {
		return nil
	}
	textWidth := 9
	if percentage < 10 {
		textWidth = 6
	}
	c.SetCursor(c.Width()/2-textWidth, y2-(y2-y1)/2-4)
	for _, ch := range label {
		if c.CursorX() < x1+fill {
			c.SetTextColor(image1bit.Off)
		} else {
			c.SetTextColor(image1bit.On)
		}
		c.Print(ch)
	}
	c.SetTextColor(image1bit.On)
	return nil
}

// progressFill returns the filled width for an inner width of span pixels.
func progressFill(span, percentage int) int {
	return int(float64(span) * float64(percentage) / 100)
}
