package widget

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/flavioheleno/monocanvas/glyph"
	"github.com/flavioheleno/monocanvas/image1bit"
)

// MaxTextLen is the largest formatted text TextBox accepts, in bytes.
const MaxTextLen = 255

// TextBox formats the text, prints it at (x, y) inside padding and a border
// of the given thickness, and returns the outer bounds of the border.
//
// Lines are separated by '\n'. The box is sized for the classic 6×8 cell:
// the longest line sets the width and the number of lines the height. Text
// longer than MaxTextLen fails with ErrTextOverflow and nothing is drawn.
func TextBox(c Canvas, x, y, thickness, padding int, format string, args ...any) (image.Rectangle, error) {
	text := fmt.Sprintf(format, args...)
	if len(text) > MaxTextLen {
		return image.Rectangle{}, fmt.Errorf("widget: text box of %d bytes: %w", len(text), ErrTextOverflow)
	}

	left := x + padding + thickness
	top := y + padding + thickness
	c.SetCursor(left, top)
	line := 0
	n := utf8.RuneCountInString(text)
	i := 0
	for _, ch := range text {
		c.Print(ch)
		if ch == '\n' || i == n-1 {
			line++
			c.SetCursor(left, top+line*glyph.LineHeight)
		}
		i++
	}

	longest, lines := MeasureText(text)
	x2 := x + longest*glyph.Advance + 2*padding + thickness - 1
	y2 := y + lines*glyph.LineHeight + 2*padding + thickness - 1
	c.FillRect(x, y, x2-x+thickness, thickness, image1bit.On)
	c.FillRect(x, y2, x2-x+thickness, thickness, image1bit.On)
	c.FillRect(x, y, thickness, y2-y, image1bit.On)
	c.FillRect(x2, y, thickness, y2-y, image1bit.On)
	return image.Rect(x, y, x2+thickness, y2+thickness), nil
}

// MeasureText returns the length of the longest line of text in characters
// and the number of lines. A trailing '\n' does not start a new line.
func MeasureText(text string) (longest, lines int) {
	n := 0
	for _, ch := range text {
		if ch == '\n' {
			longest = max(longest, n)
			lines++
			n = 0
			continue
		}
		n++
	}
	if n > 0 {
		longest = max(longest, n)
		lines++
	}
	return longest, lines
}
