package widget

import (
	"errors"

	"github.com/flavioheleno/monocanvas/image1bit"
)

var (
	// ErrShortSeries is returned by the graphs when fewer than two samples
	// are given.
	ErrShortSeries = errors.New("widget: series needs at least two samples")
	// ErrEmptyRange is returned when a widget's value range has no extent.
	ErrEmptyRange = errors.New("widget: empty value range")
	// ErrTextOverflow is returned when formatted text exceeds a widget's
	// text buffer.
	ErrTextOverflow = errors.New("widget: text exceeds buffer capacity")
	// ErrUnknownSymbol is returned by Symbol for a type outside the icon set.
	ErrUnknownSymbol = errors.New("widget: unknown symbol")
)

// Canvas is the drawing surface used by widgets. *monocanvas.Canvas
// implements it.
type Canvas interface {
	Width() int
	DrawPixel(x, y int, b image1bit.Bit)
	DrawLine(x0, y0, x1, y1 int, b image1bit.Bit)
	FillRect(x, y, w, h int, b image1bit.Bit)
	DrawCircle(x0, y0, r int, b image1bit.Bit)
	DrawCircleHelper(x0, y0, r int, quadrants uint8, b image1bit.Bit)
	SetCursor(x, y int)
	CursorX() int
	SetTextColor(b image1bit.Bit)
	Print(r rune)
	Printf(format string, args ...any)
}

// Rect places a widget by its top-left corner.
type Rect struct {
	X, Y int
	W, H int

	// Scale enables the widget's labels.
	Scale bool
}

// Dial places a round widget by its centre.
type Dial struct {
	X, Y int
	R    int // Radius

	// Scale enables the widget's labels.
	Scale bool
}

// Integer is the set of integer types accepted by the integer entry points.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// labelFormat formats every numeric label to three significant figures.
const labelFormat = "%.3g"

// border draws the 1px frame shared by the progress bar and the tank. The
// corners are left open.
func border(c Canvas, x1, y1, x2, y2 int) {
	c.DrawLine(x1+1, y1, x2-1, y1, image1bit.On)
	c.DrawLine(x1+1, y2, x2-1, y2, image1bit.On)
	c.DrawLine(x1, y1+1, x1, y2-1, image1bit.On)
	c.DrawLine(x2, y1+1, x2, y2-1, image1bit.On)
}

func toFloats[T Integer](in []T) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
