package widget

import (
	"fmt"
	"testing"

	"github.com/flavioheleno/monocanvas"
	"github.com/flavioheleno/monocanvas/image1bit"
)

// call is one primitive invocation seen by recorder.
type call struct {
	op   string
	args [4]int
	bit  image1bit.Bit
}

// label is text printed from one cursor position.
type label struct {
	x, y int
	text string
}

// recorder is a Canvas that logs primitive calls instead of drawing. Print
// advances the cursor by the classic 6px cell.
type recorder struct {
	width  int
	calls  []call
	labels []label

	cursorX, cursorY int
	color            image1bit.Bit
}

func newRecorder() *recorder {
	return &recorder{width: monocanvas.DefaultWidth, color: image1bit.On}
}

func (r *recorder) Width() int { return r.width }

func (r *recorder) DrawPixel(x, y int, b image1bit.Bit) {
	r.calls = append(r.calls, call{"pixel", [4]int{x, y}, b})
}

func (r *recorder) DrawLine(x0, y0, x1, y1 int, b image1bit.Bit) {
	r.calls = append(r.calls, call{"line", [4]int{x0, y0, x1, y1}, b})
}

func (r *recorder) FillRect(x, y, w, h int, b image1bit.Bit) {
	r.calls = append(r.calls, call{"fill", [4]int{x, y, w, h}, b})
}

func (r *recorder) DrawCircle(x0, y0, rad int, b image1bit.Bit) {
	r.calls = append(r.calls, call{"circle", [4]int{x0, y0, rad}, b})
}

func (r *recorder) DrawCircleHelper(x0, y0, rad int, quadrants uint8, b image1bit.Bit) {
	r.calls = append(r.calls, call{"arc", [4]int{x0, y0, rad, int(quadrants)}, b})
}

func (r *recorder) SetCursor(x, y int) {
	r.cursorX, r.cursorY = x, y
	r.labels = append(r.labels, label{x: x, y: y})
}

func (r *recorder) CursorX() int { return r.cursorX }

func (r *recorder) SetTextColor(b image1bit.Bit) { r.color = b }

func (r *recorder) Print(ch rune) {
	r.calls = append(r.calls, call{"print", [4]int{r.cursorX, r.cursorY, int(ch)}, r.color})
	if len(r.labels) == 0 {
		r.labels = append(r.labels, label{x: r.cursorX, y: r.cursorY})
	}
	r.labels[len(r.labels)-1].text += string(ch)
	if ch == '\n' {
		r.cursorX = 0
		r.cursorY += 8
		return
	}
	r.cursorX += 6
}

func (r *recorder) Printf(format string, args ...any) {
	for _, ch := range fmt.Sprintf(format, args...) {
		r.Print(ch)
	}
}

// ops returns the recorded calls of one kind, in order.
func (r *recorder) ops(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// printed returns the non-empty labels.
func (r *recorder) printed() []label {
	var out []label
	for _, l := range r.labels {
		if l.text != "" {
			out = append(out, l)
		}
	}
	return out
}

func newCanvas(t *testing.T, w, h int) *monocanvas.Canvas {
	t.Helper()
	c, err := monocanvas.New(&monocanvas.Opts{W: w, H: h})
	if err != nil {
		t.Fatalf("monocanvas.New: %v", err)
	}
	return c
}

func samePixels(t *testing.T, a, b *monocanvas.Canvas) {
	t.Helper()
	pa, pb := a.Image().Pix, b.Image().Pix
	if len(pa) != len(pb) {
		t.Fatalf("buffer sizes differ: %d != %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("buffers differ at byte %d: %#02x != %#02x", i, pa[i], pb[i])
		}
	}
}

func TestCanvasImplementsWidgetCanvas(t *testing.T) {
	var _ Canvas = newCanvas(t, 8, 8)
}
