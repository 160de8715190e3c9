package widget

import (
	"errors"
	"image"
	"reflect"
	"strings"
	"testing"

	"github.com/flavioheleno/monocanvas/image1bit"
)

func TestMeasureText(t *testing.T) {
	tests := []struct {
		text    string
		longest int
		lines   int
	}{
		{"", 0, 0},
		{"abc", 3, 1},
		{"Hi\nWorld", 5, 2},
		{"World\nHi", 5, 2},
		{"a\n", 1, 1},
		{"\n", 0, 1},
		{"a\n\nbc", 2, 3},
		{"24°C", 4, 1},
	}

	for _, tt := range tests {
		longest, lines := MeasureText(tt.text)
		if longest != tt.longest || lines != tt.lines {
			t.Errorf("MeasureText(%q) = (%d, %d), want (%d, %d)", tt.text, longest, lines, tt.longest, tt.lines)
		}
	}
}

func TestTextBoxBounds(t *testing.T) {
	rec := newRecorder()
	got, err := TextBox(rec, 0, 0, 1, 1, "Hi\nWorld")
	if err != nil {
		t.Fatal(err)
	}

	// Two 8px lines, 1px padding on both sides and one border row.
	if got.Dy() != 8*2+2+1 {
		t.Errorf("height = %d, want 19", got.Dy())
	}
	// Right border column: five 6px cells plus padding.
	if x2 := got.Max.X - 1; x2 != 5*6+2*1+1-1 {
		t.Errorf("right border at x=%d, want 32", x2)
	}
	if want := image.Rect(0, 0, 33, 19); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}

	wantBorder := [][4]int{
		{0, 0, 33, 1},
		{0, 18, 33, 1},
		{0, 0, 1, 18},
		{32, 0, 1, 18},
	}
	fills := rec.ops("fill")
	if len(fills) != len(wantBorder) {
		t.Fatalf("got %d border rects, want 4", len(fills))
	}
	for i := range wantBorder {
		if fills[i].args != wantBorder[i] {
			t.Errorf("border %d = %v, want %v", i, fills[i].args, wantBorder[i])
		}
	}
}

func TestTextBoxLines(t *testing.T) {
	rec := newRecorder()
	if _, err := TextBox(rec, 10, 4, 2, 3, "Hi\nWorld"); err != nil {
		t.Fatal(err)
	}
	want := []label{
		{15, 9, "Hi\n"},
		{15, 17, "World"},
	}
	if got := rec.printed(); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
}

func TestTextBoxDrawsBorderAfterText(t *testing.T) {
	rec := newRecorder()
	if _, err := TextBox(rec, 0, 0, 1, 1, "ok"); err != nil {
		t.Fatal(err)
	}
	lastPrint, firstFill := -1, -1
	for i, c := range rec.calls {
		switch c.op {
		case "print":
			lastPrint = i
		case "fill":
			if firstFill < 0 {
				firstFill = i
			}
		}
	}
	if firstFill < lastPrint {
		t.Error("border should be drawn after the text")
	}
}

func TestTextBoxFormat(t *testing.T) {
	rec := newRecorder()
	got, err := TextBox(rec, 0, 0, 1, 0, "T=%d%s", 42, "C")
	if err != nil {
		t.Fatal(err)
	}
	if text := rec.printed()[0].text; text != "T=42C" {
		t.Errorf("printed %q, want %q", text, "T=42C")
	}
	if got.Dx() != 5*6+1 {
		t.Errorf("width = %d, want %d", got.Dx(), 5*6+1)
	}
}

func TestTextBoxOverflow(t *testing.T) {
	rec := newRecorder()
	_, err := TextBox(rec, 0, 0, 1, 1, "%s", strings.Repeat("a", MaxTextLen+1))
	if !errors.Is(err, ErrTextOverflow) {
		t.Fatalf("error = %v, want ErrTextOverflow", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("drew %d primitives on overflow", len(rec.calls))
	}

	if _, err := TextBox(newRecorder(), 0, 0, 1, 1, "%s", strings.Repeat("a", MaxTextLen)); err != nil {
		t.Errorf("text at capacity: %v", err)
	}
}

func TestTextBoxEmpty(t *testing.T) {
	rec := newRecorder()
	got, err := TextBox(rec, 0, 0, 1, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, 3, 3); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	if len(rec.ops("print")) != 0 {
		t.Error("nothing should be printed")
	}
}

func TestTextBoxPixels(t *testing.T) {
	c := newCanvas(t, 32, 16)
	got, err := TextBox(c, 0, 0, 1, 1, "Hi")
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, 15, 11); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}

	img := c.Image()
	tests := []struct {
		x, y int
		want image1bit.Bit
		what string
	}{
		{0, 0, image1bit.On, "top-left border"},
		{14, 10, image1bit.On, "bottom-right border"},
		{1, 1, image1bit.Off, "padding"},
		{2, 2, image1bit.On, "first column of 'H'"},
		{15, 5, image1bit.Off, "outside the box"},
	}
	for _, tt := range tests {
		if got := img.BitAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d, %d) = %v, want %v", tt.what, tt.x, tt.y, got, tt.want)
		}
	}
}
