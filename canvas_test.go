package monocanvas

import (
	"image"
	"sync"
	"testing"

	"github.com/flavioheleno/monocanvas/glyph"
	"github.com/flavioheleno/monocanvas/image1bit"
)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(&Opts{W: w, H: h})
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return c
}

// countOn returns the number of set pixels inside r.
func countOn(c *Canvas, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.Image().BitAt(x, y) == image1bit.On {
				n++
			}
		}
	}
	return n
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
		wantW   int
		wantH   int
	}{
		{"nil options (uses defaults)", nil, false, 128, 64},
		{"zero options (uses defaults)", &Opts{}, false, 128, 64},
		{"valid 128x32", &Opts{W: 128, H: 32}, false, 128, 32},
		{"odd width allowed", &Opts{W: 17, H: 3}, false, 17, 3},
		{"negative width", &Opts{W: -1, H: 64}, true, 0, 0},
		{"height zero", &Opts{W: 128, H: 0}, true, 0, 0},
		{"width beyond int16", &Opts{W: 40000, H: 64}, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if c.Width() != tt.wantW || c.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.wantW, tt.wantH)
			}
			if c.Face() != glyph.Classic {
				t.Error("default face should be glyph.Classic")
			}
		})
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		wantPixels     int
	}{
		{"horizontal", 2, 3, 9, 3, 8},
		{"horizontal reversed", 9, 3, 2, 3, 8},
		{"vertical", 4, 1, 4, 10, 10},
		{"diagonal", 0, 0, 7, 7, 8},
		{"steep", 1, 0, 3, 9, 10},
		{"single point", 5, 5, 5, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 16, 16)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, image1bit.On)

			if c.Image().BitAt(tt.x0, tt.y0) != image1bit.On {
				t.Errorf("start (%d, %d) not set", tt.x0, tt.y0)
			}
			if c.Image().BitAt(tt.x1, tt.y1) != image1bit.On {
				t.Errorf("end (%d, %d) not set", tt.x1, tt.y1)
			}
			if got := countOn(c, c.Bounds()); got != tt.wantPixels {
				t.Errorf("pixels set = %d, want %d", got, tt.wantPixels)
			}
		})
	}
}

func TestDrawLineClipsOutOfBounds(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	c.DrawLine(-4, 2, 20, 2, image1bit.On)
	if got := countOn(c, c.Bounds()); got != 8 {
		t.Errorf("pixels set = %d, want 8", got)
	}
}

func TestFillRect(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.FillRect(2, 3, 4, 5, image1bit.On)

	if got := countOn(c, c.Bounds()); got != 20 {
		t.Errorf("pixels set = %d, want 20", got)
	}
	if got := countOn(c, image.Rect(2, 3, 6, 8)); got != 20 {
		t.Errorf("pixels inside rect = %d, want 20", got)
	}
}

func TestFillRectDegenerate(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.FillRect(2, 3, 0, 5, image1bit.On)
	c.FillRect(2, 3, -3, 5, image1bit.On)
	c.FillRect(2, 3, 4, 0, image1bit.On)
	if got := countOn(c, c.Bounds()); got != 0 {
		t.Errorf("pixels set = %d, want 0", got)
	}
}

func TestFillRectNegativeHeightGrowsUp(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.FillRect(2, 10, 2, -3, image1bit.On)
	if got := countOn(c, image.Rect(2, 8, 4, 11)); got != 6 {
		t.Errorf("pixels in rows 8..10 = %d, want 6", got)
	}
}

func TestDrawRect(t *testing.T) {
	c := newTestCanvas(t, 16, 16)
	c.DrawRect(1, 1, 5, 4, image1bit.On)

	// Perimeter of a 5x4 rectangle.
	if got := countOn(c, c.Bounds()); got != 14 {
		t.Errorf("pixels set = %d, want 14", got)
	}
	if c.Image().BitAt(3, 2) != image1bit.Off {
		t.Error("interior should stay clear")
	}
}

func TestDrawCircleAxisPoints(t *testing.T) {
	c := newTestCanvas(t, 32, 32)
	c.DrawCircle(16, 16, 10, image1bit.On)

	for _, p := range []image.Point{{16, 6}, {16, 26}, {6, 16}, {26, 16}} {
		if c.Image().BitAt(p.X, p.Y) != image1bit.On {
			t.Errorf("axis point %v not set", p)
		}
	}
	if c.Image().BitAt(16, 16) != image1bit.Off {
		t.Error("centre should be clear")
	}
}

func TestDrawCircleHelperQuadrants(t *testing.T) {
	tests := []struct {
		name      string
		quadrants uint8
		inside    image.Rectangle
	}{
		{"top left", QuadTopLeft, image.Rect(0, 0, 16, 16)},
		{"top right", QuadTopRight, image.Rect(17, 0, 32, 16)},
		{"bottom right", QuadBottomRight, image.Rect(17, 17, 32, 32)},
		{"bottom left", QuadBottomLeft, image.Rect(0, 17, 16, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 32, 32)
			c.DrawCircleHelper(16, 16, 10, tt.quadrants, image1bit.On)

			total := countOn(c, c.Bounds())
			if total == 0 {
				t.Fatal("no pixels drawn")
			}
			if got := countOn(c, tt.inside); got != total {
				t.Errorf("%d of %d pixels inside %v", got, total, tt.inside)
			}
		})
	}
}

func TestDrawCircleHelperSkipsAxisPoint(t *testing.T) {
	c := newTestCanvas(t, 32, 32)
	c.DrawCircleHelper(16, 16, 10, QuadTopLeft|QuadTopRight, image1bit.On)
	if c.Image().BitAt(16, 6) != image1bit.Off {
		t.Error("top axis point should not be drawn by the helper")
	}
}

func TestPrintAdvancesCursor(t *testing.T) {
	c := newTestCanvas(t, 64, 16)
	c.SetCursor(2, 4)
	c.PrintString("AB")

	if c.CursorX() != 2+2*glyph.Advance {
		t.Errorf("CursorX = %d, want %d", c.CursorX(), 2+2*glyph.Advance)
	}
	if c.CursorY() != 4 {
		t.Errorf("CursorY = %d, want 4", c.CursorY())
	}
	// 'A' column 0 is 0x7C: rows 2..6 set.
	if c.Image().BitAt(2, 4+2) != image1bit.On {
		t.Error("'A' first column should be drawn")
	}
	if c.Image().BitAt(2, 4) != image1bit.Off {
		t.Error("'A' top-left pixel should be clear")
	}
}

func TestPrintNewline(t *testing.T) {
	c := newTestCanvas(t, 64, 32)
	c.SetCursor(10, 3)
	c.PrintString("a\nb")

	if c.CursorY() != 3+glyph.LineHeight {
		t.Errorf("CursorY = %d, want %d", c.CursorY(), 3+glyph.LineHeight)
	}
	if c.CursorX() != glyph.Advance {
		t.Errorf("CursorX = %d, want %d (newline returns to column 0)", c.CursorX(), glyph.Advance)
	}
}

func TestPrintCarriageReturnIgnored(t *testing.T) {
	c := newTestCanvas(t, 64, 16)
	c.PrintString("\r\r")
	if c.CursorX() != 0 || countOn(c, c.Bounds()) != 0 {
		t.Error("carriage return should neither move the cursor nor draw")
	}
}

func TestPrintWrap(t *testing.T) {
	c := newTestCanvas(t, 20, 32)
	c.PrintString("ABCD")

	// Three glyphs fit in 20px (18px), the fourth wraps.
	if c.CursorY() != glyph.LineHeight {
		t.Errorf("CursorY = %d, want %d", c.CursorY(), glyph.LineHeight)
	}
	if c.CursorX() != glyph.Advance {
		t.Errorf("CursorX = %d, want %d", c.CursorX(), glyph.Advance)
	}

	c2 := newTestCanvas(t, 20, 32)
	c2.SetTextWrap(false)
	c2.PrintString("ABCD")
	if c2.CursorY() != 0 || c2.CursorX() != 4*glyph.Advance {
		t.Errorf("without wrap cursor = (%d, %d), want (%d, 0)", c2.CursorX(), c2.CursorY(), 4*glyph.Advance)
	}
}

func TestPrintTransparentBackground(t *testing.T) {
	c := newTestCanvas(t, 16, 8)
	c.FillScreen(image1bit.On)
	c.SetTextColor(image1bit.Off)
	c.Print('!')

	// '!' is column 2 only (0x5F): the other columns keep the fill.
	if c.Image().BitAt(0, 0) != image1bit.On {
		t.Error("background should not be painted")
	}
	if c.Image().BitAt(2, 0) != image1bit.Off {
		t.Error("glyph pixel should be cleared")
	}
	if c.Image().BitAt(2, 5) != image1bit.On {
		t.Error("unset glyph row should keep the fill")
	}
}

func TestPrintUnknownRuneFallsBack(t *testing.T) {
	c := newTestCanvas(t, 16, 8)
	c.Print('€')
	if c.CursorX() != glyph.Advance {
		t.Errorf("CursorX = %d, want %d", c.CursorX(), glyph.Advance)
	}
	if countOn(c, c.Bounds()) == 0 {
		t.Error("fallback glyph should be drawn")
	}
}

func TestPrintf(t *testing.T) {
	c := newTestCanvas(t, 128, 8)
	c.Printf("%.3g", 3.14159)
	if c.CursorX() != len("3.14")*glyph.Advance {
		t.Errorf("CursorX = %d, want %d", c.CursorX(), len("3.14")*glyph.Advance)
	}
}

func TestUpdateAdvancesGeneration(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	if c.Generation() != 0 {
		t.Fatalf("initial generation = %d", c.Generation())
	}
	_ = c.Update(func(c *Canvas) error {
		c.DrawPixel(1, 1, image1bit.On)
		return nil
	})
	if c.Generation() != 1 {
		t.Errorf("generation = %d, want 1", c.Generation())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	c := newTestCanvas(t, 16, 4)
	c.DrawPixel(3, 1, image1bit.On)

	snap := c.Snapshot(nil)
	c.DrawPixel(3, 1, image1bit.Off)

	if snap.BitAt(3, 1) != image1bit.On {
		t.Error("snapshot should not follow later drawing")
	}

	reused := c.Snapshot(snap)
	if reused != snap {
		t.Error("snapshot with matching bounds should reuse dst")
	}
	if reused.BitAt(3, 1) != image1bit.Off {
		t.Error("reused snapshot should hold the current frame")
	}
}

func TestSnapshotNeverTorn(t *testing.T) {
	c := newTestCanvas(t, 32, 8)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			b := image1bit.Bit(i%2 == 0)
			_ = c.Update(func(c *Canvas) error {
				c.FillScreen(b)
				return nil
			})
		}
	}()

	torn := false
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			snap := c.Snapshot(nil)
			first := snap.Pix[0]
			for _, p := range snap.Pix {
				if p != first {
					torn = true
				}
			}
		}
	}()

	wg.Wait()
	if torn {
		t.Error("snapshot observed a partially drawn frame")
	}
}

func TestWriter(t *testing.T) {
	c := newTestCanvas(t, 128, 16)
	n, err := c.Write([]byte("hi"))
	if err != nil || n != 2 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if c.CursorX() != 2*glyph.Advance {
		t.Errorf("CursorX = %d, want %d", c.CursorX(), 2*glyph.Advance)
	}
}
