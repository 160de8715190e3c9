// Package layout describes dashboards in YAML and renders them with the
// widget package.
//
// A dashboard lists widgets by type with their geometry and data:
//
//	width: 128
//	height: 64
//	widgets:
//	  - type: progress
//	    x: 0
//	    y: 0
//	    w: 128
//	    h: 12
//	    value: 42
//	    scale: true
//	  - type: clock
//	    x: 32
//	    y: 40
//	    r: 20
//	    location: Europe/Lisbon
//
// Supported types are progress, clock, tank, gauge, line, bar, text, symbol
// and qr.
package layout

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/monocanvas"
	"github.com/flavioheleno/monocanvas/image1bit"
	"github.com/flavioheleno/monocanvas/widget"
	"gopkg.in/yaml.v2"
)

// ErrUnknownWidget is returned for an item whose type is not supported.
var ErrUnknownWidget = errors.New("layout: unknown widget type")

// Dashboard is a parsed layout.
type Dashboard struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Widgets []Item `yaml:"widgets"`
}

// Item is one widget. Which fields apply depends on Type.
type Item struct {
	Type string `yaml:"type"`

	X     int  `yaml:"x"`
	Y     int  `yaml:"y"`
	W     int  `yaml:"w"`
	H     int  `yaml:"h"`
	R     int  `yaml:"r"` // Radius for clock and gauge
	Scale bool `yaml:"scale"`

	Value  float64   `yaml:"value"`
	Min    float64   `yaml:"min"`
	Max    float64   `yaml:"max"`
	Series []float64 `yaml:"series"`

	// Location names the clock time zone (default: local time).
	Location string `yaml:"location"`

	Text      string `yaml:"text"` // Text box contents or QR payload
	Thickness int    `yaml:"thickness"`
	Padding   int    `yaml:"padding"`
	Symbol    string `yaml:"symbol"`

	// Filled by validate.
	resolved bool
	loc      *time.Location
	sym      widget.SymbolType
}

// Parse decodes and validates a YAML dashboard. Unknown keys are rejected.
// A missing size defaults to 128x64.
func Parse(data []byte) (*Dashboard, error) {
	var d Dashboard
	if err := yaml.UnmarshalStrict(data, &d); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if d.Width == 0 && d.Height == 0 {
		d.Width, d.Height = monocanvas.DefaultWidth, monocanvas.DefaultHeight
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("layout: invalid size %dx%d", d.Width, d.Height)
	}
	for i := range d.Widgets {
		if err := d.Widgets[i].validate(); err != nil {
			return nil, fmt.Errorf("layout: widget %d: %w", i, err)
		}
	}
	return &d, nil
}

func (it *Item) validate() error {
	switch it.Type {
	case "progress", "tank", "line", "bar":
		if it.W <= 0 || it.H <= 0 {
			return fmt.Errorf("%s needs a positive w and h", it.Type)
		}
		if (it.Type == "line" || it.Type == "bar") && len(it.Series) < 2 {
			return fmt.Errorf("%s of %d samples: %w", it.Type, len(it.Series), widget.ErrShortSeries)
		}
	case "clock", "gauge":
		if it.R <= 0 {
			return fmt.Errorf("%s needs a positive r", it.Type)
		}
		if it.Location != "" {
			loc, err := time.LoadLocation(it.Location)
			if err != nil {
				return err
			}
			it.loc = loc
		}
	case "text":
		if len(it.Text) > widget.MaxTextLen {
			return widget.ErrTextOverflow
		}
	case "symbol":
		s, err := widget.ParseSymbol(it.Symbol)
		if err != nil {
			return err
		}
		it.sym = s
	case "qr":
		if it.Text == "" {
			return errors.New("qr needs a text payload")
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownWidget, it.Type)
	}
	it.resolved = true
	return nil
}

// NewCanvas returns a blank canvas of the dashboard size.
func (d *Dashboard) NewCanvas() (*monocanvas.Canvas, error) {
	return monocanvas.New(&monocanvas.Opts{W: d.Width, H: d.Height})
}

// Render draws every widget on c in order. It stops at the first failing
// widget and reports its index. Widgets added after Parse are validated on
// their first render.
func (d *Dashboard) Render(c widget.Canvas, now time.Time) error {
	for i := range d.Widgets {
		if err := d.Widgets[i].render(c, now); err != nil {
			return fmt.Errorf("layout: widget %d (%s): %w", i, d.Widgets[i].Type, err)
		}
	}
	return nil
}

// Frame clears c and renders the dashboard as one published frame.
func (d *Dashboard) Frame(c *monocanvas.Canvas, now time.Time) error {
	return c.Update(func(c *monocanvas.Canvas) error {
		c.Clear()
		c.SetTextColor(image1bit.On)
		return d.Render(c, now)
	})
}

func (it *Item) render(c widget.Canvas, now time.Time) error {
	if !it.resolved {
		if err := it.validate(); err != nil {
			return err
		}
	}
	r := widget.Rect{X: it.X, Y: it.Y, W: it.W, H: it.H, Scale: it.Scale}
	dial := widget.Dial{X: it.X, Y: it.Y, R: it.R, Scale: it.Scale}

	switch it.Type {
	case "progress":
		return widget.ProgressBar(c, int(it.Value), r)
	case "clock":
		if it.loc != nil {
			now = now.In(it.loc)
		}
		return widget.AnalogClock(c, now, dial)
	case "tank":
		return widget.Tank(c, it.Min, it.Max, it.Value, r)
	case "gauge":
		return widget.Gauge(c, it.Min, it.Max, it.Value, dial)
	case "line":
		return widget.LineGraph(c, it.Series, r)
	case "bar":
		return widget.BarGraph(c, it.Series, r)
	case "text":
		_, err := widget.TextBox(c, it.X, it.Y, it.Thickness, it.Padding, "%s", it.Text)
		return err
	case "symbol":
		return widget.Symbol(c, it.sym, it.X, it.Y)
	case "qr":
		_, err := widget.QRCode(c, it.Text, it.X, it.Y)
		return err
	}
	return fmt.Errorf("%w %q", ErrUnknownWidget, it.Type)
}
