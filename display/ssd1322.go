package display

import (
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/flavioheleno/monocanvas/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// SSD1322 RAM is 480 segments wide, addressed in groups of 4 pixels.
const (
	ssd1322RAMWidth  = 480
	ssd1322ColumnPix = 4
)

// SSD1322Opts is the configuration for an SSD1322 greyscale panel.
type SSD1322Opts struct {
	W int // Width (default: 256, multiple of 4, ≤480)
	H int // Height (default: 64, ≤128)

	Rotated    bool // 180° rotation
	Sequential bool // Sequential COM pin configuration

	// Level is the grey level of lit pixels, 1 to 15 (default: 15).
	Level byte

	// Optional hardware reset pin
	RST gpio.PinIO
}

// SSD1322 drives a 4-bit greyscale SSD1322 panel over SPI as a monochrome
// display: On pixels are lit at the configured grey level, Off pixels are
// dark.
type SSD1322 struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinIO

	rect         image.Rectangle
	columnOffset int // Pixels between RAM column 0 and the panel's first column
	level        byte

	halted bool
	port   io.Closer // Set by OpenSSD1322
}

// NewSSD1322 connects to the panel at 10MHz, Mode0 and runs the power-on
// sequence. The dc (Data/Command) pin must be an output.
//
// opts can be nil to use defaults (256x64).
func NewSSD1322(p spi.Port, dc gpio.PinOut, opts *SSD1322Opts) (*SSD1322, error) {
	if opts == nil {
		opts = &SSD1322Opts{}
	}
	o := *opts
	if o.W == 0 && o.H == 0 {
		o.W, o.H = 256, 64
	}
	if o.W <= 0 || o.W%ssd1322ColumnPix != 0 || o.W > ssd1322RAMWidth {
		return nil, errors.New("display: ssd1322 width must be a multiple of 4 between 4 and 480")
	}
	if o.H <= 0 || o.H > 128 {
		return nil, errors.New("display: ssd1322 height must be between 1 and 128")
	}
	if o.Level == 0 {
		o.Level = 0x0F
	}
	if o.Level > 0x0F {
		return nil, errors.New("display: ssd1322 grey level must be between 1 and 15")
	}
	if dc == nil {
		return nil, errors.New("display: ssd1322 needs a data/command pin")
	}

	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("display: ssd1322 connect: %w", err)
	}

	d := &SSD1322{
		c:            c,
		dc:           dc,
		rst:          o.RST,
		rect:         image.Rect(0, 0, o.W, o.H),
		columnOffset: (ssd1322RAMWidth - o.W) / 2,
		level:        o.Level,
	}
	if err := d.init(&o); err != nil {
		return nil, err
	}
	return d, nil
}

// OpenSSD1322 initialises the host drivers and opens the panel on the named
// SPI port (empty for the first one) with the named data/command pin.
func OpenSSD1322(port, dc string, opts *SSD1322Opts) (*SSD1322, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("display: host init: %w", err)
	}
	pin := gpioreg.ByName(dc)
	if pin == nil {
		return nil, fmt.Errorf("display: GPIO pin %s not found", dc)
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("display: open SPI port %q: %w", port, err)
	}
	d, err := NewSSD1322(p, pin, opts)
	if err != nil {
		p.Close()
		return nil, err
	}
	d.port = p
	return d, nil
}

func (d *SSD1322) init(opts *SSD1322Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("display: ssd1322 reset low: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("display: ssd1322 reset high: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	remap1, remap2 := byte(0x14), byte(0x11)
	if opts.Rotated {
		remap1 = 0x06
	}
	if opts.Sequential {
		remap2 |= 0x01
	}

	cmds := []byte{
		0xFD, 0x12, // Unlock
		0xAE,       // Display off
		0xB3, 0xF2, // Clock divider
		0xCA, byte(opts.H - 1), // MUX ratio
		0xA2, 0x00, // Display offset
		0xA1, 0x00, // Start line
		0xA0, remap1, remap2, // Remap and dual COM
		0xAB, 0x01, // Internal VDD
		0xB4, 0xA0, 0xFD, // VSL
		0xC1, 0xFF, // Contrast
		0xC7, 0x0F, // Master contrast
		0xB9,       // Default grey table
		0xB1, 0xE2, // Phase length
		0xD1, 0x82, 0x20, // Enhancement
		0xBB, 0x1F, // Pre-charge voltage
		0xB6, 0x08, // Second pre-charge
		0xBE, 0x07, // VCOMH
		0xA6, // Normal display
		0xA9, // Exit partial display
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	if err := d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), make([]byte, d.rect.Dx()*d.rect.Dy()/2)); err != nil {
		return err
	}
	return d.sendCommands([]byte{0xAF})
}

// Bounds returns the panel size.
func (d *SSD1322) Bounds() image.Rectangle {
	return d.rect
}

// Draw sends the r region of the panel from src, starting at sp. The region
// is widened to whole 4-pixel RAM columns.
func (d *SSD1322) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("display: ssd1322 halted")
	}
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}

	// Widen to RAM columns, keeping the src offset.
	x0 := r.Min.X &^ (ssd1322ColumnPix - 1)
	x1 := (r.Max.X + ssd1322ColumnPix - 1) &^ (ssd1322ColumnPix - 1)
	sp = sp.Sub(image.Pt(r.Min.X-x0, 0))
	r.Min.X, r.Max.X = x0, x1

	return d.writeRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), d.pack(r, src, sp))
}

// pack converts the r region into 4-bit pixels, two per byte with the left
// pixel in the high nibble.
func (d *SSD1322) pack(r image.Rectangle, src image.Image, sp image.Point) []byte {
	bit := func(x, y int) image1bit.Bit {
		return image1bit.BitModel.Convert(src.At(x, y)).(image1bit.Bit)
	}
	if img, ok := src.(*image1bit.HorizontalMSB); ok {
		bit = img.BitAt
	}

	out := make([]byte, 0, r.Dx()*r.Dy()/2)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x += 2 {
			var b byte
			if bit(sp.X+x, sp.Y+y) {
				b |= d.level << 4
			}
			if bit(sp.X+x+1, sp.Y+y) {
				b |= d.level
			}
			out = append(out, b)
		}
	}
	return out
}

// writeRect writes packed pixels to a region; x and width are multiples of 4.
func (d *SSD1322) writeRect(x, y, width, height int, pixels []byte) error {
	colStart := byte((x + d.columnOffset) / ssd1322ColumnPix)
	colEnd := byte((x + width - 1 + d.columnOffset) / ssd1322ColumnPix)
	cmds := []byte{
		0x15, colStart, colEnd, // Column address
		0x75, byte(y), byte(y + height - 1), // Row address
		0x5C, // Write RAM
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	return d.sendData(pixels)
}

func (d *SSD1322) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

func (d *SSD1322) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// Halt turns the panel off. Further draws fail.
func (d *SSD1322) Halt() error {
	d.halted = true
	return d.sendCommands([]byte{0xAE})
}

// Close halts the panel and releases the SPI port opened by OpenSSD1322.
func (d *SSD1322) Close() error {
	err := d.Halt()
	if d.port != nil {
		err = errors.Join(err, d.port.Close())
	}
	return err
}

func (d *SSD1322) String() string {
	return fmt.Sprintf("display.SSD1322{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
