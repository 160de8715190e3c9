package display

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// SSD1306Opts selects and configures an SSD1306 module.
type SSD1306Opts struct {
	W int // Width (default: 128)
	H int // Height (default: 64)

	// SPI selects the SPI transport; I²C is used otherwise.
	SPI bool
	// Bus is the I²C bus or SPI port name. Empty opens the first one.
	Bus string
	// DC is the data/command GPIO, required for SPI.
	DC string

	Rotated bool
}

// SSD1306 is an opened SSD1306 module. Close halts the panel and releases
// the bus.
type SSD1306 struct {
	*ssd1306.Dev
	bus io.Closer
}

// OpenSSD1306 initialises the host drivers, opens the bus and the panel.
//
// opts can be nil to use defaults (128x64 on the first I²C bus).
func OpenSSD1306(opts *SSD1306Opts) (*SSD1306, error) {
	if opts == nil {
		opts = &SSD1306Opts{}
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("display: host init: %w", err)
	}

	o := ssd1306.DefaultOpts
	if opts.W != 0 {
		o.W = opts.W
	}
	if opts.H != 0 {
		o.H = opts.H
	}
	if o.H == 32 {
		o.Sequential = true
	}
	o.Rotated = opts.Rotated

	if !opts.SPI {
		b, err := i2creg.Open(opts.Bus)
		if err != nil {
			return nil, fmt.Errorf("display: open I²C bus %q: %w", opts.Bus, err)
		}
		dev, err := ssd1306.NewI2C(b, &o)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("display: ssd1306: %w", err)
		}
		return &SSD1306{Dev: dev, bus: b}, nil
	}

	if opts.DC == "" {
		return nil, errors.New("display: SPI needs a data/command pin")
	}
	dc := gpioreg.ByName(opts.DC)
	if dc == nil {
		return nil, fmt.Errorf("display: GPIO pin %s not found", opts.DC)
	}
	p, err := spireg.Open(opts.Bus)
	if err != nil {
		return nil, fmt.Errorf("display: open SPI port %q: %w", opts.Bus, err)
	}
	dev, err := ssd1306.NewSPI(p, dc, &o)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("display: ssd1306: %w", err)
	}
	return &SSD1306{Dev: dev, bus: p}, nil
}

// Close turns the panel off and closes the bus.
func (d *SSD1306) Close() error {
	return errors.Join(d.Dev.Halt(), d.bus.Close())
}
