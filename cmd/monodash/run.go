package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/flavioheleno/monocanvas"
	"github.com/flavioheleno/monocanvas/display"
	"github.com/flavioheleno/monocanvas/layout"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	deviceSSD1306I2C = "ssd1306-i2c"
	deviceSSD1306SPI = "ssd1306-spi"
	deviceSSD1322    = "ssd1322"
	deviceFB         = "fb"
	devicePNG        = "png"
)

type runOpts struct {
	device  string
	bus     string
	dc      string
	fbPath  string
	out     string
	level   int
	rotated bool

	period time.Duration
	splash time.Duration
	retry  time.Duration
}

type device interface {
	display.Drawer
	io.Closer
}

// pngDevice gives PNGSink the Close method the other sinks have.
type pngDevice struct {
	*display.PNGSink
}

func (pngDevice) Close() error { return nil }

func newRunCmd(cfg config) *cobra.Command {
	o := runOpts{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Keep the layout on a display, redrawing every period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.device, "device", cfg.Device, "Output: ssd1306-i2c, ssd1306-spi, ssd1322, fb, png (env "+EnvDevice+")")
	f.StringVar(&o.bus, "bus", "", "I²C bus or SPI port name (empty for default)")
	f.StringVar(&o.dc, "dc", "GPIO25", "Data/Command pin name for SPI panels")
	f.StringVar(&o.fbPath, "fb", "/dev/fb0", "Framebuffer device")
	f.StringVarP(&o.out, "output", "o", "dashboard.png", "Output PNG path for the png device")
	f.IntVar(&o.level, "level", 15, "Grey level of lit pixels on the ssd1322")
	f.BoolVar(&o.rotated, "rotated", cfg.Rotated, "Rotate the panel by 180° (env "+EnvRotated+")")
	f.DurationVar(&o.period, "period", cfg.Period, "Redraw period (env "+EnvPeriod+")")
	f.DurationVar(&o.splash, "splash", cfg.Splash, "Splash duration, 0 disables (env "+EnvSplash+")")
	f.DurationVar(&o.retry, "retry", 5*time.Second, "Interval between device initialisation attempts")
	return cmd
}

func openDevice(o runOpts, w, h int, log display.Logger) (device, error) {
	switch o.device {
	case deviceSSD1306I2C, deviceSSD1306SPI:
		return display.OpenSSD1306(&display.SSD1306Opts{
			W: w, H: h,
			SPI:     o.device == deviceSSD1306SPI,
			Bus:     o.bus,
			DC:      o.dc,
			Rotated: o.rotated,
		})
	case deviceSSD1322:
		return display.OpenSSD1322(o.bus, o.dc, &display.SSD1322Opts{W: w, H: h, Rotated: o.rotated, Level: byte(o.level)})
	case deviceFB:
		return display.OpenFramebuffer(o.fbPath, w, h, log)
	case devicePNG:
		s, err := display.NewPNGSink(o.out, w, h)
		if err != nil {
			return nil, err
		}
		return pngDevice{s}, nil
	}
	return nil, fmt.Errorf("unknown device %q", o.device)
}

func run(ctx context.Context, o runOpts) error {
	log := logrusLogger{logrus.StandardLogger()}

	d, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}
	c, err := d.NewCanvas()
	if err != nil {
		return err
	}

	dev, err := display.OpenRetry(ctx, func() (device, error) {
		return openDevice(o, d.Width, d.Height, log)
	}, o.retry, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Errorf("monodash", "close device: %v", err)
		}
	}()
	log.Infof("monodash", "drawing %s on %s (%dx%d)", layoutPath, o.device, d.Width, d.Height)

	if o.period == 0 {
		o.period = display.DefaultPeriod
	}
	opts := &display.Opts{
		Period: o.period,
		Splash: o.splash,
		Logger: log,
		Ready:  func() { go redraw(ctx, d, c, o.period, log) },
	}
	if o.splash > 0 {
		opts.SplashFunc = splash
	}
	task, err := display.New(c, dev, opts)
	if err != nil {
		return err
	}

	if err := task.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// redraw publishes a new dashboard frame every period so clocks advance.
func redraw(ctx context.Context, d *layout.Dashboard, c *monocanvas.Canvas, period time.Duration, log display.Logger) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		if err := d.Frame(c, time.Now()); err != nil {
			log.Errorf("monodash", "render: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func splash(c *monocanvas.Canvas) error {
	c.Clear()
	c.SetCursor(c.Width()/2-24, c.Height()/2-4)
	c.PrintString("monodash")
	return nil
}
