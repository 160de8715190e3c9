package main

import (
	"fmt"
	"os"
	"time"

	"github.com/flavioheleno/monocanvas/display"
	"github.com/flavioheleno/monocanvas/layout"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		out   string
		scale int
		at    string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the layout once to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --time: %w", err)
				}
				now = t
			}
			return renderPNG(layoutPath, out, scale, now)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "dashboard.png", "Output PNG path")
	cmd.Flags().IntVar(&scale, "scale", 1, "Pixel scale of the PNG")
	cmd.Flags().StringVar(&at, "time", "", "Clock time as RFC 3339 (default: now)")
	return cmd
}

func loadLayout(path string) (*layout.Dashboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := layout.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if width > 0 {
		d.Width = width
	}
	if height > 0 {
		d.Height = height
	}
	return d, nil
}

func renderPNG(layoutPath, out string, scale int, now time.Time) error {
	d, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}
	c, err := d.NewCanvas()
	if err != nil {
		return err
	}
	if err := d.Frame(c, now); err != nil {
		return err
	}
	sink, err := display.NewPNGSink(out, d.Width, d.Height)
	if err != nil {
		return err
	}
	sink.Scale = scale
	frame := c.Snapshot(nil)
	if err := sink.Draw(frame.Rect, frame, frame.Rect.Min); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"layout": layoutPath, "output": out}).Info("frame written")
	return nil
}
