// Command monodash renders YAML dashboards on monochrome displays.
//
//	monodash render -l dash.yaml -o frame.png
//	monodash run -l dash.yaml --device ssd1306-i2c
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	layoutPath string
	logLevel   string
	width      int
	height     int
)

func main() {
	cfg, err := configFromEnv()
	if err != nil {
		logrus.Fatal(err)
	}

	rootCmd := &cobra.Command{
		Use:   "monodash",
		Short: "Render widget dashboards on monochrome displays",
		Long: `monodash draws the widgets described in a YAML layout (progress bars,
clocks, tanks, gauges, graphs, text boxes, symbols and QR codes) onto a
128x64-style monochrome canvas and sends it to an OLED, the Linux
framebuffer or a PNG file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&layoutPath, "layout", "l", cfg.Layout, "YAML layout file (env "+EnvLayout+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env "+EnvLogLevel+")")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Override the layout width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "Override the layout height in pixels")

	rootCmd.AddCommand(newRenderCmd(), newRunCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
