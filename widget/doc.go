// Package widget draws self-contained dashboard elements onto a monochrome
// canvas: progress bars, analog clocks, tanks, gauges, line and bar graphs,
// text boxes, icons and QR codes.
//
// Widgets are plain functions. They take the canvas explicitly, run to
// completion without blocking and keep no state between calls, so a frame is
// built by calling several of them inside monocanvas.Canvas.Update:
//
//	err := c.Update(func(c *monocanvas.Canvas) error {
//		c.Clear()
//		if err := widget.Gauge(c, 0, 12, volts, widget.Dial{X: 64, Y: 40, R: 30, Scale: true}); err != nil {
//			return err
//		}
//		return widget.LineGraph(c, history, widget.Rect{X: 0, Y: 44, W: 128, H: 20})
//	})
//
// Geometry is given as a Rect (top-left anchor) or a Dial (centre anchor).
// The Scale flag enables the numeric annotations a widget supports.
//
// Widgets do not clip. Pixels that fall outside the canvas are dropped by the
// canvas itself.
//
// Labels are printed with the canvas' current face and assume the classic
// 6×8 cell when positioning text.
package widget
