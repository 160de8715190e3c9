package display

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flavioheleno/monocanvas"
	"github.com/flavioheleno/monocanvas/image1bit"
)

// DefaultPeriod is the refresh period used when Opts.Period is zero.
const DefaultPeriod = 500 * time.Millisecond

// Opts is the configuration for a Task.
type Opts struct {
	// Period between refresh checks (default: 500ms).
	Period time.Duration

	// Splash is how long the splash frame stays up. Zero disables it.
	Splash time.Duration
	// SplashFunc draws the splash frame. Nil shows whatever the canvas
	// already holds.
	SplashFunc func(*monocanvas.Canvas) error

	// Changed reports whether the canvas should be sent. Nil means "a frame
	// was published with Canvas.Update since the last transfer".
	Changed func() bool

	// Ready is called once by Run after the splash is gone and the device
	// is cleared, before the first refresh.
	Ready func()

	Logger Logger
}

// Task periodically transfers a canvas to a Drawer.
type Task struct {
	canvas *monocanvas.Canvas
	dev    Drawer

	period     time.Duration
	splash     time.Duration
	splashFunc func(*monocanvas.Canvas) error
	changed    func() bool
	ready      func()
	log        Logger

	mu      sync.Mutex
	lastGen uint64
	prev    *image1bit.HorizontalMSB // Last transferred frame
	next    *image1bit.HorizontalMSB // Snapshot scratch
}

// New creates a Task sending c to dev. The device must be the size of the
// canvas.
//
// opts can be nil to use defaults.
func New(c *monocanvas.Canvas, dev Drawer, opts *Opts) (*Task, error) {
	if c == nil {
		return nil, errors.New("display: nil canvas")
	}
	if dev == nil {
		return nil, errors.New("display: nil device")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Period < 0 {
		return nil, errors.New("display: period must not be negative")
	}
	if opts.Splash < 0 {
		return nil, errors.New("display: splash duration must not be negative")
	}
	if got, want := dev.Bounds().Size(), c.Bounds().Size(); got != want {
		return nil, fmt.Errorf("display: device is %dx%d, canvas is %dx%d", got.X, got.Y, want.X, want.Y)
	}

	t := &Task{
		canvas:     c,
		dev:        dev,
		period:     opts.Period,
		splash:     opts.Splash,
		splashFunc: opts.SplashFunc,
		changed:    opts.Changed,
		ready:      opts.Ready,
		log:        opts.Logger,
		prev:       image1bit.NewHorizontalMSB(c.Bounds()),
	}
	if t.period == 0 {
		t.period = DefaultPeriod
	}
	if t.log == nil {
		t.log = NoopLogger{}
	}
	if t.changed == nil {
		t.changed = func() bool { return c.Generation() != t.lastGen }
	}
	return t, nil
}

// Run clears the device, shows the splash frame if configured, calls
// Opts.Ready and then refreshes every period until ctx is done. Refresh failures are logged and
// retried on the next cycle.
func (t *Task) Run(ctx context.Context) error {
	if err := t.clear(); err != nil {
		return err
	}

	if t.splash > 0 {
		if err := t.showSplash(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.splash):
		}
		if err := t.clear(); err != nil {
			return err
		}
	}

	if t.ready != nil {
		t.ready()
	}

	ticker := time.NewTicker(t.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := t.Refresh(); err != nil {
				t.log.Errorf(component, "refresh failed: %v", err)
			}
		}
	}
}

// Refresh runs one cycle: when the change predicate holds, the canvas is
// snapshotted and the region that differs from the last transfer is sent.
// It reports whether anything was sent.
func (t *Task) Refresh() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.changed() {
		return false, nil
	}
	gen := t.canvas.Generation()
	t.next = t.canvas.Snapshot(t.next)

	r := image1bit.Diff(t.prev, t.next)
	if r.Empty() {
		t.lastGen = gen
		return false, nil
	}
	if err := t.dev.Draw(r, t.next, r.Min); err != nil {
		return false, fmt.Errorf("display: draw %v: %w", r, err)
	}
	t.prev, t.next = t.next, t.prev
	t.lastGen = gen
	return true, nil
}

// clear blanks the device and forgets the last transferred frame.
func (t *Task) clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.prev.Fill(image1bit.Off)
	if err := t.dev.Draw(t.prev.Rect, t.prev, t.prev.Rect.Min); err != nil {
		return fmt.Errorf("display: clear: %w", err)
	}
	return nil
}

func (t *Task) showSplash() error {
	if t.splashFunc != nil {
		if err := t.canvas.Update(t.splashFunc); err != nil {
			return fmt.Errorf("display: splash: %w", err)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	gen := t.canvas.Generation()
	frame := t.canvas.Snapshot(nil)
	if err := t.dev.Draw(frame.Rect, frame, frame.Rect.Min); err != nil {
		return fmt.Errorf("display: splash: %w", err)
	}
	// The splash is not redrawn after the device is cleared unless the canvas
	// publishes a new frame.
	t.lastGen = gen
	t.log.Infof(component, "splash shown for %v", t.splash)
	return nil
}
