package display

import (
	"context"
	"fmt"
	"time"
)

// OpenRetry calls open until it succeeds or ctx is done, waiting interval
// between attempts and logging every failure.
func OpenRetry[D Drawer](ctx context.Context, open func() (D, error), interval time.Duration, log Logger) (D, error) {
	if log == nil {
		log = NoopLogger{}
	}
	for attempt := 1; ; attempt++ {
		dev, err := open()
		if err == nil {
			if attempt > 1 {
				log.Infof(component, "device ready after %d attempts", attempt)
			}
			return dev, nil
		}
		log.Errorf(component, "cannot initialise device (attempt %d): %v", attempt, err)

		select {
		case <-ctx.Done():
			var zero D
			return zero, fmt.Errorf("display: giving up after %d attempts: %w (last error: %v)", attempt, ctx.Err(), err)
		case <-time.After(interval):
		}
	}
}
