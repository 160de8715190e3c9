package display

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOpenRetry(t *testing.T) {
	log := &countingLogger{}
	attempts := 0
	open := func() (*fakeDrawer, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("not yet")
		}
		return newFakeDrawer(8, 8), nil
	}

	dev, err := OpenRetry(context.Background(), open, time.Millisecond, log)
	if err != nil {
		t.Fatalf("OpenRetry() error = %v", err)
	}
	if dev == nil {
		t.Fatal("OpenRetry() returned nil device")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if log.errs != 2 {
		t.Errorf("logged %d errors, want 2", log.errs)
	}
}

func TestOpenRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	boom := errors.New("no bus")
	_, err := OpenRetry(ctx, func() (*fakeDrawer, error) { return nil, boom }, time.Hour, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("OpenRetry() error = %v, want canceled", err)
	}
}
