package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStopWaitsForGoroutine(t *testing.T) {
	s := newSpinnerWithContext(t.Context(), "fetching")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	select {
	case <-s.stopped:
	default:
		t.Error("animation goroutine should have exited after Stop")
	}

	// Second Stop must not panic or block.
	s.Stop()
}

func TestSpinnerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	s := newSpinnerWithContext(ctx, "fetching")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Error("spinner should stop when the context is cancelled")
	}
}
