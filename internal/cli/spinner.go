package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a stderr progress indicator shown while a passage fetch is in
// flight. It stops on Stop or when the surrounding context is cancelled.
type Spinner struct {
	message  string
	ctx      context.Context
	stop     context.CancelFunc
	stopped  chan struct{}
	stopOnce sync.Once

	mu sync.Mutex // guards stderr writes against Stop clearing the line
}

// newSpinnerWithContext creates a spinner bound to ctx.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		ctx:     ctx,
		stop:    cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation on stderr.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.mu.Lock()
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop halts the animation and waits for the goroutine to clear the line.
// Safe to call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.stop()
		<-s.stopped
	})
}

// StopWithError stops the spinner and prints an error line in its place.
func (s *Spinner) StopWithError(format string, args ...any) {
	s.Stop()
	printError(format, args...)
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
