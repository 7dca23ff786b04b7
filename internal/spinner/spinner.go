// Package spinner renders a small terminal progress indicator during
// fetches and long analyses.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Spinner animates a message on one terminal line until stopped.
type Spinner struct {
	frames  []string
	delay   time.Duration
	writer  io.Writer
	message string

	mu     sync.RWMutex
	active bool
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a spinner that writes to the given writer. ctx cancels the
// animation goroutine.
func New(ctx context.Context, writer io.Writer, message string) *Spinner {
	spinCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		delay:   100 * time.Millisecond,
		writer:  writer,
		message: message,
		ctx:     spinCtx,
		cancel:  cancel,
	}
}

// Start begins the animation. It is a no-op when the writer is not a
// terminal, so redirected output stays clean.
func (s *Spinner) Start() {
	if f, ok := s.writer.(*os.File); ok && !isTerminal(f) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true

	s.wg.Add(1)
	go s.run()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	fmt.Fprint(s.writer, "\r\033[2K")
}

// IsActive reports whether the spinner is currently animating.
func (s *Spinner) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// UpdateMessage replaces the message shown next to the spinner.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

func (s *Spinner) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			glyph := s.frames[frame%len(s.frames)]
			message := s.message
			s.mu.RUnlock()

			fmt.Fprintf(s.writer, "\r%s %s", glyph, message)
			frame++
		}
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
