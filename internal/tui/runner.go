package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/terminal"
)

// ErrInterrupted is returned when the user aborts the test before it ends.
var ErrInterrupted = errors.New("test interrupted")

// PollInterval is how often the runner looks for input.
const PollInterval = 10 * time.Millisecond

// KeySource is the raw input the runner drains.
type KeySource interface {
	HasPending() (bool, error)
	ReadKey() (terminal.Key, error)
}

// Runner drives a session from a key source and redraws it.
type Runner struct {
	in       KeySource
	renderer *Renderer
	now      func() time.Time
	poll     time.Duration
}

func NewRunner(in KeySource, r *Renderer) *Runner {
	return &Runner{
		in:       in,
		renderer: r,
		now:      time.Now,
		poll:     PollInterval,
	}
}

// Run blocks until the session finishes. It returns ErrInterrupted when the
// abort key is pressed or ctx is cancelled; the session is left as is.
func (rn *Runner) Run(ctx context.Context, s *session.Session) error {
	if err := rn.renderer.Reserve(); err != nil {
		return err
	}
	now := rn.now()
	if err := rn.renderer.Draw(s, now); err != nil {
		return err
	}
	lastDraw := now

	ticker := time.NewTicker(rn.poll)
	defer ticker.Stop()

	for !s.Finished() {
		select {
		case <-ctx.Done():
			return ErrInterrupted
		case <-ticker.C:
		}

		now = rn.now()
		dirty, err := rn.drain(s, now)
		if err != nil {
			return err
		}
		if s.Tick(now) {
			dirty = true
		}
		if s.Clock().Started() && now.Sub(lastDraw) >= session.TickInterval {
			dirty = true
		}
		if !dirty {
			continue
		}
		if err := rn.renderer.Draw(s, now); err != nil {
			return err
		}
		lastDraw = now
	}
	return nil
}

// drain applies every pending key. A closed input quits the session.
func (rn *Runner) drain(s *session.Session, now time.Time) (bool, error) {
	dirty := false
	for !s.Finished() {
		pending, err := rn.in.HasPending()
		if err != nil {
			return dirty, fmt.Errorf("failed to poll input: %w", err)
		}
		if !pending {
			break
		}
		k, err := rn.in.ReadKey()
		if errors.Is(err, io.EOF) {
			s.Quit(now)
			return true, nil
		}
		if err != nil {
			return dirty, fmt.Errorf("failed to read key: %w", err)
		}
		ev, interrupt := eventFor(k)
		if interrupt {
			return dirty, ErrInterrupted
		}
		if s.Apply(ev, now) {
			dirty = true
		}
	}
	return dirty, nil
}
