// Package session holds the typing test state machine.
package session

import (
	"time"

	"github.com/verte-zerg/typetest/internal/model"
)

// QueueSize is the number of words generated for a session.
const QueueSize = 200

// State is the lifecycle stage of a session.
type State int

const (
	NotStarted State = iota
	Active
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Active:
		return "active"
	default:
		return "finished"
	}
}

// EventType classifies a key event fed to the session.
type EventType int

const (
	EventOther EventType = iota
	EventChar
	EventSubmit
	EventBackspace
	EventQuit
)

// Event is one decoded keystroke.
type Event struct {
	Type EventType
	Char rune
}

// Session tracks the word queue, current input and submitted attempts.
type Session struct {
	queue      []string
	cursor     int
	input      []rune
	history    []model.Attempt
	totalChars int
	clock      Clock
	reason     model.EndReason
	endedAt    time.Time
}

// New builds a session over queue. The queue is not copied and must not be
// modified afterwards.
func New(queue []string, duration time.Duration) *Session {
	s := &Session{
		queue: queue,
		clock: NewClock(duration),
	}
	if len(queue) == 0 {
		s.reason = model.EndQueueExhausted
	}
	return s
}

// State reports the current lifecycle stage.
func (s *Session) State() State {
	switch {
	case s.reason != model.EndNone:
		return Finished
	case s.clock.Started():
		return Active
	default:
		return NotStarted
	}
}

// Finished reports whether no further transitions are possible.
func (s *Session) Finished() bool {
	return s.reason != model.EndNone
}

// Apply feeds one key event to the session and reports whether state changed.
// Events after the session finished are ignored. If the clock ran out before
// the event arrived, the session finishes instead of applying it.
func (s *Session) Apply(ev Event, now time.Time) bool {
	if s.Finished() {
		return false
	}
	if s.Tick(now) {
		return true
	}
	switch ev.Type {
	case EventChar:
		if !isPrintable(ev.Char) {
			return false
		}
		s.clock.Start(now)
		s.input = append(s.input, ev.Char)
		return true
	case EventSubmit:
		s.submit(now)
		return true
	case EventBackspace:
		if len(s.input) == 0 {
			return false
		}
		s.input = s.input[:len(s.input)-1]
		return true
	case EventQuit:
		s.finish(model.EndQuit, now)
		return true
	default:
		return false
	}
}

// Tick finishes the session once its clock has expired. It reports whether
// the session finished on this call.
func (s *Session) Tick(now time.Time) bool {
	if s.Finished() || !s.clock.Expired(now) {
		return false
	}
	s.finish(model.EndTimeExpired, now)
	return true
}

// Quit finishes the session as if the quit key had been pressed.
func (s *Session) Quit(now time.Time) {
	if s.Finished() {
		return
	}
	s.finish(model.EndQuit, now)
}

func (s *Session) submit(now time.Time) {
	typed := string(s.input)
	s.history = append(s.history, model.Attempt{Typed: typed, Target: s.queue[s.cursor]})
	s.totalChars += len(s.input)
	s.input = s.input[:0]
	s.cursor++
	if s.cursor >= len(s.queue) {
		s.finish(model.EndQueueExhausted, now)
	}
}

// finish drops the unsubmitted buffer.
func (s *Session) finish(reason model.EndReason, now time.Time) {
	s.reason = reason
	s.endedAt = now
	s.input = nil
}

func isPrintable(r rune) bool {
	return r > ' ' && r <= '~'
}

// Cursor returns the index of the word being typed.
func (s *Session) Cursor() int {
	return s.cursor
}

// QueueLen returns the number of words in the queue.
func (s *Session) QueueLen() int {
	return len(s.queue)
}

// CurrentWord returns the target word at the cursor, or "" when exhausted.
func (s *Session) CurrentWord() string {
	if s.cursor >= len(s.queue) {
		return ""
	}
	return s.queue[s.cursor]
}

// Upcoming returns up to n words after the current one.
func (s *Session) Upcoming(n int) []string {
	start := s.cursor + 1
	if n <= 0 || start >= len(s.queue) {
		return nil
	}
	end := start + n
	if end > len(s.queue) {
		end = len(s.queue)
	}
	return s.queue[start:end]
}

// Input returns the unsubmitted buffer.
func (s *Session) Input() string {
	return string(s.input)
}

// History returns a copy of the submitted attempts.
func (s *Session) History() []model.Attempt {
	out := make([]model.Attempt, len(s.history))
	copy(out, s.history)
	return out
}

// Submitted returns the number of submitted attempts.
func (s *Session) Submitted() int {
	return len(s.history)
}

// TotalChars returns the summed length of all submitted inputs.
func (s *Session) TotalChars() int {
	return s.totalChars
}

// Clock returns a copy of the session clock.
func (s *Session) Clock() Clock {
	return s.clock
}

// Reason returns why the session finished, EndNone while it runs.
func (s *Session) Reason() model.EndReason {
	return s.reason
}

// EndedAt returns when the session finished, zero while it runs.
func (s *Session) EndedAt() time.Time {
	return s.endedAt
}
