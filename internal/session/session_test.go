package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
)

var t0 = time.Unix(1_700_000_000, 0)

func typeWord(s *Session, word string, now time.Time) {
	for _, r := range word {
		s.Apply(Event{Type: EventChar, Char: r}, now)
	}
}

func TestFirstPrintableStartsClock(t *testing.T) {
	s := New([]string{"cat", "dog"}, DefaultDuration)
	if s.State() != NotStarted {
		t.Fatalf("expected not started, got %v", s.State())
	}
	if s.Apply(Event{Type: EventChar, Char: '\t'}, t0) {
		t.Fatalf("expected control char to be ignored")
	}
	if s.Apply(Event{Type: EventChar, Char: 'é'}, t0) {
		t.Fatalf("expected non-ascii rune to be ignored")
	}
	if s.State() != NotStarted {
		t.Fatalf("ignored keys must not start the session")
	}
	s.Apply(Event{Type: EventChar, Char: 'c'}, t0.Add(time.Second))
	if s.State() != Active {
		t.Fatalf("expected active, got %v", s.State())
	}
	if got := s.Clock().StartedAt(); !got.Equal(t0.Add(time.Second)) {
		t.Fatalf("unexpected start instant %v", got)
	}
	s.Apply(Event{Type: EventChar, Char: 'a'}, t0.Add(2*time.Second))
	if got := s.Clock().StartedAt(); !got.Equal(t0.Add(time.Second)) {
		t.Fatalf("start instant must not move, got %v", got)
	}
}

func TestSubmitRecordsAttempt(t *testing.T) {
	s := New([]string{"cat", "dog", "fox"}, DefaultDuration)
	typeWord(s, "cat", t0)
	s.Apply(Event{Type: EventSubmit}, t0)
	typeWord(s, "dg", t0)
	s.Apply(Event{Type: EventSubmit}, t0)

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(history))
	}
	if history[0] != (model.Attempt{Typed: "cat", Target: "cat"}) {
		t.Fatalf("unexpected first attempt %+v", history[0])
	}
	if history[1] != (model.Attempt{Typed: "dg", Target: "dog"}) {
		t.Fatalf("unexpected second attempt %+v", history[1])
	}
	if s.TotalChars() != 5 {
		t.Fatalf("expected 5 chars, got %d", s.TotalChars())
	}
	if s.Cursor() != 2 || s.CurrentWord() != "fox" || s.Input() != "" {
		t.Fatalf("unexpected cursor state: %d %q %q", s.Cursor(), s.CurrentWord(), s.Input())
	}
}

func TestEmptySubmitIsRecorded(t *testing.T) {
	s := New([]string{"cat", "dog"}, DefaultDuration)
	s.Apply(Event{Type: EventSubmit}, t0)
	history := s.History()
	if len(history) != 1 || history[0].Typed != "" || history[0].Target != "cat" {
		t.Fatalf("expected empty attempt against cat, got %+v", history)
	}
	if s.TotalChars() != 0 {
		t.Fatalf("expected no chars counted, got %d", s.TotalChars())
	}
}

func TestBackspaceOnEmptyIsNoop(t *testing.T) {
	s := New([]string{"cat"}, DefaultDuration)
	for i := 0; i < 3; i++ {
		if s.Apply(Event{Type: EventBackspace}, t0) {
			t.Fatalf("expected no change on empty buffer")
		}
	}
	typeWord(s, "ca", t0)
	s.Apply(Event{Type: EventBackspace}, t0)
	if s.Input() != "c" {
		t.Fatalf("expected %q, got %q", "c", s.Input())
	}
}

func TestBufferHasNoLengthLimit(t *testing.T) {
	s := New([]string{"a"}, DefaultDuration)
	typeWord(s, "abcdefghijklmnopqrstuvwxyz", t0)
	if s.Input() != "abcdefghijklmnopqrstuvwxyz" {
		t.Fatalf("unexpected buffer %q", s.Input())
	}
}

func TestQuitDiscardsBuffer(t *testing.T) {
	s := New([]string{"cat", "dog"}, DefaultDuration)
	typeWord(s, "cat", t0)
	s.Apply(Event{Type: EventSubmit}, t0)
	typeWord(s, "do", t0)
	s.Apply(Event{Type: EventQuit}, t0.Add(time.Second))

	if s.State() != Finished || s.Reason() != model.EndQuit {
		t.Fatalf("expected finished by quit, got %v/%v", s.State(), s.Reason())
	}
	if s.Submitted() != 1 || s.TotalChars() != 3 {
		t.Fatalf("quit must not record the buffer: %d attempts, %d chars", s.Submitted(), s.TotalChars())
	}
	if s.Input() != "" {
		t.Fatalf("expected buffer discarded, got %q", s.Input())
	}
	if s.Apply(Event{Type: EventChar, Char: 'x'}, t0) {
		t.Fatalf("expected no transitions after finish")
	}
}

func TestQueueExhaustionFinishes(t *testing.T) {
	s := New([]string{"a", "b"}, DefaultDuration)
	typeWord(s, "a", t0)
	s.Apply(Event{Type: EventSubmit}, t0)
	if s.Finished() {
		t.Fatalf("finished too early")
	}
	s.Apply(Event{Type: EventSubmit}, t0)
	if !s.Finished() || s.Reason() != model.EndQueueExhausted {
		t.Fatalf("expected queue exhausted, got %v", s.Reason())
	}
	if s.Cursor() != s.QueueLen() {
		t.Fatalf("expected cursor at end, got %d", s.Cursor())
	}
	if s.CurrentWord() != "" {
		t.Fatalf("expected no current word")
	}
}

func TestTimeExpiryFinishes(t *testing.T) {
	s := New([]string{"cat", "dog"}, DefaultDuration)
	typeWord(s, "ca", t0)
	if s.Tick(t0.Add(59 * time.Second)) {
		t.Fatalf("expired too early")
	}
	if !s.Tick(t0.Add(DefaultDuration)) {
		t.Fatalf("expected expiry at the duration")
	}
	if s.Reason() != model.EndTimeExpired || s.Input() != "" || s.Submitted() != 0 {
		t.Fatalf("unexpected state after expiry: %v %q %d", s.Reason(), s.Input(), s.Submitted())
	}
	if s.Tick(t0.Add(2 * DefaultDuration)) {
		t.Fatalf("expiry must be reported once")
	}
}

func TestApplyAfterExpiryFinishesInstead(t *testing.T) {
	s := New([]string{"cat", "dog"}, DefaultDuration)
	typeWord(s, "cat", t0)
	s.Apply(Event{Type: EventSubmit}, t0.Add(61*time.Second))
	if s.Reason() != model.EndTimeExpired {
		t.Fatalf("expected time expiry, got %v", s.Reason())
	}
	if s.Submitted() != 0 {
		t.Fatalf("late submit must not be recorded")
	}
}

func TestTickBeforeStartNeverExpires(t *testing.T) {
	s := New([]string{"cat"}, DefaultDuration)
	if s.Tick(t0.Add(time.Hour)) {
		t.Fatalf("clock must not run before the first key")
	}
}

func TestUpcoming(t *testing.T) {
	s := New([]string{"a", "b", "c", "d"}, DefaultDuration)
	up := s.Upcoming(2)
	if len(up) != 2 || up[0] != "b" || up[1] != "c" {
		t.Fatalf("unexpected upcoming %v", up)
	}
	s.Apply(Event{Type: EventSubmit}, t0)
	s.Apply(Event{Type: EventSubmit}, t0)
	if up := s.Upcoming(9); len(up) != 1 || up[0] != "d" {
		t.Fatalf("unexpected upcoming near end %v", up)
	}
}

func TestEmptyQueueStartsFinished(t *testing.T) {
	s := New(nil, DefaultDuration)
	if !s.Finished() {
		t.Fatalf("expected empty queue to be finished")
	}
}

func TestRandomEventsKeepInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	letters := []rune("abcdefghijklmnopqrstuvwxyz;.")
	for run := 0; run < 200; run++ {
		queue := make([]string, 1+rnd.Intn(20))
		for i := range queue {
			queue[i] = "word"
		}
		s := New(queue, DefaultDuration)
		submittedLen := 0
		lastCursor := 0
		for step := 0; step < 300 && !s.Finished(); step++ {
			var ev Event
			switch n := rnd.Intn(10); {
			case n < 6:
				ev = Event{Type: EventChar, Char: letters[rnd.Intn(len(letters))]}
			case n < 8:
				ev = Event{Type: EventBackspace}
			default:
				ev = Event{Type: EventSubmit}
				submittedLen += len(s.Input())
			}
			s.Apply(ev, t0)
			if s.Cursor() < lastCursor {
				t.Fatalf("cursor moved backwards")
			}
			if s.Cursor() > s.QueueLen() {
				t.Fatalf("cursor %d beyond queue %d", s.Cursor(), s.QueueLen())
			}
			if s.Cursor() == s.QueueLen() && s.State() != Finished {
				t.Fatalf("cursor at end must finish the session")
			}
			lastCursor = s.Cursor()
			if s.TotalChars() != submittedLen {
				t.Fatalf("total chars %d != submitted %d", s.TotalChars(), submittedLen)
			}
		}
		sum := 0
		for _, a := range s.History() {
			sum += len(a.Typed)
		}
		if sum != s.TotalChars() {
			t.Fatalf("history length sum %d != total chars %d", sum, s.TotalChars())
		}
	}
}
