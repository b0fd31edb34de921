// Package terminal reads raw keystrokes from the controlling terminal.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"
)

const (
	escByte = 0x1b
	// escapeTimeout separates a standalone ESC from the start of a sequence.
	escapeTimeout = 25 * time.Millisecond
	readBufSize   = 256
)

// ErrNotTerminal is returned by Enter when input is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// backend is the platform-specific half of RawInput.
type backend interface {
	isTerminal() bool
	makeRaw() (restore func() error, err error)
	// poll waits up to timeout for input and reports whether a read would
	// not block.
	poll(timeout time.Duration) (bool, error)
	read(p []byte) (int, error)
}

// RawInput delivers unbuffered, unechoed keystrokes one logical key at a time.
type RawInput struct {
	b       backend
	restore func() error
	buf     []byte
	scratch []byte
}

// NewRawInput returns a RawInput reading from f.
func NewRawInput(f *os.File) *RawInput {
	return newRawInput(newBackend(f))
}

func newRawInput(b backend) *RawInput {
	return &RawInput{
		b:       b,
		buf:     make([]byte, 0, readBufSize),
		scratch: make([]byte, readBufSize),
	}
}

// Enter switches the terminal to raw mode, capturing the previous mode for Exit.
func (r *RawInput) Enter() error {
	if r.restore != nil {
		return nil
	}
	if !r.b.isTerminal() {
		return ErrNotTerminal
	}
	restore, err := r.b.makeRaw()
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	r.restore = restore
	return nil
}

// Exit restores the mode captured by Enter. Calling it again is a no-op.
func (r *RawInput) Exit() error {
	if r.restore == nil {
		return nil
	}
	restore := r.restore
	r.restore = nil
	if err := restore(); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// HasPending reports whether ReadKey has input to consume without blocking.
func (r *RawInput) HasPending() (bool, error) {
	if len(r.buf) > 0 {
		return true, nil
	}
	return r.b.poll(0)
}

// ReadKey consumes one logical key. Escape sequences such as arrow keys are
// swallowed whole and reported as KeyNone. io.EOF means input was closed.
func (r *RawInput) ReadKey() (Key, error) {
	if len(r.buf) == 0 {
		if err := r.fill(0); err != nil {
			return Key{}, err
		}
		if len(r.buf) == 0 {
			return Key{}, nil
		}
	}
	switch b := r.buf[0]; {
	case b == escByte:
		return r.readEscape()
	case b >= utf8.RuneSelf:
		return r.readUTF8()
	default:
		r.consume(1)
		return decodeByte(b), nil
	}
}

func decodeByte(b byte) Key {
	switch {
	case b == ' ':
		return Key{Type: KeySpace, Rune: ' '}
	case b > ' ' && b < 0x7f:
		return Key{Type: KeyRune, Rune: rune(b)}
	case b == 0x7f, b == 0x08:
		return Key{Type: KeyBackspace}
	case b == '\r', b == '\n':
		return Key{Type: KeyEnter}
	case b == 0x03:
		return Key{Type: KeyCtrlC}
	default:
		return Key{Type: KeyControl, Rune: rune(b)}
	}
}

func (r *RawInput) readEscape() (Key, error) {
	if len(r.buf) == 1 {
		if err := r.fill(escapeTimeout); err != nil && !errors.Is(err, io.EOF) {
			return Key{}, err
		}
		if len(r.buf) == 1 {
			r.consume(1)
			return Key{Type: KeyEscape}, nil
		}
	}
	// A second ESC starts a new key; the first one stands alone.
	if r.buf[1] == escByte {
		r.consume(1)
		return Key{Type: KeyEscape}, nil
	}
	n := escapeLen(r.buf)
	if n == 0 {
		if err := r.fill(escapeTimeout); err != nil && !errors.Is(err, io.EOF) {
			return Key{}, err
		}
		// Still incomplete: drop whatever arrived.
		if n = escapeLen(r.buf); n == 0 {
			n = len(r.buf)
		}
	}
	r.consume(n)
	return Key{}, nil
}

// escapeLen returns the length of the escape sequence at the start of buf,
// or 0 when more bytes are needed. buf must start with ESC and hold at least
// two bytes.
func escapeLen(buf []byte) int {
	switch buf[1] {
	case '[':
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				return i + 1
			}
		}
		return 0
	case 'O':
		if len(buf) < 3 {
			return 0
		}
		return 3
	default:
		return 2
	}
}

func (r *RawInput) readUTF8() (Key, error) {
	if !utf8.FullRune(r.buf) {
		if err := r.fill(escapeTimeout); err != nil && !errors.Is(err, io.EOF) {
			return Key{}, err
		}
	}
	ru, size := utf8.DecodeRune(r.buf)
	r.consume(size)
	if ru == utf8.RuneError {
		return Key{}, nil
	}
	return Key{Type: KeyRune, Rune: ru}, nil
}

// fill appends whatever input arrives within timeout.
func (r *RawInput) fill(timeout time.Duration) error {
	ready, err := r.b.poll(timeout)
	if err != nil {
		return fmt.Errorf("failed to poll input: %w", err)
	}
	if !ready {
		return nil
	}
	n, err := r.b.read(r.scratch)
	r.buf = append(r.buf, r.scratch[:n]...)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("failed to read input: %w", err)
	}
	if n == 0 {
		return io.EOF
	}
	return nil
}

func (r *RawInput) consume(n int) {
	if n >= len(r.buf) {
		r.buf = r.buf[:0]
		return
	}
	copy(r.buf, r.buf[n:])
	r.buf = r.buf[:len(r.buf)-n]
}
