//go:build windows

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// consoleBackend relies on term.MakeRaw enabling virtual terminal input, so
// arrow keys arrive as the same escape sequences a unix tty sends.
type consoleBackend struct {
	fd     int
	handle windows.Handle
}

func newBackend(f *os.File) backend {
	return &consoleBackend{fd: int(f.Fd()), handle: windows.Handle(f.Fd())}
}

func (b *consoleBackend) isTerminal() bool {
	return term.IsTerminal(b.fd)
}

func (b *consoleBackend) makeRaw() (func() error, error) {
	old, err := term.MakeRaw(b.fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(b.fd, old)
	}, nil
}

func (b *consoleBackend) poll(timeout time.Duration) (bool, error) {
	event, err := windows.WaitForSingleObject(b.handle, uint32(timeout/time.Millisecond))
	if err != nil {
		return false, err
	}
	return event == windows.WAIT_OBJECT_0, nil
}

func (b *consoleBackend) read(p []byte) (int, error) {
	var n uint32
	if err := windows.ReadFile(b.handle, p, &n, nil); err != nil {
		return 0, err
	}
	return int(n), nil
}
