//go:build unix

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type fdBackend struct {
	fd int
}

func newBackend(f *os.File) backend {
	return &fdBackend{fd: int(f.Fd())}
}

func (b *fdBackend) isTerminal() bool {
	return term.IsTerminal(b.fd)
}

func (b *fdBackend) makeRaw() (func() error, error) {
	old, err := term.MakeRaw(b.fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(b.fd, old)
	}, nil
}

func (b *fdBackend) poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.fd), Events: unix.POLLIN},
	}
	for {
		n, err := unix.Poll(fds, int(timeout/time.Millisecond))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

func (b *fdBackend) read(p []byte) (int, error) {
	for {
		n, err := unix.Read(b.fd, p)
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}
