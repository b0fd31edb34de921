//go:build windows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// EnableVirtualTerminal turns on ANSI escape processing for a console output
// handle. Non-console outputs are left alone.
func EnableVirtualTerminal(f *os.File) (func() error, error) {
	handle := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return func() error { return nil }, nil
	}
	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return nil, fmt.Errorf("failed to enable virtual terminal processing: %w", err)
	}
	return func() error {
		return windows.SetConsoleMode(handle, mode)
	}, nil
}
