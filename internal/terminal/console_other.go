//go:build !windows

package terminal

import "os"

// EnableVirtualTerminal is a no-op outside Windows.
func EnableVirtualTerminal(*os.File) (func() error, error) {
	return func() error { return nil }, nil
}
