package terminal

import (
	"os"

	"golang.org/x/term"
)

// Width returns the column count of f, or fallback when it has none.
func Width(f *os.File, fallback int) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
