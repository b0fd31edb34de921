package terminal

import "fmt"

// KeyType classifies a decoded keypress.
type KeyType int

const (
	// KeyNone means nothing usable was read: no input, a swallowed escape
	// sequence, or bytes that did not decode.
	KeyNone KeyType = iota
	KeyRune
	KeySpace
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyControl
)

// Key is one logical keypress.
type Key struct {
	Type KeyType
	Rune rune
}

// String returns the key name in the form used by key bindings.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeySpace:
		return " "
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyControl:
		if k.Rune >= 0x01 && k.Rune <= 0x1a {
			return fmt.Sprintf("ctrl+%c", 'a'+k.Rune-1)
		}
		return "ctrl"
	default:
		return ""
	}
}
