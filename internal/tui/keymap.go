package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/terminal"
	"github.com/verte-zerg/typetest/internal/theme"
)

type keyMap struct {
	Submit    key.Binding
	Delete    key.Binding
	Quit      key.Binding
	Interrupt key.Binding
	Begin     key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("SPACE", "submit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("BACKSPACE", "delete"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("ESC", "quit"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("CTRL+C", "abort"),
	),
	Begin: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("ENTER", "begin"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Interrupt}}
}

func newHelp(p theme.Palette) help.Model {
	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = p.Info
	h.Styles.ShortDesc = p.Muted
	h.Styles.ShortSeparator = p.Muted
	return h
}

// eventFor maps a raw key to a session event. interrupt is set for the
// abort binding, which never reaches the session.
func eventFor(k terminal.Key) (ev session.Event, interrupt bool) {
	switch {
	case key.Matches(k, keys.Interrupt):
		return session.Event{}, true
	case key.Matches(k, keys.Submit):
		return session.Event{Type: session.EventSubmit}, false
	case key.Matches(k, keys.Delete):
		return session.Event{Type: session.EventBackspace}, false
	case key.Matches(k, keys.Quit):
		return session.Event{Type: session.EventQuit}, false
	case k.Type == terminal.KeyRune:
		return session.Event{Type: session.EventChar, Char: k.Rune}, false
	default:
		return session.Event{Type: session.EventOther}, false
	}
}
