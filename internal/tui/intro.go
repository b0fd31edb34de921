package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typetest/internal/theme"
)

type introModel struct {
	palette theme.Palette
	help    help.Model
	begin   bool
}

func newIntroModel(p theme.Palette) introModel {
	return introModel{palette: p, help: newHelp(p)}
}

func (m introModel) Init() tea.Cmd {
	return nil
}

func (m introModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Begin):
		m.begin = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Interrupt):
		return m, tea.Quit
	}
	return m, nil
}

func (m introModel) View() string {
	p := m.palette
	bullets := []string{
		"Type the word shown and press SPACE to submit it",
		"Use BACKSPACE to fix mistakes",
		"Press ESC to end the test early",
		"Press CTRL+C to abort",
	}

	var b strings.Builder
	b.WriteString(bannerStyle(p).Render("TERMINAL TYPING SPEED TEST"))
	b.WriteString("\n\n")
	b.WriteString(p.Warning.Render("Instructions:"))
	b.WriteString("\n")
	for _, line := range bullets {
		b.WriteString("  • ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.Correct.Inherit(p.Emphasis).Render("Start typing to begin the 60-second test!"))
	b.WriteString("\n")
	b.WriteString(p.Muted.Render("Press ENTER to see the words..."))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{keys.Begin, keys.Interrupt}))
	b.WriteString("\n")
	return b.String()
}

func bannerStyle(p theme.Palette) lipgloss.Style {
	return p.Heading.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Heading.GetForeground()).
		Padding(0, 4)
}

// RunIntro shows the instructions and waits for ENTER. It returns
// ErrInterrupted when the user aborts or ctx is cancelled.
func RunIntro(ctx context.Context, in io.Reader, out io.Writer, p theme.Palette) error {
	program := tea.NewProgram(
		newIntroModel(p),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return ErrInterrupted
	}
	if err != nil {
		return fmt.Errorf("failed to run intro: %w", err)
	}
	if m, ok := final.(introModel); !ok || !m.begin {
		return ErrInterrupted
	}
	return nil
}
