package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/stats"
	"github.com/verte-zerg/typetest/internal/theme"
)

const (
	blockHeight  = 10
	previewWords = 9

	// MaxWidth caps the frame width.
	MaxWidth = 80
)

// Renderer redraws the typing block in place. The block is anchored at the
// cursor position saved on every frame, so nothing scrolls while typing.
type Renderer struct {
	w       io.Writer
	width   int
	palette theme.Palette
	help    help.Model

	status lipgloss.Style
	word   [3]lipgloss.Style
}

// NewRenderer builds a renderer for a frame of the given width, capped at
// MaxWidth. A narrower terminal keeps its own width so lines never wrap.
func NewRenderer(w io.Writer, width int, p theme.Palette) *Renderer {
	var word [3]lipgloss.Style
	word[classPending] = p.Muted
	word[classCorrect] = p.Correct.Inherit(p.Emphasis)
	word[classIncorrect] = p.Incorrect.Inherit(p.Emphasis)

	return &Renderer{
		w:       w,
		width:   max(1, min(width, MaxWidth)),
		palette: p,
		help:    newHelp(p),
		status:  p.Correct.Inherit(p.Emphasis),
		word:    word,
	}
}

// Width reports the clamped frame width.
func (r *Renderer) Width() int {
	return r.width
}

// Reserve prints the start banner and makes room for the block below it,
// leaving the cursor on the first block line.
func (r *Renderer) Reserve() error {
	var b strings.Builder
	b.WriteString("\r\n")
	b.WriteString(strings.Repeat("=", r.width))
	b.WriteString("\r\n\r\n")
	b.WriteString(strings.Repeat("\r\n", blockHeight-1))
	b.WriteString(ansi.CursorUp(blockHeight - 1))
	b.WriteString("\r")
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("failed to reserve screen space: %w", err)
	}
	return nil
}

// Draw writes one frame for the session.
func (r *Renderer) Draw(s *session.Session, now time.Time) error {
	if _, err := io.WriteString(r.w, r.Frame(s, now)); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	return nil
}

// Finish moves the cursor below the block.
func (r *Renderer) Finish() error {
	if _, err := io.WriteString(r.w, strings.Repeat("\r\n", blockHeight)); err != nil {
		return fmt.Errorf("failed to leave frame: %w", err)
	}
	return nil
}

// Frame renders the block without writing it. Every line is padded to the
// frame width and the trailing cells are erased, so a shorter frame fully
// overwrites a longer one.
func (r *Renderer) Frame(s *session.Session, now time.Time) string {
	var b strings.Builder
	b.WriteString(ansi.SaveCursor)
	for i, line := range r.lines(s, now) {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString("\r")
		b.WriteString(r.fit(line))
		b.WriteString(ansi.EraseLineRight)
	}
	b.WriteString(ansi.RestoreCursor)
	return b.String()
}

func (r *Renderer) fit(line string) string {
	line = ansi.Truncate(line, r.width, "")
	if pad := r.width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func (r *Renderer) lines(s *session.Session, now time.Time) []string {
	separator := r.palette.Muted.Render(strings.Repeat("─", r.width))
	return []string{
		r.statusLine(s, now),
		r.timerLine(s, now),
		separator,
		"",
		"",
		r.wordLine(s),
		"",
		"",
		separator,
		r.help.ShortHelpView(keys.ShortHelp()),
	}
}

func (r *Renderer) statusLine(s *session.Session, now time.Time) string {
	wpm, cpm := stats.LiveRates(s.Submitted(), s.TotalChars(), s.Clock().Elapsed(now))
	return r.status.Render(fmt.Sprintf("WPM: %.1f | CPM: %.1f | Words: %d", wpm, cpm, s.Submitted()))
}

func (r *Renderer) timerLine(s *session.Session, now time.Time) string {
	clock := s.Clock()
	if !clock.Started() {
		return r.palette.Warning.Render(fmt.Sprintf("Time: %.1fs (Timer starts when you type)", clock.Duration().Seconds()))
	}
	return r.palette.Warning.Render(fmt.Sprintf("Time: %.1fs", clock.Remaining(now).Seconds()))
}

func (r *Renderer) wordLine(s *session.Session) string {
	current, width := renderWord(classifyWord(s.CurrentWord(), s.Input()), r.word)
	ghost := strings.Join(s.Upcoming(previewWords), " ")
	room := r.width - width - 1
	if ghost == "" || room <= 0 {
		return current
	}
	ghost = runewidth.Truncate(ghost, room, "")
	return current + " " + r.palette.Muted.Render(ghost)
}
