// Package tui draws the typing test in the terminal and drives the key loop.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type charClass int

const (
	classPending charClass = iota
	classCorrect
	classIncorrect
)

type styledRune struct {
	r     rune
	class charClass
}

// classifyWord pairs the typed input with the target word. Typed runes
// past the end of the target are kept as incorrect overflow.
func classifyWord(target, input string) []styledRune {
	targetRunes := []rune(target)
	inputRunes := []rune(input)

	out := make([]styledRune, 0, max(len(targetRunes), len(inputRunes)))
	for i, typed := range inputRunes {
		class := classIncorrect
		if i < len(targetRunes) && typed == targetRunes[i] {
			class = classCorrect
		}
		out = append(out, styledRune{r: typed, class: class})
	}
	for i := len(inputRunes); i < len(targetRunes); i++ {
		out = append(out, styledRune{r: targetRunes[i], class: classPending})
	}
	return out
}

// renderWord styles runs of equally classified runes and reports the
// printed width.
func renderWord(runes []styledRune, styles [3]lipgloss.Style) (string, int) {
	var b strings.Builder
	width := 0
	for start := 0; start < len(runes); {
		end := start + 1
		for end < len(runes) && runes[end].class == runes[start].class {
			end++
		}
		chunk := make([]rune, 0, end-start)
		for _, sr := range runes[start:end] {
			chunk = append(chunk, sr.r)
		}
		text := string(chunk)
		b.WriteString(styles[runes[start].class].Render(text))
		width += runewidth.StringWidth(text)
		start = end
	}
	return b.String(), width
}
