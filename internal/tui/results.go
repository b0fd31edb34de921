package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/stats"
	"github.com/verte-zerg/typetest/internal/theme"
)

const resultsWidth = 80

// RenderResults prints the results panel for a finished session.
func RenderResults(w io.Writer, s model.Summary, p theme.Palette) error {
	label := func(text string) string { return p.Warning.Render(text) }
	value := func(text string) string { return p.Info.Render(text) }
	metric := func(text string) string { return p.Correct.Inherit(p.Emphasis).Render(text) }

	rows := [][]string{
		{label("Time Taken:"), value(fmt.Sprintf("%.1f seconds", s.Elapsed.Seconds()))},
		{label("Words Typed:"), value(strconv.Itoa(s.Words))},
		{label("Characters Typed:"), value(strconv.Itoa(s.Chars))},
		{label("Finished:"), value(s.Reason.String())},
		{"", ""},
		{label("Words Per Minute (WPM):"), metric(fmt.Sprintf("%.2f", s.Metrics.WPM))},
		{label("Characters Per Minute (CPM):"), metric(fmt.Sprintf("%.2f", s.Metrics.CPM))},
		{label("Accuracy:"), metric(fmt.Sprintf("%.2f%%", s.Metrics.Accuracy))},
	}
	if len(s.WeakChars) > 0 {
		rows = append(rows, []string{label("Weakest Keys:"), p.Incorrect.Render(strings.Join(s.WeakChars, " "))})
	}
	if len(s.Trend) > 0 {
		rows = append(rows, []string{label("Accuracy Trend:"), p.Info.Render(stats.AccuracySparkline(s.Trend))})
	}

	rule := strings.Repeat("=", resultsWidth)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(bannerStyle(p).Render("TYPING TEST RESULTS"))
	b.WriteString("\n\n")
	for _, line := range stats.FormatTable(nil, rows, nil) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n\n")
	rating := stats.Rate(s.Metrics.WPM)
	b.WriteString(ratingStyle(rating, p).Render(rating.Badge()))
	b.WriteString("\n\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func ratingStyle(r stats.Rating, p theme.Palette) lipgloss.Style {
	var base lipgloss.Style
	switch r {
	case stats.RatingExcellent:
		base = p.Correct
	case stats.RatingGood:
		base = p.Info
	default:
		base = p.Warning
	}
	return base.Inherit(p.Emphasis)
}
