package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/typetest/internal/model"
)

func TestRenderResults(t *testing.T) {
	summary := model.Summary{
		Elapsed:   30 * time.Second,
		Words:     30,
		Chars:     150,
		Metrics:   model.Metrics{WPM: 60, CPM: 300, Accuracy: 93.5},
		Reason:    model.EndQuit,
		WeakChars: []string{"q", "z"},
		Trend:     []float64{100, 90, 95},
	}
	var buf bytes.Buffer
	if err := RenderResults(&buf, summary, testPalette(t)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := ansi.Strip(buf.String())
	for _, want := range []string{
		"TYPING TEST RESULTS",
		"30.0 seconds",
		"Words Per Minute (WPM):",
		"60.00",
		"300.00",
		"93.50%",
		"Weakest Keys:",
		"q z",
		"Accuracy Trend:",
		"@%@",
		"EXCELLENT!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("results missing %q:\n%s", want, out)
		}
	}
}

func TestRenderResultsOmitsEmptyExtras(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderResults(&buf, model.Summary{}, testPalette(t)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := ansi.Strip(buf.String())
	if strings.Contains(out, "Weakest Keys:") || strings.Contains(out, "Accuracy Trend:") {
		t.Fatalf("expected no extras for an empty summary:\n%s", out)
	}
	if !strings.Contains(out, "ROOM FOR IMPROVEMENT!") {
		t.Fatalf("expected lowest rating:\n%s", out)
	}
}
