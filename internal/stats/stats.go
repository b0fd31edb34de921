// Package stats computes typing test metrics.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
)

// MinElapsed is the smallest divisor used for rate calculations.
const MinElapsed = 100 * time.Millisecond

const sparkChars = " .:-=+*#%@"

// Input carries the session data Calculate works on.
type Input struct {
	History    []model.Attempt
	TotalChars int
	// StartedAt is zero when no key was ever typed.
	StartedAt time.Time
	Duration  time.Duration
	Now       time.Time
}

// Calculate computes WPM, CPM, and accuracy over submitted attempts. A
// session that never started is measured against the full duration. With no
// attempts every metric is zero.
func Calculate(in Input) model.Metrics {
	if len(in.History) == 0 {
		return model.Metrics{}
	}
	elapsed := in.Duration
	if !in.StartedAt.IsZero() {
		elapsed = in.Now.Sub(in.StartedAt)
		if elapsed > in.Duration {
			elapsed = in.Duration
		}
	}
	if elapsed < MinElapsed {
		elapsed = MinElapsed
	}
	seconds := elapsed.Seconds()
	return model.Metrics{
		WPM:      float64(len(in.History)) / seconds * 60,
		CPM:      float64(in.TotalChars) / seconds * 60,
		Accuracy: Accuracy(in.History),
	}
}

// Accuracy returns the percentage of typed characters matching the target at
// the same position. Characters past the end of the target only count as typed.
func Accuracy(history []model.Attempt) float64 {
	correct, total := 0, 0
	for _, a := range history {
		c, t := compareAttempt(a)
		correct += c
		total += t
	}
	if total == 0 {
		return 0
	}
	return float64(correct) * 100 / float64(total)
}

func compareAttempt(a model.Attempt) (correct, total int) {
	n := len(a.Typed)
	if len(a.Target) < n {
		n = len(a.Target)
	}
	for i := 0; i < n; i++ {
		if a.Typed[i] == a.Target[i] {
			correct++
		}
	}
	return correct, len(a.Typed)
}

// LiveRates computes running WPM and CPM for the status line. Nothing is
// reported until a word has been submitted.
func LiveRates(words, chars int, elapsed time.Duration) (wpm, cpm float64) {
	if words == 0 || elapsed <= 0 {
		return 0, 0
	}
	seconds := elapsed.Seconds()
	return float64(words) / seconds * 60, float64(chars) / seconds * 60
}

// AccuracyTrend returns one point per submitted word: the pooled accuracy of
// that word and the window-1 words before it.
func AccuracyTrend(history []model.Attempt, window int) []float64 {
	window = max(window, 1)
	out := make([]float64, len(history))
	for i := range history {
		out[i] = Accuracy(history[max(0, i-window+1) : i+1])
	}
	return out
}

// AccuracySparkline draws accuracy percentages on a fixed 0-100 scale, one
// glyph per value, so a steady 100% reads as a full bar.
func AccuracySparkline(values []float64) string {
	top := float64(len(sparkChars) - 1)
	var b strings.Builder
	for _, v := range values {
		v = max(0, min(v, 100))
		b.WriteByte(sparkChars[int(math.Round(v/100*top))])
	}
	return b.String()
}
