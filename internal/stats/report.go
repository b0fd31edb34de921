package stats

import (
	"time"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/session"
)

const (
	trendWindow = 5
	weakTop     = 3
)

// BuildSummary collects the results of a session. The session's end instant
// is used when it has finished, otherwise now.
func BuildSummary(s *session.Session, now time.Time) model.Summary {
	end := s.EndedAt()
	if end.IsZero() {
		end = now
	}
	clock := s.Clock()
	history := s.History()

	summary := model.Summary{
		Elapsed: clock.Elapsed(end),
		Words:   len(history),
		Chars:   s.TotalChars(),
		Reason:  s.Reason(),
		Metrics: Calculate(Input{
			History:    history,
			TotalChars: s.TotalChars(),
			StartedAt:  clock.StartedAt(),
			Duration:   clock.Duration(),
			Now:        end,
		}),
		WeakChars: SelectWeakChars(CharBreakdown(history), weakTop),
	}
	if len(history) >= 2 {
		summary.Trend = AccuracyTrend(history, trendWindow)
	}
	return summary
}
