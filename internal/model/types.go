// Package model defines shared data structures.
package model

import "time"

// Attempt is a submitted word paired with the word it was meant to match.
type Attempt struct {
	Typed  string
	Target string
}

// Metrics holds the headline numbers of a session.
type Metrics struct {
	WPM      float64
	CPM      float64
	Accuracy float64
}

// EndReason records why a session finished.
type EndReason int

const (
	EndNone EndReason = iota
	EndQueueExhausted
	EndTimeExpired
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndQueueExhausted:
		return "all words typed"
	case EndTimeExpired:
		return "time is up"
	case EndQuit:
		return "quit"
	default:
		return "running"
	}
}

// CharAggregate aggregates per-character comparisons across attempts.
type CharAggregate struct {
	Char      string
	Correct   int
	Incorrect int
}

// Summary captures a finished session for the results panel.
type Summary struct {
	Elapsed   time.Duration
	Words     int
	Chars     int
	Metrics   Metrics
	Reason    EndReason
	WeakChars []string
	Trend     []float64
}
