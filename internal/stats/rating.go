package stats

// Rating is a qualitative band for a WPM score.
type Rating int

const (
	RatingNeedsWork Rating = iota
	RatingKeepPracticing
	RatingGood
	RatingExcellent
)

// Rate bands a WPM score.
func Rate(wpm float64) Rating {
	switch {
	case wpm >= 60:
		return RatingExcellent
	case wpm >= 40:
		return RatingGood
	case wpm >= 20:
		return RatingKeepPracticing
	default:
		return RatingNeedsWork
	}
}

func (r Rating) String() string {
	switch r {
	case RatingExcellent:
		return "EXCELLENT!"
	case RatingGood:
		return "GOOD!"
	case RatingKeepPracticing:
		return "KEEP PRACTICING!"
	default:
		return "ROOM FOR IMPROVEMENT!"
	}
}

// Badge returns the rating with its icon.
func (r Rating) Badge() string {
	switch r {
	case RatingExcellent:
		return "🔥 " + r.String()
	case RatingGood:
		return "👍 " + r.String()
	case RatingKeepPracticing:
		return "📝 " + r.String()
	default:
		return "💪 " + r.String()
	}
}
