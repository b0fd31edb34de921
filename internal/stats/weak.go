package stats

import (
	"sort"

	"github.com/verte-zerg/typetest/internal/model"
)

// CharBreakdown aggregates position-by-position comparisons per target
// character. Only positions present in both the typed and target word count.
func CharBreakdown(history []model.Attempt) []model.CharAggregate {
	byChar := map[byte]*model.CharAggregate{}
	for _, a := range history {
		n := min(len(a.Typed), len(a.Target))
		for i := 0; i < n; i++ {
			ch := a.Target[i]
			agg, ok := byChar[ch]
			if !ok {
				agg = &model.CharAggregate{Char: string(ch)}
				byChar[ch] = agg
			}
			if a.Typed[i] == ch {
				agg.Correct++
			} else {
				agg.Incorrect++
			}
		}
	}
	out := make([]model.CharAggregate, 0, len(byChar))
	for _, agg := range byChar {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Char < out[j].Char
	})
	return out
}

// SelectWeakChars returns up to top characters that were mistyped at least
// once, lowest accuracy first. Ties go to the more frequent character.
func SelectWeakChars(aggs []model.CharAggregate, top int) []string {
	candidates := make([]model.CharAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Incorrect > 0 {
			candidates = append(candidates, agg)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai, aj := accuracy(candidates[i]), accuracy(candidates[j])
		if ai != aj {
			return ai < aj
		}
		ti := candidates[i].Correct + candidates[i].Incorrect
		tj := candidates[j].Correct + candidates[j].Incorrect
		if ti != tj {
			return ti > tj
		}
		return candidates[i].Char < candidates[j].Char
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]string, 0, top)
	for _, agg := range candidates[:top] {
		out = append(out, agg.Char)
	}
	return out
}

func accuracy(agg model.CharAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}
