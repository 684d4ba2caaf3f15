// Package sentiment classifies news text into a coarse polarity label and
// aggregates labels into an overall signal.
package sentiment

import (
	"math"
	"strings"
)

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

var positiveKeywords = []string{
	"surge", "soar", "rally", "gain", "profit", "beat", "upgrade",
	"bullish", "growth", "strong", "outperform", "success", "record",
	"high", "jump", "rise", "climbs", "boost", "positive",
}

var negativeKeywords = []string{
	"fall", "drop", "plunge", "loss", "miss", "downgrade", "bearish",
	"decline", "weak", "concern", "risk", "cut", "underperform", "low",
	"tumble", "sink", "crash", "slump", "negative", "disappointing",
}

// Classify scores text against fixed keyword lists. Matching is
// case-insensitive and substring-based: every occurrence of a keyword counts,
// including occurrences inside longer words ("low" matches inside "below").
func Classify(text string) Label {
	lowered := strings.ToLower(text)

	var positive, negative int
	for _, kw := range positiveKeywords {
		positive += strings.Count(lowered, kw)
	}
	for _, kw := range negativeKeywords {
		negative += strings.Count(lowered, kw)
	}

	switch {
	case positive > negative:
		return Positive
	case negative > positive:
		return Negative
	default:
		return Neutral
	}
}

// Summary is the aggregate signal over a set of classified items.
type Summary struct {
	Overall  Label   `json:"overall"`
	Score    float64 `json:"score"`
	Positive int     `json:"positive_count"`
	Negative int     `json:"negative_count"`
	Neutral  int     `json:"neutral_count"`
}

// Aggregate tallies already-assigned labels into a Summary. The score is
// (positive - negative) / total rounded to two decimals; the overall label
// is positive above 0.2, negative below -0.2, neutral otherwise. An empty
// input yields a neutral summary with zero counts.
func Aggregate(labels []Label) Summary {
	s := Summary{Overall: Neutral}
	if len(labels) == 0 {
		return s
	}

	for _, l := range labels {
		switch l {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Neutral++
		}
	}

	score := float64(s.Positive-s.Negative) / float64(len(labels))
	s.Score = math.Round(score*100) / 100

	switch {
	case s.Score > 0.2:
		s.Overall = Positive
	case s.Score < -0.2:
		s.Overall = Negative
	}

	return s
}
