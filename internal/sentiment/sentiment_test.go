package sentiment

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestClassify_EmptyText(t *testing.T) {
	assert.Equal(t, Neutral, Classify(""))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Positive, Classify("SURGE"))
	assert.Equal(t, Positive, Classify("surge"))
	assert.Equal(t, Classify("Shares SURGE on earnings"), Classify("shares surge on earnings"))
}

func TestClassify_Positive(t *testing.T) {
	assert.Equal(t, Positive, Classify("Stock rallies on strong earnings beat"))
}

func TestClassify_Negative(t *testing.T) {
	assert.Equal(t, Negative, Classify("Shares plunge after disappointing guidance cut"))
}

func TestClassify_Tie(t *testing.T) {
	// "rise" (+1) vs "fall" inside "falls" (-1)
	assert.Equal(t, Neutral, Classify("stock rises and falls"))
}

func TestClassify_SubstringMatches(t *testing.T) {
	// "low" matches inside "below"; accepted behavior.
	assert.Equal(t, Negative, Classify("trading below average"))
	// "high" matches inside "highway".
	assert.Equal(t, Positive, Classify("new highway opened"))
}

func TestClassify_CountsRepeatedOccurrences(t *testing.T) {
	// "gain" twice outweighs one "loss".
	assert.Equal(t, Positive, Classify("gain after gain despite a loss"))
}

func TestClassify_Deterministic(t *testing.T) {
	text := "Record profit growth despite concerns over weak demand"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, Neutral, s.Overall)
	assert.Equal(t, 0.0, s.Score)
	assert.Equal(t, 0, s.Positive)
	assert.Equal(t, 0, s.Negative)
	assert.Equal(t, 0, s.Neutral)
}

func TestAggregate_PositiveOverall(t *testing.T) {
	s := Aggregate([]Label{Positive, Positive, Negative})
	assert.Equal(t, 0.33, s.Score)
	assert.Equal(t, Positive, s.Overall)
	assert.Equal(t, 2, s.Positive)
	assert.Equal(t, 1, s.Negative)
	assert.Equal(t, 0, s.Neutral)
}

func TestAggregate_NeutralOverall(t *testing.T) {
	s := Aggregate([]Label{Positive, Negative, Neutral, Neutral, Neutral})
	assert.Equal(t, 0.0, s.Score)
	assert.Equal(t, Neutral, s.Overall)
}

func TestAggregate_NegativeOverall(t *testing.T) {
	s := Aggregate([]Label{Negative, Negative, Negative, Positive})
	assert.Equal(t, -0.5, s.Score)
	assert.Equal(t, Negative, s.Overall)
}

func TestAggregate_ThresholdIsExclusive(t *testing.T) {
	// score exactly 0.2 stays neutral
	s := Aggregate([]Label{Positive, Neutral, Neutral, Neutral, Neutral})
	assert.Equal(t, 0.2, s.Score)
	assert.Equal(t, Neutral, s.Overall)
}

func TestAggregate_CountsSumToTotal(t *testing.T) {
	labels := []Label{Positive, Negative, Neutral, Positive, Negative, Neutral, Positive}
	s := Aggregate(labels)
	assert.Equal(t, len(labels), s.Positive+s.Negative+s.Neutral)
}
