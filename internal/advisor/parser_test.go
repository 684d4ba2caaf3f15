package advisor

import (
	"testing"

	"github.com/arush-mehrotra/finance-ai-agent/internal/sentiment"

	"github.com/go-playground/assert/v2"
)

func TestParseNewsSummary_WellFormed(t *testing.T) {
	text := `SUMMARY: Apple posted strong quarterly results.
SENTIMENT: positive
KEY POINTS:
- Revenue beat expectations
- Services growth accelerated
- Guidance raised for next quarter
`

	p := parseNewsSummary(text)

	assert.Equal(t, "Apple posted strong quarterly results.", p.Summary)
	assert.Equal(t, sentiment.Positive, p.Sentiment)
	assert.Equal(t, 3, len(p.KeyPoints))
	assert.Equal(t, "Revenue beat expectations", p.KeyPoints[0])
	assert.Equal(t, 0, len(p.Warnings))
}

func TestParseNewsSummary_MissingSections(t *testing.T) {
	p := parseNewsSummary("The model decided to write prose instead.")

	assert.Equal(t, "", p.Summary)
	assert.Equal(t, sentiment.Neutral, p.Sentiment)
	assert.Equal(t, 0, len(p.KeyPoints))
	assert.Equal(t, 2, len(p.Warnings))
}

func TestParseNewsSummary_UnrecognizedSentiment(t *testing.T) {
	text := `SUMMARY: Mixed week for the stock.
SENTIMENT: mostly positive
KEY POINTS:
- Something happened
`

	p := parseNewsSummary(text)

	assert.Equal(t, sentiment.Neutral, p.Sentiment)
	assert.Equal(t, 1, len(p.Warnings))
}

func TestParseNewsSummary_BulletsOutsideKeyPointsIgnored(t *testing.T) {
	text := `- stray bullet
SUMMARY: Short week.
SENTIMENT: negative
KEY POINTS:
- real point
`

	p := parseNewsSummary(text)

	assert.Equal(t, sentiment.Negative, p.Sentiment)
	assert.Equal(t, []string{"real point"}, p.KeyPoints)
}

func TestParseRecommendation_WellFormed(t *testing.T) {
	text := `RECOMMENDATION: BUY
CONFIDENCE: High
REASONING: Strong fundamentals and improving sentiment.
RISKS: Valuation is stretched.
`

	p := parseRecommendation(text)

	assert.Equal(t, "BUY", p.Recommendation)
	assert.Equal(t, "High", p.Confidence)
	assert.Equal(t, "Strong fundamentals and improving sentiment.", p.Reasoning)
	assert.Equal(t, "Valuation is stretched.", p.Risks)
	assert.Equal(t, 0, len(p.Warnings))
}

func TestParseRecommendation_LowercaseVerdictNormalized(t *testing.T) {
	p := parseRecommendation("RECOMMENDATION: sell\nCONFIDENCE: Low\nREASONING: x\nRISKS: y")

	assert.Equal(t, "SELL", p.Recommendation)
}

func TestParseRecommendation_UnrecognizedValues(t *testing.T) {
	p := parseRecommendation("RECOMMENDATION: ACCUMULATE\nCONFIDENCE: Very High\nREASONING: z\nRISKS: w")

	assert.Equal(t, "", p.Recommendation)
	assert.Equal(t, "", p.Confidence)
	// one warning per unrecognized value plus one per resulting missing section
	assert.Equal(t, 4, len(p.Warnings))
}

func TestParseRecommendation_Empty(t *testing.T) {
	p := parseRecommendation("")

	assert.Equal(t, "", p.Recommendation)
	assert.Equal(t, 4, len(p.Warnings))
}

func TestExtractKeyPoints(t *testing.T) {
	text := `Some intro paragraph.

- first point
* second point
3. third point
Plain line without a marker.
`

	points := extractKeyPoints(text, 5)

	assert.Equal(t, []string{"first point", "second point", "third point"}, points)
}

func TestExtractKeyPoints_CapsAtMax(t *testing.T) {
	text := "- a\n- b\n- c\n- d\n- e\n- f\n"

	points := extractKeyPoints(text, 5)

	assert.Equal(t, 5, len(points))
}

func TestExtractKeyPoints_NoMarkers(t *testing.T) {
	assert.Equal(t, 0, len(extractKeyPoints("just prose here", 5)))
}
