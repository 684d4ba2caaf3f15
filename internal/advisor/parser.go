package advisor

import (
	"fmt"
	"strings"

	"github.com/arush-mehrotra/finance-ai-agent/internal/sentiment"
)

// The completion API replies with free text that is expected (but not
// guaranteed) to carry literal section headers. The parsers below extract
// exactly what is present and record a warning per missing or unrecognized
// section; callers decide which defaults to apply.

type parsedNewsSummary struct {
	Summary   string
	Sentiment sentiment.Label
	KeyPoints []string
	Warnings  []string
}

func parseNewsSummary(text string) parsedNewsSummary {
	p := parsedNewsSummary{Sentiment: sentiment.Neutral}

	inKeyPoints := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			p.Summary = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
			inKeyPoints = false
		case strings.HasPrefix(line, "SENTIMENT:"):
			value := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "SENTIMENT:")))
			switch sentiment.Label(value) {
			case sentiment.Positive, sentiment.Negative, sentiment.Neutral:
				p.Sentiment = sentiment.Label(value)
			default:
				p.Warnings = append(p.Warnings, fmt.Sprintf("unrecognized SENTIMENT value %q", value))
			}
			inKeyPoints = false
		case strings.HasPrefix(line, "KEY POINTS:"):
			inKeyPoints = true
		case inKeyPoints && strings.HasPrefix(line, "-"):
			p.KeyPoints = append(p.KeyPoints, strings.TrimSpace(strings.TrimPrefix(line, "-")))
		}
	}

	if p.Summary == "" {
		p.Warnings = append(p.Warnings, "missing SUMMARY section")
	}
	if len(p.KeyPoints) == 0 {
		p.Warnings = append(p.Warnings, "missing KEY POINTS section")
	}

	return p
}

type parsedRecommendation struct {
	Recommendation string
	Confidence     string
	Reasoning      string
	Risks          string
	Warnings       []string
}

func parseRecommendation(text string) parsedRecommendation {
	var p parsedRecommendation

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "RECOMMENDATION:"):
			value := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "RECOMMENDATION:")))
			switch value {
			case "BUY", "HOLD", "SELL":
				p.Recommendation = value
			default:
				p.Warnings = append(p.Warnings, fmt.Sprintf("unrecognized RECOMMENDATION value %q", value))
			}
		case strings.HasPrefix(line, "CONFIDENCE:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "CONFIDENCE:"))
			switch value {
			case "High", "Medium", "Low":
				p.Confidence = value
			default:
				p.Warnings = append(p.Warnings, fmt.Sprintf("unrecognized CONFIDENCE value %q", value))
			}
		case strings.HasPrefix(line, "REASONING:"):
			p.Reasoning = strings.TrimSpace(strings.TrimPrefix(line, "REASONING:"))
		case strings.HasPrefix(line, "RISKS:"):
			p.Risks = strings.TrimSpace(strings.TrimPrefix(line, "RISKS:"))
		}
	}

	if p.Recommendation == "" {
		p.Warnings = append(p.Warnings, "missing RECOMMENDATION section")
	}
	if p.Confidence == "" {
		p.Warnings = append(p.Warnings, "missing CONFIDENCE section")
	}
	if p.Reasoning == "" {
		p.Warnings = append(p.Warnings, "missing REASONING section")
	}
	if p.Risks == "" {
		p.Warnings = append(p.Warnings, "missing RISKS section")
	}

	return p
}

// extractKeyPoints pulls bullet or numbered lines out of a free-text
// analysis, up to max.
func extractKeyPoints(text string, max int) []string {
	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") || isNumberedLine(line) {
			point := strings.TrimLeft(line, "-•*0123456789. ")
			if point != "" {
				points = append(points, point)
			}
		}
		if len(points) >= max {
			break
		}
	}
	return points
}

func isNumberedLine(line string) bool {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return false
	}
	return strings.Contains(line, ". ")
}
