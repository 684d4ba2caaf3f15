package model

import "time"

// AnalysisRecord is one persisted AI analysis run.
type AnalysisRecord struct {
	ID             int64
	Ticker         string
	Question       string
	Analysis       string
	Recommendation string
	Confidence     string
	ModelUsed      string
	CreatedAt      time.Time
}
