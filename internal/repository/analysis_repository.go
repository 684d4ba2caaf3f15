package repository

import (
	"database/sql"

	"github.com/arush-mehrotra/finance-ai-agent/internal/model"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) Save(rec *model.AnalysisRecord) error {
	return r.db.QueryRow(`
		INSERT INTO analysis_history(ticker, question, analysis, recommendation, confidence, model_used)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rec.Ticker, rec.Question, rec.Analysis, rec.Recommendation, rec.Confidence, rec.ModelUsed).
		Scan(&rec.ID, &rec.CreatedAt)
}

func (r *AnalysisRepository) RecentByTicker(ticker string, limit int) ([]model.AnalysisRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, ticker, question, analysis, recommendation, confidence, model_used, created_at
		FROM analysis_history
		WHERE ticker = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, ticker, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AnalysisRecord
	for rows.Next() {
		var rec model.AnalysisRecord
		err := rows.Scan(&rec.ID, &rec.Ticker, &rec.Question, &rec.Analysis, &rec.Recommendation, &rec.Confidence, &rec.ModelUsed, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
