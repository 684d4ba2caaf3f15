package model

import (
	"github.com/arush-mehrotra/finance-ai-agent/internal/sentiment"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/news"
)

// ClassifiedArticle is a fetched article plus the sentiment label derived
// from its title and description.
type ClassifiedArticle struct {
	news.Article
	Sentiment sentiment.Label `json:"sentiment"`
}

// Classify labels a batch of fetched articles.
func Classify(articles []news.Article) []ClassifiedArticle {
	classified := make([]ClassifiedArticle, len(articles))
	for i, a := range articles {
		classified[i] = ClassifiedArticle{
			Article:   a,
			Sentiment: sentiment.Classify(a.Title + " " + a.Description),
		}
	}
	return classified
}
