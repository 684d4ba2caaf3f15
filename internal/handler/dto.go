package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondOK wraps data in the success envelope.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// respondError writes the failure envelope with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

type HistoryResponse struct {
	Ticker   string          `json:"ticker"`
	Period   string          `json:"period"`
	Interval string          `json:"interval"`
	Bars     []PriceBarEntry `json:"history"`
	Count    int             `json:"count"`
	Message  string          `json:"message,omitempty"`
}

type PriceBarEntry struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

type ArticleEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	Category    string   `json:"category,omitempty"`
	Image       string   `json:"image,omitempty"`
	Related     []string `json:"related,omitempty"`
	PublishedAt string   `json:"published_at"`
	Sentiment   string   `json:"sentiment,omitempty"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CompanyNewsResponse struct {
	Ticker    string         `json:"ticker"`
	Articles  []ArticleEntry `json:"articles"`
	Count     int            `json:"count"`
	DateRange DateRange      `json:"date_range"`
}

type MarketNewsResponse struct {
	Category string         `json:"category"`
	Articles []ArticleEntry `json:"articles"`
	Count    int            `json:"count"`
}

type NewsSentimentResponse struct {
	Ticker           string         `json:"ticker"`
	OverallSentiment string         `json:"overall_sentiment"`
	SentimentScore   float64        `json:"sentiment_score"`
	PositiveMentions int            `json:"positive_mentions"`
	NegativeMentions int            `json:"negative_mentions"`
	NeutralMentions  int            `json:"neutral_mentions"`
	ArticleCount     int            `json:"article_count"`
	RecentNews       []ArticleEntry `json:"recent_news"`
}

type AnalysisRecordEntry struct {
	ID             int64  `json:"id"`
	Ticker         string `json:"ticker"`
	Question       string `json:"question,omitempty"`
	Analysis       string `json:"analysis"`
	Recommendation string `json:"recommendation,omitempty"`
	Confidence     string `json:"confidence,omitempty"`
	ModelUsed      string `json:"model_used"`
	CreatedAt      string `json:"created_at"`
}

type AnalysisHistoryResponse struct {
	Ticker  string                `json:"ticker"`
	Records []AnalysisRecordEntry `json:"records"`
	Count   int                   `json:"count"`
}
