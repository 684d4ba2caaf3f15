// Package market fetches quotes, fundamentals, and price history by ticker.
package market

import (
	"context"
	"time"
)

// StockInfo is a merged snapshot of quote, company profile, and headline
// fundamentals for one ticker.
type StockInfo struct {
	Ticker           string  `json:"ticker"`
	Name             string  `json:"name"`
	Exchange         string  `json:"exchange"`
	Currency         string  `json:"currency"`
	Industry         string  `json:"industry"`
	CurrentPrice     float64 `json:"current_price"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"change_percent"`
	PreviousClose    float64 `json:"previous_close"`
	MarketCap        float64 `json:"market_cap"`
	PERatio          float64 `json:"pe_ratio"`
	DividendYield    float64 `json:"dividend_yield"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
	AvgVolume        float64 `json:"avg_volume"`
	Beta             float64 `json:"beta"`
	EarningsGrowth   float64 `json:"earnings_growth"`
	RevenueGrowth    float64 `json:"revenue_growth"`
	ProfitMargin     float64 `json:"profit_margin"`
	OperatingMargin  float64 `json:"operating_margin"`
	ReturnOnEquity   float64 `json:"return_on_equity"`
	DebtToEquity     float64 `json:"debt_to_equity"`
}

// PriceBar is one OHLCV bar of price history.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Metrics groups detailed fundamentals the way the analysis endpoints report
// them. Absent provider values are simply missing from the maps.
type Metrics struct {
	Valuation       map[string]float64 `json:"valuation"`
	Profitability   map[string]float64 `json:"profitability"`
	Growth          map[string]float64 `json:"growth"`
	FinancialHealth map[string]float64 `json:"financial_health"`
}

// PriceSummary holds period statistics computed from daily bars.
type PriceSummary struct {
	CurrentPrice     float64 `json:"current_price"`
	PeriodStartPrice float64 `json:"period_start_price"`
	PeriodReturnPct  float64 `json:"period_return_pct"`
	PeriodHigh       float64 `json:"period_high"`
	PeriodLow        float64 `json:"period_low"`
	AvgVolume        int64   `json:"avg_volume"`
	Volatility       float64 `json:"volatility"`
}

// Client is implemented by the market-data provider (and its caching
// decorator).
type Client interface {
	CompanyInfo(ctx context.Context, ticker string) (StockInfo, error)
	History(ctx context.Context, ticker, period, interval string) ([]PriceBar, error)
	Metrics(ctx context.Context, ticker string) (Metrics, error)
	PriceSummary(ctx context.Context, ticker, period string) (PriceSummary, error)
}
