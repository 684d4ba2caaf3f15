package market

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	api *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubClient{api: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (c *FinnhubClient) CompanyInfo(ctx context.Context, ticker string) (StockInfo, error) {
	info := StockInfo{Ticker: ticker}

	quote, _, err := c.api.Quote(ctx).Symbol(ticker).Execute()
	if err != nil {
		return StockInfo{}, fmt.Errorf("finnhub quote for %s: %w", ticker, err)
	}

	info.CurrentPrice = float64(quote.GetC())
	info.Change = float64(quote.GetD())
	info.ChangePercent = float64(quote.GetDp())
	info.PreviousClose = float64(quote.GetPc())

	if info.CurrentPrice == 0 {
		return StockInfo{}, fmt.Errorf("no data for ticker %s", ticker)
	}

	profile, _, err := c.api.CompanyProfile2(ctx).Symbol(ticker).Execute()
	if err != nil {
		return StockInfo{}, fmt.Errorf("finnhub profile for %s: %w", ticker, err)
	}

	info.Name = profile.GetName()
	info.Exchange = profile.GetExchange()
	info.Currency = profile.GetCurrency()
	info.Industry = profile.GetFinnhubIndustry()
	// Finnhub reports market cap in millions.
	info.MarketCap = float64(profile.GetMarketCapitalization()) * 1e6

	financials, _, err := c.api.CompanyBasicFinancials(ctx).Symbol(ticker).Metric("all").Execute()
	if err != nil {
		return StockInfo{}, fmt.Errorf("finnhub financials for %s: %w", ticker, err)
	}

	m := financials.GetMetric()
	info.PERatio = metricValue(m, "peTTM")
	info.DividendYield = metricValue(m, "dividendYieldIndicatedAnnual")
	info.FiftyTwoWeekHigh = metricValue(m, "52WeekHigh")
	info.FiftyTwoWeekLow = metricValue(m, "52WeekLow")
	info.AvgVolume = metricValue(m, "10DayAverageTradingVolume")
	info.Beta = metricValue(m, "beta")
	info.EarningsGrowth = metricValue(m, "epsGrowthTTMYoy")
	info.RevenueGrowth = metricValue(m, "revenueGrowthTTMYoy")
	info.ProfitMargin = metricValue(m, "netProfitMarginTTM")
	info.OperatingMargin = metricValue(m, "operatingMarginTTM")
	info.ReturnOnEquity = metricValue(m, "roeTTM")
	info.DebtToEquity = metricValue(m, "totalDebt/totalEquityQuarterly")

	return info, nil
}

func (c *FinnhubClient) History(ctx context.Context, ticker, period, interval string) ([]PriceBar, error) {
	from, err := PeriodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	resolution, err := Resolution(interval)
	if err != nil {
		return nil, err
	}

	candles, _, err := c.api.StockCandles(ctx).
		Symbol(ticker).
		Resolution(resolution).
		From(from.Unix()).
		To(time.Now().Unix()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub candles for %s: %w", ticker, err)
	}

	if candles.GetS() != "ok" {
		return []PriceBar{}, nil
	}

	ts := candles.GetT()
	opens := candles.GetO()
	highs := candles.GetH()
	lows := candles.GetL()
	closes := candles.GetC()
	volumes := candles.GetV()

	bars := make([]PriceBar, 0, len(ts))
	for i := range ts {
		if i >= len(closes) {
			break
		}
		bar := PriceBar{
			Date:  time.Unix(ts[i], 0).UTC(),
			Close: float64(closes[i]),
		}
		if i < len(opens) {
			bar.Open = float64(opens[i])
		}
		if i < len(highs) {
			bar.High = float64(highs[i])
		}
		if i < len(lows) {
			bar.Low = float64(lows[i])
		}
		if i < len(volumes) {
			bar.Volume = int64(volumes[i])
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

func (c *FinnhubClient) Metrics(ctx context.Context, ticker string) (Metrics, error) {
	financials, _, err := c.api.CompanyBasicFinancials(ctx).Symbol(ticker).Metric("all").Execute()
	if err != nil {
		return Metrics{}, fmt.Errorf("finnhub financials for %s: %w", ticker, err)
	}

	m := financials.GetMetric()
	if len(m) == 0 {
		return Metrics{}, fmt.Errorf("no financial metrics for ticker %s", ticker)
	}

	return Metrics{
		Valuation: pickMetrics(m, map[string]string{
			"pe_ratio":       "peTTM",
			"price_to_book":  "pb",
			"price_to_sales": "psTTM",
			"eps":            "epsTTM",
		}),
		Profitability: pickMetrics(m, map[string]string{
			"profit_margin":    "netProfitMarginTTM",
			"operating_margin": "operatingMarginTTM",
			"gross_margin":     "grossMarginTTM",
			"return_on_equity": "roeTTM",
			"return_on_assets": "roaTTM",
		}),
		Growth: pickMetrics(m, map[string]string{
			"earnings_growth":    "epsGrowthTTMYoy",
			"revenue_growth":     "revenueGrowthTTMYoy",
			"revenue_growth_5y":  "revenueGrowth5Y",
			"earnings_growth_5y": "epsGrowth5Y",
		}),
		FinancialHealth: pickMetrics(m, map[string]string{
			"debt_to_equity": "totalDebt/totalEquityQuarterly",
			"current_ratio":  "currentRatioQuarterly",
			"quick_ratio":    "quickRatioQuarterly",
		}),
	}, nil
}

func (c *FinnhubClient) PriceSummary(ctx context.Context, ticker, period string) (PriceSummary, error) {
	bars, err := c.History(ctx, ticker, period, "1d")
	if err != nil {
		return PriceSummary{}, err
	}
	return SummarizeBars(bars)
}

func metricValue(metrics map[string]interface{}, key string) float64 {
	v, ok := metrics[key]
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return f
}

func pickMetrics(metrics map[string]interface{}, keys map[string]string) map[string]float64 {
	out := make(map[string]float64, len(keys))
	for name, providerKey := range keys {
		if v, ok := metrics[providerKey]; ok {
			if f, ok := v.(float64); ok {
				out[name] = f
			}
		}
	}
	return out
}
