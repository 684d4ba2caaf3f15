package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arush-mehrotra/finance-ai-agent/pkg/market"
)

type StockHandler struct {
	market market.Client
}

func NewStockHandler(m market.Client) *StockHandler {
	return &StockHandler{market: m}
}

func (h *StockHandler) GetStockInfo(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	info, err := h.market.CompanyInfo(c.Request.Context(), ticker)
	if err != nil {
		slog.Error("error fetching stock info", "ticker", ticker, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, info)
}

func (h *StockHandler) GetHistory(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))
	period := c.DefaultQuery("period", "1mo")
	interval := c.DefaultQuery("interval", market.DefaultInterval)

	bars, err := h.market.History(c.Request.Context(), ticker, period, interval)
	if err != nil {
		slog.Error("error fetching price history", "ticker", ticker, "period", period, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	res := HistoryResponse{
		Ticker:   ticker,
		Period:   period,
		Interval: interval,
		Bars:     []PriceBarEntry{},
		Count:    len(bars),
	}
	for _, b := range bars {
		res.Bars = append(res.Bars, PriceBarEntry{
			Date:   b.Date.Format(time.RFC3339),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	if len(bars) == 0 {
		res.Message = "No historical data available"
	}

	respondOK(c, res)
}

func (h *StockHandler) GetMetrics(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	metrics, err := h.market.Metrics(c.Request.Context(), ticker)
	if err != nil {
		slog.Error("error fetching financial metrics", "ticker", ticker, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, gin.H{"ticker": ticker, "metrics": metrics})
}

func (h *StockHandler) GetPriceSummary(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))
	period := c.DefaultQuery("period", market.DefaultPeriod)

	summary, err := h.market.PriceSummary(c.Request.Context(), ticker, period)
	if err != nil {
		slog.Error("error computing price summary", "ticker", ticker, "period", period, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, gin.H{"ticker": ticker, "period": period, "summary": summary})
}
