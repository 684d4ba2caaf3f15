package market

import (
	"fmt"
	"time"
)

const (
	DefaultPeriod   = "1y"
	DefaultInterval = "1d"
)

var periodDurations = map[string]time.Duration{
	"1d":  24 * time.Hour,
	"5d":  5 * 24 * time.Hour,
	"1mo": 30 * 24 * time.Hour,
	"3mo": 91 * 24 * time.Hour,
	"6mo": 182 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
	"2y":  2 * 365 * 24 * time.Hour,
	"5y":  5 * 365 * 24 * time.Hour,
	"max": 20 * 365 * 24 * time.Hour,
}

var intervalResolutions = map[string]string{
	"1m":  "1",
	"5m":  "5",
	"15m": "15",
	"30m": "30",
	"1h":  "60",
	"1d":  "D",
	"1wk": "W",
	"1mo": "M",
}

// PeriodStart returns the start of a lookback window ending at now.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	d, ok := periodDurations[period]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid period %q (valid: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, max)", period)
	}
	return now.Add(-d), nil
}

// Resolution maps a history interval to the provider's candle resolution.
func Resolution(interval string) (string, error) {
	r, ok := intervalResolutions[interval]
	if !ok {
		return "", fmt.Errorf("invalid interval %q (valid: 1m, 5m, 15m, 30m, 1h, 1d, 1wk, 1mo)", interval)
	}
	return r, nil
}
