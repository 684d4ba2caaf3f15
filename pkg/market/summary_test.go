package market

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func bar(day int, close float64, volume int64) PriceBar {
	return PriceBar{
		Date:   time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC),
		Open:   close,
		High:   close + 1,
		Low:    close - 1,
		Close:  close,
		Volume: volume,
	}
}

func TestSummarizeBars_Empty(t *testing.T) {
	_, err := SummarizeBars(nil)
	assert.NotEqual(t, nil, err)
}

func TestSummarizeBars_Stats(t *testing.T) {
	bars := []PriceBar{
		bar(1, 100, 1000),
		bar(2, 110, 2000),
		bar(3, 120, 3000),
	}

	s, err := SummarizeBars(bars)
	assert.Equal(t, nil, err)
	assert.Equal(t, 120.0, s.CurrentPrice)
	assert.Equal(t, 100.0, s.PeriodStartPrice)
	assert.Equal(t, 20.0, s.PeriodReturnPct)
	assert.Equal(t, 121.0, s.PeriodHigh)
	assert.Equal(t, 99.0, s.PeriodLow)
	assert.Equal(t, int64(2000), s.AvgVolume)
}

func TestSummarizeBars_FlatSeriesHasZeroVolatility(t *testing.T) {
	bars := []PriceBar{bar(1, 50, 10), bar(2, 50, 10), bar(3, 50, 10)}

	s, err := SummarizeBars(bars)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0.0, s.Volatility)
	assert.Equal(t, 0.0, s.PeriodReturnPct)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	from, err := PeriodStart("1d", now)
	assert.Equal(t, nil, err)
	assert.Equal(t, now.Add(-24*time.Hour), from)

	_, err = PeriodStart("7y", now)
	assert.NotEqual(t, nil, err)
}

func TestResolution(t *testing.T) {
	r, err := Resolution("1d")
	assert.Equal(t, nil, err)
	assert.Equal(t, "D", r)

	r, err = Resolution("1h")
	assert.Equal(t, nil, err)
	assert.Equal(t, "60", r)

	_, err = Resolution("2d")
	assert.NotEqual(t, nil, err)
}
