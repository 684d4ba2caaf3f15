package market

import (
	"fmt"
	"math"
)

// SummarizeBars computes period statistics from daily bars: start/end prices,
// period return, high/low, average volume, and volatility (the standard
// deviation of daily close-to-close percent changes, in percent).
func SummarizeBars(bars []PriceBar) (PriceSummary, error) {
	if len(bars) == 0 {
		return PriceSummary{}, fmt.Errorf("no historical data available")
	}

	current := bars[len(bars)-1].Close
	start := bars[0].Close

	var high, low float64
	low = math.MaxFloat64
	var volumeSum int64
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low && b.Low > 0 {
			low = b.Low
		}
		volumeSum += b.Volume
	}
	if low == math.MaxFloat64 {
		low = 0
	}

	var periodReturn float64
	if start != 0 {
		periodReturn = (current - start) / start * 100
	}

	return PriceSummary{
		CurrentPrice:     round2(current),
		PeriodStartPrice: round2(start),
		PeriodReturnPct:  round2(periodReturn),
		PeriodHigh:       round2(high),
		PeriodLow:        round2(low),
		AvgVolume:        volumeSum / int64(len(bars)),
		Volatility:       round2(dailyVolatility(bars)),
	}, nil
}

func dailyVolatility(bars []PriceBar) float64 {
	var changes []float64
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			continue
		}
		changes = append(changes, (bars[i].Close-prev)/prev)
	}
	if len(changes) == 0 {
		return 0
	}

	var mean float64
	for _, c := range changes {
		mean += c
	}
	mean /= float64(len(changes))

	var variance float64
	for _, c := range changes {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(changes))

	return math.Sqrt(variance) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
