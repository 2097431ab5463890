package backtest

import (
	"math"
	"strconv"
	"strings"
)

// Metrics are the aggregate statistics derived from one run's ledger and
// equity curve. Percentages are rounded to 2 decimals.
type Metrics struct {
	WinningTrades int
	LosingTrades  int
	WinRate       float64
	MaxDrawdown   float64
	SharpeRatio   *float64
}

// CalculateMetrics derives win/loss counts, max drawdown and the Sharpe
// ratio. A zero-profit trade counts as a loss, not a wash. Sharpe is nil iff
// the equity curve has at most one point, and exactly 0 when the return
// series has zero variance.
func CalculateMetrics(trades []Trade, equity []float64, interval string) Metrics {
	m := Metrics{}

	for _, t := range trades {
		if t.Profit > 0 {
			m.WinningTrades++
		} else {
			m.LosingTrades++
		}
	}
	if len(trades) > 0 {
		m.WinRate = round2(float64(m.WinningTrades) / float64(len(trades)) * 100)
	}

	m.MaxDrawdown = round2(maxDrawdown(equity))

	if len(equity) > 1 {
		sharpe := sharpeRatio(equity, interval)
		m.SharpeRatio = &sharpe
	}

	return m
}

// maxDrawdown walks the equity curve tracking the running peak and returns
// the deepest peak-to-trough decline as a percentage of the peak.
func maxDrawdown(equity []float64) float64 {
	if len(equity) == 0 {
		return 0
	}
	peak := equity[0]
	maxDD := 0.0
	for _, v := range equity {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD * 100
}

func sharpeRatio(equity []float64, interval string) float64 {
	returns := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		if equity[i-1] == 0 {
			continue
		}
		returns = append(returns, equity[i]/equity[i-1]-1)
	}
	if len(returns) < 2 {
		// A single return has no measurable variance.
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1) // sample variance

	std := math.Sqrt(variance)
	if std == 0 {
		// Zero-variance policy: no risk-adjusted edge measurable.
		return 0
	}

	return round2(mean / std * annualizationFactor(interval))
}

// annualizationFactor derives the Sharpe scaling from the interval string by
// parsing a leading integer and a trailing unit letter ("15m", "4h", "1d").
// Anything unparseable falls back to daily. This is an approximation, not a
// calendar-accurate conversion.
func annualizationFactor(interval string) float64 {
	daily := math.Sqrt(365)

	interval = strings.ToLower(strings.TrimSpace(interval))
	if len(interval) < 2 {
		return daily
	}

	unit := interval[len(interval)-1]
	n, err := strconv.Atoi(interval[:len(interval)-1])
	if err != nil || n <= 0 {
		return daily
	}

	switch unit {
	case 'm':
		return math.Sqrt(365 * 24 * 60 / float64(n))
	case 'h':
		return math.Sqrt(365 * 24 / float64(n))
	case 'd':
		return math.Sqrt(365 / float64(n))
	default:
		return daily
	}
}
