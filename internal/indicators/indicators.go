// Package indicators provides pure series computations over close prices.
// Each function returns a slice aligned with its input; leading positions
// inside an indicator's warm-up window hold NaN. Callers must treat NaN
// values as not yet computable, not as zero.
package indicators

import "math"

// Defined reports whether an indicator value is past its warm-up window.
func Defined(v float64) bool {
	return !math.IsNaN(v)
}

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// SMA computes the simple moving average series. Values are defined from
// index period-1.
func SMA(closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}

	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA computes the exponential moving average series, seeded with the SMA of
// the first period values. Values are defined from index period-1.
func EMA(closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += closes[i]
	}
	out[period-1] = seed / float64(period)

	alpha := 2.0 / float64(period+1)
	for i := period; i < len(closes); i++ {
		out[i] = closes[i]*alpha + out[i-1]*(1-alpha)
	}
	return out
}

// RSI computes the Wilder-smoothed Relative Strength Index series. The first
// average gain/loss is seeded with the mean of the first period changes, so
// values are defined from index period (period+1 bars required).
func RSI(closes []float64, period int) []float64 {
	out := nanSeries(len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	avgGain := 0.0
	avgLoss := 0.0
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// MACD computes the MACD line (EMA fast minus EMA slow) and its signal line.
// The MACD line is defined from index slow-1 and the signal line from index
// slow+signalPeriod-2.
func MACD(closes []float64, fast, slow, signalPeriod int) (macd, signal []float64) {
	macd = nanSeries(len(closes))
	signal = nanSeries(len(closes))
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 || len(closes) < slow {
		return macd, signal
	}

	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)
	for i := slow - 1; i < len(closes); i++ {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	// Signal line is an EMA over the defined portion of the MACD line.
	first := slow - 1
	if len(closes)-first < signalPeriod {
		return macd, signal
	}
	sub := EMA(macd[first:], signalPeriod)
	for i, v := range sub {
		signal[first+i] = v
	}
	return macd, signal
}
