package strategy

import (
	"fmt"

	"trading-bot/internal/data"
	"trading-bot/internal/indicators"
)

// Compile-time interface check.
var _ Strategy = (*RSIStrategy)(nil)

// RSIStrategy is a mean-reversion strategy over the Wilder RSI.
// BUY fires when the RSI crosses down through the buy threshold (entering
// oversold territory), SELL when it crosses up through the sell threshold.
type RSIStrategy struct {
	length int
	buy    float64
	sell   float64
}

// NewRSI validates the thresholds and builds an RSI strategy.
func NewRSI(length int, buy, sell float64) (*RSIStrategy, error) {
	if length < 2 {
		return nil, configErrorf("rsi_length must be at least 2, got %d", length)
	}
	if sell <= buy {
		return nil, configErrorf("rsi_sell (%g) must be greater than rsi_buy (%g)", sell, buy)
	}
	return &RSIStrategy{length: length, buy: buy, sell: sell}, nil
}

func (s *RSIStrategy) Name() string {
	return fmt.Sprintf("RSI(%d, %g, %g)", s.length, s.buy, s.sell)
}

// MinBars is length+1: the RSI needs length price changes.
func (s *RSIStrategy) MinBars() int {
	return s.length + 1
}

func (s *RSIStrategy) GenerateSignals(bars []data.Bar) ([]SignalledBar, error) {
	rsi := indicators.RSI(closes(bars), s.length)

	var out []SignalledBar
	for i := s.length; i < len(bars); i++ {
		sig := SignalHold
		cur := rsi[i]
		if i == s.length {
			// First computable value: entering a zone counts as the crossing.
			switch {
			case cur < s.buy:
				sig = SignalBuy
			case cur > s.sell:
				sig = SignalSell
			}
		} else {
			prev := rsi[i-1]
			switch {
			case cur < s.buy && prev >= s.buy:
				sig = SignalBuy
			case cur > s.sell && prev <= s.sell:
				sig = SignalSell
			}
		}
		out = append(out, SignalledBar{Bar: bars[i], Signal: sig})
	}
	return out, nil
}

func closes(bars []data.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}
