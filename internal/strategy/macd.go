package strategy

import (
	"fmt"

	"trading-bot/internal/data"
	"trading-bot/internal/indicators"
)

var _ Strategy = (*MACDStrategy)(nil)

// MACDStrategy trades crossings of the MACD line against its signal line.
// BUY when the MACD line crosses above the signal line, SELL on the reverse.
type MACDStrategy struct {
	fast   int
	slow   int
	signal int
}

// NewMACD validates the periods and builds a MACD strategy.
func NewMACD(fast, slow, signal int) (*MACDStrategy, error) {
	if fast < 1 {
		return nil, configErrorf("fast must be positive, got %d", fast)
	}
	if fast >= slow {
		return nil, configErrorf("fast (%d) must be less than slow (%d)", fast, slow)
	}
	if signal < 1 {
		return nil, configErrorf("signal must be positive, got %d", signal)
	}
	return &MACDStrategy{fast: fast, slow: slow, signal: signal}, nil
}

func (s *MACDStrategy) Name() string {
	return fmt.Sprintf("MACD(%d, %d, %d)", s.fast, s.slow, s.signal)
}

// MinBars covers the slow EMA warm-up plus the signal EMA over the MACD line.
func (s *MACDStrategy) MinBars() int {
	return s.slow + s.signal - 1
}

func (s *MACDStrategy) GenerateSignals(bars []data.Bar) ([]SignalledBar, error) {
	macd, signal := indicators.MACD(closes(bars), s.fast, s.slow, s.signal)

	first := s.slow + s.signal - 2 // signal line defined from here
	var out []SignalledBar
	for i := first; i < len(bars); i++ {
		sig := SignalHold
		if i == first {
			switch {
			case macd[i] > signal[i]:
				sig = SignalBuy
			case macd[i] < signal[i]:
				sig = SignalSell
			}
		} else {
			switch {
			case macd[i] > signal[i] && macd[i-1] <= signal[i-1]:
				sig = SignalBuy
			case macd[i] < signal[i] && macd[i-1] >= signal[i-1]:
				sig = SignalSell
			}
		}
		out = append(out, SignalledBar{Bar: bars[i], Signal: sig})
	}
	return out, nil
}
