package strategy

import (
	"fmt"

	"trading-bot/internal/data"
	"trading-bot/internal/indicators"
)

var _ Strategy = (*MACrossStrategy)(nil)

// MACrossStrategy is a trend-following SMA crossover strategy.
// BUY on the golden cross (fast over slow), SELL on the death cross.
type MACrossStrategy struct {
	fastPeriod int
	slowPeriod int
}

// NewMACross validates the periods and builds an MA crossover strategy.
func NewMACross(fastPeriod, slowPeriod int) (*MACrossStrategy, error) {
	if fastPeriod < 1 {
		return nil, configErrorf("fast_period must be positive, got %d", fastPeriod)
	}
	if fastPeriod >= slowPeriod {
		return nil, configErrorf("fast_period (%d) must be less than slow_period (%d)", fastPeriod, slowPeriod)
	}
	return &MACrossStrategy{fastPeriod: fastPeriod, slowPeriod: slowPeriod}, nil
}

func (s *MACrossStrategy) Name() string {
	return fmt.Sprintf("MACross(%d, %d)", s.fastPeriod, s.slowPeriod)
}

func (s *MACrossStrategy) MinBars() int {
	return s.slowPeriod
}

func (s *MACrossStrategy) GenerateSignals(bars []data.Bar) ([]SignalledBar, error) {
	cs := closes(bars)
	fast := indicators.SMA(cs, s.fastPeriod)
	slow := indicators.SMA(cs, s.slowPeriod)

	first := s.slowPeriod - 1 // both averages defined from here
	var out []SignalledBar
	for i := first; i < len(bars); i++ {
		sig := SignalHold
		if i == first {
			switch {
			case fast[i] > slow[i]:
				sig = SignalBuy
			case fast[i] < slow[i]:
				sig = SignalSell
			}
		} else {
			switch {
			case fast[i] > slow[i] && fast[i-1] <= slow[i-1]:
				sig = SignalBuy
			case fast[i] < slow[i] && fast[i-1] >= slow[i-1]:
				sig = SignalSell
			}
		}
		out = append(out, SignalledBar{Bar: bars[i], Signal: sig})
	}
	return out, nil
}
