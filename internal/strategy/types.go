// Package strategy defines the trading signal contract, the built-in
// strategies (RSI, MA cross, MACD) and a name-to-constructor registry.
package strategy

import "trading-bot/internal/data"

// Signal is a discrete per-bar trading decision.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// SignalledBar pairs a bar with the signal a strategy derived for it.
type SignalledBar struct {
	data.Bar
	Signal Signal
}

// Strategy derives one signal per bar from an ordered bar sequence.
//
// GenerateSignals returns only the bars whose indicators are fully defined:
// bars inside the warm-up window are dropped, not reported as HOLD. Signals
// are edge-triggered crossings; a threshold condition that persists across
// bars fires once, on the bar where it first becomes true.
type Strategy interface {
	// Name identifies the strategy instance, including its parameters.
	Name() string

	// MinBars is the minimum input length needed to produce at least one
	// signal-bearing bar.
	MinBars() int

	// GenerateSignals annotates bars with signals, dropping warm-up bars.
	GenerateSignals(bars []data.Bar) ([]SignalledBar, error)
}
