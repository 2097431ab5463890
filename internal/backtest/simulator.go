package backtest

import (
	"time"

	"trading-bot/internal/strategy"
)

// position is the simulator-local holding state: flat when quantity is zero,
// long otherwise. At most one position is open at a time.
type position struct {
	quantity   float64
	entryPrice float64
	entryTime  time.Time
}

// Simulate replays signal-annotated bars through the FLAT/LONG state machine
// and returns the trade ledger, the equity curve (seeded with initialCapital,
// one more point than bars) and the final capital.
//
// A position still open after the last bar is force-closed at that bar's
// close so final capital always reflects fully realized performance.
func Simulate(bars []strategy.SignalledBar, initialCapital, positionSize float64) ([]Trade, []float64, float64, error) {
	if initialCapital <= 0 {
		return nil, nil, 0, &strategy.ConfigError{Reason: "initial_capital must be positive"}
	}
	if positionSize <= 0 || positionSize > 1 {
		return nil, nil, 0, &strategy.ConfigError{Reason: "position_size must be in (0, 1]"}
	}

	capital := initialCapital
	var pos position
	var trades []Trade
	equity := make([]float64, 0, len(bars)+1)
	equity = append(equity, initialCapital)

	for _, bar := range bars {
		price := bar.Close

		switch {
		case pos.quantity == 0 && bar.Signal == strategy.SignalBuy && capital > 0:
			invested := capital * positionSize
			pos = position{
				quantity:   invested / price,
				entryPrice: price,
				entryTime:  bar.Timestamp,
			}
			capital -= invested

		case pos.quantity > 0 && bar.Signal == strategy.SignalSell:
			capital += pos.quantity * price
			trades = append(trades, newTrade(pos.entryTime, bar.Timestamp, pos.entryPrice, price, pos.quantity))
			pos = position{}
		}
		// BUY while long and SELL while flat are ignored: no pyramiding,
		// no short selling.

		equity = append(equity, capital+pos.quantity*price)
	}

	if pos.quantity > 0 {
		last := bars[len(bars)-1]
		capital += pos.quantity * last.Close
		trades = append(trades, newTrade(pos.entryTime, last.Timestamp, pos.entryPrice, last.Close, pos.quantity))
	}

	return trades, equity, capital, nil
}
