// Package backtest simulates capital allocation over signal-annotated bar
// sequences and derives performance metrics from the resulting trade ledger.
package backtest

import (
	"fmt"
	"math"
	"time"

	"trading-bot/internal/strategy"
)

// Trade is one closed round trip. Fields are rounded at creation: prices and
// profits to 2 decimals, quantity to 4.
type Trade struct {
	EntryTime  time.Time `json:"entry_time"`
	ExitTime   time.Time `json:"exit_time"`
	EntryPrice float64   `json:"entry_price"`
	ExitPrice  float64   `json:"exit_price"`
	Profit     float64   `json:"profit"`
	ProfitPct  float64   `json:"profit_pct"`
	Quantity   float64   `json:"quantity"`
}

func newTrade(entryTime, exitTime time.Time, entryPrice, exitPrice, quantity float64) Trade {
	return Trade{
		EntryTime:  entryTime,
		ExitTime:   exitTime,
		EntryPrice: round2(entryPrice),
		ExitPrice:  round2(exitPrice),
		Profit:     round2(quantity * (exitPrice - entryPrice)),
		ProfitPct:  round2((exitPrice - entryPrice) / entryPrice * 100),
		Quantity:   round4(quantity),
	}
}

// BacktestRequest is the exposed contract for one run.
type BacktestRequest struct {
	Symbol         string          `json:"symbol"`
	Interval       string          `json:"interval"`
	StrategyName   string          `json:"strategy_name"`
	StrategyParams strategy.Params `json:"strategy_params"`
	InitialCapital float64         `json:"initial_capital"`
	PositionSize   float64         `json:"position_size"`
}

// BacktestResult is the read-only output of one run.
type BacktestResult struct {
	ID             string   `json:"id"`
	StrategyName   string   `json:"strategy_name"`
	Symbol         string   `json:"symbol"`
	Interval       string   `json:"interval"`
	InitialCapital float64  `json:"initial_capital"`
	FinalCapital   float64  `json:"final_capital"`
	ProfitLoss     float64  `json:"profit_loss"`
	ProfitLossPct  float64  `json:"profit_loss_pct"`
	TotalTrades    int      `json:"total_trades"`
	WinningTrades  int      `json:"winning_trades"`
	LosingTrades   int      `json:"losing_trades"`
	WinRate        float64  `json:"win_rate"`
	MaxDrawdown    float64  `json:"max_drawdown"`
	SharpeRatio    *float64 `json:"sharpe_ratio"`
	Trades         []Trade  `json:"trades"`
}

// InsufficientDataError reports a bar sequence shorter than the strategy's
// warm-up requirement. It is client-correctable: request more history or
// relax the parameters.
type InsufficientDataError struct {
	Needed int
	Got    int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: strategy needs at least %d bars, got %d", e.Needed, e.Got)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
