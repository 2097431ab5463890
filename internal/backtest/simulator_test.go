package backtest

import (
	"math"
	"testing"
	"time"

	"trading-bot/internal/strategy"
)

func signalledBars(closes []float64, signals []strategy.Signal) []strategy.SignalledBar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]strategy.SignalledBar, len(closes))
	for i, c := range closes {
		sig := strategy.SignalHold
		if signals != nil {
			sig = signals[i]
		}
		out[i].Timestamp = start.AddDate(0, 0, i)
		out[i].Close = c
		out[i].Signal = sig
	}
	return out
}

func TestSimulateParamValidation(t *testing.T) {
	bars := signalledBars([]float64{100}, nil)

	if _, _, _, err := Simulate(bars, 0, 1); !strategy.IsConfigError(err) {
		t.Errorf("zero capital should be a config error, got %v", err)
	}
	if _, _, _, err := Simulate(bars, 1000, 0); !strategy.IsConfigError(err) {
		t.Errorf("zero position size should be a config error, got %v", err)
	}
	if _, _, _, err := Simulate(bars, 1000, 1.5); !strategy.IsConfigError(err) {
		t.Errorf("position size above 1 should be a config error, got %v", err)
	}
}

func TestSimulateNoSignalsPreservesCapital(t *testing.T) {
	bars := signalledBars([]float64{100, 90, 110, 105}, nil)

	trades, equity, final, err := Simulate(bars, 1000, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(trades) != 0 {
		t.Fatalf("got %d trades, want 0", len(trades))
	}
	if final != 1000 {
		t.Errorf("final capital = %v, want exactly 1000", final)
	}
	if len(equity) != len(bars)+1 {
		t.Errorf("equity curve length = %d, want %d", len(equity), len(bars)+1)
	}
	for i, v := range equity {
		if v != 1000 {
			t.Errorf("equity[%d] = %v, want 1000", i, v)
		}
	}
}

func TestSimulateRoundTrip(t *testing.T) {
	closes := []float64{80, 70, 110}
	signals := []strategy.Signal{strategy.SignalBuy, strategy.SignalHold, strategy.SignalSell}

	trades, equity, final, err := Simulate(signalledBars(closes, signals), 1000, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(trades) != 1 {
		t.Fatalf("got %d trades, want 1", len(trades))
	}
	tr := trades[0]
	if tr.Quantity != 12.5 {
		t.Errorf("quantity = %v, want 12.5", tr.Quantity)
	}
	if tr.Profit != 375 {
		t.Errorf("profit = %v, want 375", tr.Profit)
	}
	if tr.ProfitPct != 37.5 {
		t.Errorf("profit_pct = %v, want 37.5", tr.ProfitPct)
	}
	if got := tr.Quantity * (tr.ExitPrice - tr.EntryPrice); math.Abs(got-tr.Profit) > 1e-6 {
		t.Errorf("profit invariant violated: qty*(exit-entry) = %v, profit = %v", got, tr.Profit)
	}
	if final != 1375 {
		t.Errorf("final capital = %v, want 1375", final)
	}

	wantEquity := []float64{1000, 1000, 875, 1375}
	if len(equity) != len(wantEquity) {
		t.Fatalf("equity length = %d, want %d", len(equity), len(wantEquity))
	}
	for i, w := range wantEquity {
		if math.Abs(equity[i]-w) > 1e-9 {
			t.Errorf("equity[%d] = %v, want %v", i, equity[i], w)
		}
	}
}

func TestSimulateForceCloseAtEnd(t *testing.T) {
	closes := []float64{100, 120, 150}
	signals := []strategy.Signal{strategy.SignalBuy, strategy.SignalHold, strategy.SignalHold}
	bars := signalledBars(closes, signals)

	trades, _, final, err := Simulate(bars, 1000, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if len(trades) != 1 {
		t.Fatalf("got %d trades, want 1 forced close", len(trades))
	}
	tr := trades[0]
	if !tr.ExitTime.Equal(bars[len(bars)-1].Timestamp) {
		t.Errorf("exit time = %v, want last bar timestamp %v", tr.ExitTime, bars[len(bars)-1].Timestamp)
	}
	if tr.ExitPrice != 150 {
		t.Errorf("exit price = %v, want final close 150", tr.ExitPrice)
	}
	// 500 invested at 100 -> 5 shares sold at 150, plus 500 kept in cash.
	if math.Abs(final-1250) > 1e-9 {
		t.Errorf("final capital = %v, want 1250", final)
	}
}

func TestSimulateIgnoresRedundantSignals(t *testing.T) {
	closes := []float64{100, 100, 100, 100, 100}
	signals := []strategy.Signal{
		strategy.SignalSell, // SELL while flat: ignored
		strategy.SignalBuy,
		strategy.SignalBuy, // BUY while long: no pyramiding
		strategy.SignalSell,
		strategy.SignalSell, // SELL while flat again
	}

	trades, _, final, err := Simulate(signalledBars(closes, signals), 1000, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(trades) != 1 {
		t.Fatalf("got %d trades, want 1", len(trades))
	}
	if final != 1000 {
		t.Errorf("final capital = %v, want 1000 on a flat price", final)
	}
}

func TestSimulateEmptyInput(t *testing.T) {
	trades, equity, final, err := Simulate(nil, 1000, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(trades) != 0 || final != 1000 {
		t.Errorf("empty input should produce no trades and untouched capital")
	}
	if len(equity) != 1 || equity[0] != 1000 {
		t.Errorf("equity = %v, want just the seed point", equity)
	}
}
