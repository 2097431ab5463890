package strategy

import (
	"errors"
	"testing"
	"time"

	"trading-bot/internal/data"
)

func barsFromCloses(closes []float64) []data.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]data.Bar, len(closes))
	for i, c := range closes {
		bars[i] = data.Bar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1,
		}
	}
	return bars
}

func TestRSIValidation(t *testing.T) {
	if _, err := NewRSI(14, 70, 30); !IsConfigError(err) {
		t.Errorf("sell <= buy should be a config error, got %v", err)
	}
	if _, err := NewRSI(1, 30, 70); !IsConfigError(err) {
		t.Errorf("length < 2 should be a config error, got %v", err)
	}
	if _, err := NewRSI(14, 30, 70); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
}

func TestRSICrossingScenario(t *testing.T) {
	// RSI(2) over these closes is 0, 0, 80 from the third bar on: the
	// series enters oversold immediately and crosses up through 70 on the
	// final recovery bar.
	s, err := NewRSI(2, 30, 70)
	if err != nil {
		t.Fatal(err)
	}

	out, err := s.GenerateSignals(barsFromCloses([]float64{100, 90, 80, 70, 110}))
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 3 {
		t.Fatalf("got %d signalled bars, want 3 (warm-up removed)", len(out))
	}
	want := []Signal{SignalBuy, SignalHold, SignalSell}
	for i, w := range want {
		if out[i].Signal != w {
			t.Errorf("signal[%d] = %s, want %s", i, out[i].Signal, w)
		}
	}
}

func TestRSINeutralSeriesNeverSignals(t *testing.T) {
	// Alternating +-1 around 100 keeps the Wilder RSI hovering near 50,
	// never reaching either threshold.
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i%2)
	}

	s, err := NewRSI(14, 30, 70)
	if err != nil {
		t.Fatal(err)
	}
	out, err := s.GenerateSignals(barsFromCloses(closes))
	if err != nil {
		t.Fatal(err)
	}

	for i, sb := range out {
		if sb.Signal != SignalHold {
			t.Errorf("signal[%d] = %s, want HOLD", i, sb.Signal)
		}
	}
}

func TestMACrossValidation(t *testing.T) {
	if _, err := NewMACross(50, 20); !IsConfigError(err) {
		t.Errorf("fast >= slow should be a config error, got %v", err)
	}
	if _, err := NewMACross(0, 20); !IsConfigError(err) {
		t.Errorf("non-positive fast should be a config error, got %v", err)
	}
}

func TestMACrossMonotonicUptrend(t *testing.T) {
	s, err := NewMACross(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	out, err := s.GenerateSignals(barsFromCloses([]float64{1, 2, 3, 4, 5, 6, 7}))
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 5 {
		t.Fatalf("got %d signalled bars, want 5", len(out))
	}

	buys, sells := 0, 0
	for _, sb := range out {
		switch sb.Signal {
		case SignalBuy:
			buys++
		case SignalSell:
			sells++
		}
	}
	if buys != 1 {
		t.Errorf("got %d BUY signals, want exactly 1", buys)
	}
	if sells != 0 {
		t.Errorf("got %d SELL signals, want 0", sells)
	}
	if out[0].Signal != SignalBuy {
		t.Errorf("the fast average is already above the slow one on the first computable bar, want BUY there, got %s", out[0].Signal)
	}
}

func TestMACDValidationAndCross(t *testing.T) {
	if _, err := NewMACD(26, 12, 9); !IsConfigError(err) {
		t.Error("fast >= slow should be a config error")
	}

	s, err := NewMACD(2, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Downtrend then sharp recovery: the MACD line crosses above its
	// signal line exactly once, on the first recovery bar.
	out, err := s.GenerateSignals(barsFromCloses([]float64{10, 9, 8, 7, 6, 10, 14, 18}))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 {
		t.Fatalf("got %d signalled bars, want 5", len(out))
	}

	var buyIdx []int
	for i, sb := range out {
		if sb.Signal == SignalSell {
			t.Errorf("unexpected SELL at %d", i)
		}
		if sb.Signal == SignalBuy {
			buyIdx = append(buyIdx, i)
		}
	}
	if len(buyIdx) != 1 || out[buyIdx[0]].Close != 10 {
		t.Errorf("want exactly one BUY on the first recovery bar (close 10), got %v", buyIdx)
	}
}

func TestRegistryUnknownName(t *testing.T) {
	r := NewDefaultRegistry()
	_, err := r.Create("SUPER_SECRET_ALPHA", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown name should resolve to ErrNotFound, got %v", err)
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewDefaultRegistry()

	names := r.Names()
	want := []string{"MACD", "MA_CROSS", "RSI"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}

	s, err := r.Create("RSI", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "RSI(14, 30, 70)" {
		t.Errorf("default RSI name = %q", s.Name())
	}

	s, err = r.Create("MA_CROSS", Params{"fast_period": float64(5), "slow_period": float64(10)})
	if err != nil {
		t.Fatal(err)
	}
	if s.MinBars() != 10 {
		t.Errorf("MA_CROSS MinBars = %d, want 10", s.MinBars())
	}
}

func TestRegistryBadParams(t *testing.T) {
	r := NewDefaultRegistry()
	if _, err := r.Create("RSI", Params{"rsi_buy": float64(70), "rsi_sell": float64(30)}); !IsConfigError(err) {
		t.Errorf("inverted thresholds should be a config error, got %v", err)
	}
	if _, err := r.Create("MACD", Params{"fast": "many"}); !IsConfigError(err) {
		t.Errorf("non-numeric parameter should be a config error, got %v", err)
	}
	if _, err := r.Create("RSI", Params{"rsi_length": 14.5}); !IsConfigError(err) {
		t.Errorf("fractional integer parameter should be a config error, got %v", err)
	}
}
