// Package data defines the price bar model and the Feed contract that
// supplies ordered OHLCV sequences to the strategy and backtest layers.
package data

import (
	"context"
	"time"
)

// Bar is a single OHLCV candle. Bars handed to this core are ascending by
// timestamp with no duplicates for a given symbol/interval.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Feed supplies bar sequences for a symbol/interval.
type Feed interface {
	// Bars returns the full stored history, ascending.
	Bars(ctx context.Context, symbol, interval string) ([]Bar, error)

	// RecentBars returns at most limit of the latest bars, still ascending.
	RecentBars(ctx context.Context, symbol, interval string, limit int) ([]Bar, error)
}
