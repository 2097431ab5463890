package data

import (
	"context"

	"trading-bot/pkg/db"
)

// StoreFeed reads bars from the SQLite kline store.
type StoreFeed struct {
	queries *db.Queries
}

// NewStoreFeed creates a Feed backed by the given queries.
func NewStoreFeed(queries *db.Queries) *StoreFeed {
	return &StoreFeed{queries: queries}
}

func (f *StoreFeed) Bars(ctx context.Context, symbol, interval string) ([]Bar, error) {
	klines, err := f.queries.GetKlines(ctx, symbol, interval)
	if err != nil {
		return nil, err
	}
	return fromKlines(klines), nil
}

func (f *StoreFeed) RecentBars(ctx context.Context, symbol, interval string, limit int) ([]Bar, error) {
	klines, err := f.queries.GetRecentKlines(ctx, symbol, interval, limit)
	if err != nil {
		return nil, err
	}
	return fromKlines(klines), nil
}

func fromKlines(klines []db.Kline) []Bar {
	bars := make([]Bar, 0, len(klines))
	for _, k := range klines {
		bars = append(bars, Bar{
			Timestamp: k.Timestamp,
			Open:      k.Open,
			High:      k.High,
			Low:       k.Low,
			Close:     k.Close,
			Volume:    k.Volume,
		})
	}
	return bars
}
