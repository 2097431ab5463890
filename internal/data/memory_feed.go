package data

import (
	"context"
	"sync"
)

// MemoryFeed is an in-memory Feed used by tests and the mock data path.
type MemoryFeed struct {
	mu   sync.RWMutex
	bars map[string][]Bar // keyed by symbol+"/"+interval, ascending
}

// NewMemoryFeed creates an empty in-memory feed.
func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{bars: make(map[string][]Bar)}
}

// SetBars replaces the stored sequence for a symbol/interval. The caller is
// responsible for passing bars already sorted ascending.
func (f *MemoryFeed) SetBars(symbol, interval string, bars []Bar) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bars[symbol+"/"+interval] = bars
}

func (f *MemoryFeed) Bars(_ context.Context, symbol, interval string) ([]Bar, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	stored := f.bars[symbol+"/"+interval]
	out := make([]Bar, len(stored))
	copy(out, stored)
	return out, nil
}

func (f *MemoryFeed) RecentBars(_ context.Context, symbol, interval string, limit int) ([]Bar, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	stored := f.bars[symbol+"/"+interval]
	if limit > 0 && len(stored) > limit {
		stored = stored[len(stored)-limit:]
	}
	out := make([]Bar, len(stored))
	copy(out, stored)
	return out, nil
}
