package backtest

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"trading-bot/internal/data"
	"trading-bot/internal/strategy"
	"trading-bot/pkg/db"
)

// ErrNoData is returned when the feed has nothing stored for the requested
// symbol/interval.
var ErrNoData = errors.New("no data for symbol and interval")

// Runner orchestrates a single backtest: resolve the strategy, load bars,
// generate signals, simulate and derive metrics. Runners are safe for
// concurrent use; every Run builds fresh simulator state.
type Runner struct {
	feed     data.Feed
	registry *strategy.Registry
	queries  *db.Queries // optional run-history sink, may be nil
}

// NewRunner creates a Runner over the given feed and registry. queries may
// be nil to disable run-history persistence.
func NewRunner(feed data.Feed, registry *strategy.Registry, queries *db.Queries) *Runner {
	return &Runner{feed: feed, registry: registry, queries: queries}
}

// Run executes one backtest request end to end.
func (r *Runner) Run(ctx context.Context, req BacktestRequest) (*BacktestResult, error) {
	// Request defaults mirror the exposed contract: 1000 capital, all-in.
	if req.InitialCapital == 0 {
		req.InitialCapital = 1000
	}
	if req.PositionSize == 0 {
		req.PositionSize = 1
	}

	strat, err := r.registry.Create(req.StrategyName, req.StrategyParams)
	if err != nil {
		return nil, err
	}

	bars, err := r.feed.Bars(ctx, req.Symbol, req.Interval)
	if err != nil {
		return nil, fmt.Errorf("load bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoData, req.Symbol, req.Interval)
	}
	if len(bars) < strat.MinBars() {
		return nil, &InsufficientDataError{Needed: strat.MinBars(), Got: len(bars)}
	}

	signalled, err := strat.GenerateSignals(bars)
	if err != nil {
		return nil, fmt.Errorf("generate signals: %w", err)
	}
	if len(signalled) == 0 {
		return nil, &InsufficientDataError{Needed: strat.MinBars(), Got: len(bars)}
	}

	trades, equity, finalCapital, err := Simulate(signalled, req.InitialCapital, req.PositionSize)
	if err != nil {
		return nil, err
	}

	metrics := CalculateMetrics(trades, equity, req.Interval)
	if trades == nil {
		trades = []Trade{}
	}

	result := &BacktestResult{
		ID:             uuid.NewString(),
		StrategyName:   strat.Name(),
		Symbol:         req.Symbol,
		Interval:       req.Interval,
		InitialCapital: round2(req.InitialCapital),
		FinalCapital:   round2(finalCapital),
		ProfitLoss:     round2(finalCapital - req.InitialCapital),
		ProfitLossPct:  round2((finalCapital - req.InitialCapital) / req.InitialCapital * 100),
		TotalTrades:    len(trades),
		WinningTrades:  metrics.WinningTrades,
		LosingTrades:   metrics.LosingTrades,
		WinRate:        metrics.WinRate,
		MaxDrawdown:    metrics.MaxDrawdown,
		SharpeRatio:    metrics.SharpeRatio,
		Trades:         trades,
	}

	r.recordRun(ctx, result)
	return result, nil
}

// recordRun persists a summary row for the run history. Persistence is glue
// around the core: failures are logged, never surfaced to the caller.
func (r *Runner) recordRun(ctx context.Context, res *BacktestResult) {
	if r.queries == nil {
		return
	}
	err := r.queries.InsertBacktestRun(ctx, db.BacktestRun{
		ID:             res.ID,
		Symbol:         res.Symbol,
		Interval:       res.Interval,
		StrategyName:   res.StrategyName,
		InitialCapital: res.InitialCapital,
		FinalCapital:   res.FinalCapital,
		ProfitLossPct:  res.ProfitLossPct,
		TotalTrades:    res.TotalTrades,
		WinRate:        res.WinRate,
		MaxDrawdown:    res.MaxDrawdown,
		SharpeRatio:    res.SharpeRatio,
	})
	if err != nil {
		log.Printf("failed to record backtest run %s: %v", res.ID, err)
	}
}
