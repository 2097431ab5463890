// Package worker runs the continuous trading engine loop: poll recent bars,
// evaluate the configured strategy, and track a binary open/flat position to
// decide BUY/SELL/HOLD actions. No capital accounting happens here.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"trading-bot/internal/data"
	"trading-bot/internal/events"
	"trading-bot/internal/strategy"
)

const (
	ActionWouldBuy  = "would-buy"
	ActionWouldSell = "would-sell"
	ActionHold      = "hold"
)

// Options configures one worker instance.
type Options struct {
	Symbol       string
	Interval     string
	Lookback     int           // bars fetched per iteration
	PollInterval time.Duration // sleep between iterations
	ErrorBackoff time.Duration // sleep after a failed iteration
}

// errWindowTooShort marks a recoverable skip: the feed has fewer bars than
// the strategy's warm-up window. The loop waits the normal poll interval
// rather than backing off.
var errWindowTooShort = errors.New("window shorter than strategy warm-up")

// Worker is a single long-lived decision loop for one symbol/interval and
// one strategy instance. The positionOpen flag and the strategy are owned
// exclusively by the loop goroutine; the flag is in-memory only and resets
// to flat on restart.
type Worker struct {
	feed  data.Feed
	strat strategy.Strategy
	bus   *events.Bus
	opts  Options

	positionOpen bool
}

// New creates a worker. bus may be nil if nobody observes decisions.
func New(feed data.Feed, strat strategy.Strategy, bus *events.Bus, opts Options) *Worker {
	if opts.Lookback <= 0 {
		opts.Lookback = 200
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Minute
	}
	if opts.ErrorBackoff <= 0 {
		opts.ErrorBackoff = 2 * opts.PollInterval
	}
	return &Worker{feed: feed, strat: strat, bus: bus, opts: opts}
}

// Run loops until ctx is cancelled. Iteration errors are transient: they are
// logged, the loop backs off and retries. Cancellation is observed at the
// sleep boundary.
func (w *Worker) Run(ctx context.Context) {
	log.Printf("worker started: %s %s/%s", w.strat.Name(), w.opts.Symbol, w.opts.Interval)

	for {
		wait := w.opts.PollInterval

		decision, err := w.step(ctx)
		switch {
		case ctx.Err() != nil:
			log.Printf("worker stopped: %s %s/%s", w.strat.Name(), w.opts.Symbol, w.opts.Interval)
			return
		case errors.Is(err, errWindowTooShort):
			log.Printf("worker %s %s/%s: %v, waiting for more data", w.strat.Name(), w.opts.Symbol, w.opts.Interval, err)
		case err != nil:
			log.Printf("worker %s %s/%s iteration failed: %v", w.strat.Name(), w.opts.Symbol, w.opts.Interval, err)
			wait = w.opts.ErrorBackoff
		default:
			log.Printf("worker %s %s: price=%.2f signal=%s decision=%s",
				w.strat.Name(), w.opts.Symbol, decision.LastPrice, decision.Signal, decision.Action)
			if w.bus != nil {
				w.bus.Publish(events.TopicWorkerDecision, decision)
			}
		}

		select {
		case <-ctx.Done():
			log.Printf("worker stopped: %s %s/%s", w.strat.Name(), w.opts.Symbol, w.opts.Interval)
			return
		case <-time.After(wait):
		}
	}
}

// step performs one iteration: fetch the lookback window, evaluate the
// strategy, and act on the last bar's signal only. Older signals in the
// window exist for indicator warm-up and are not re-acted upon.
func (w *Worker) step(ctx context.Context) (events.Decision, error) {
	bars, err := w.feed.RecentBars(ctx, w.opts.Symbol, w.opts.Interval, w.opts.Lookback)
	if err != nil {
		return events.Decision{}, fmt.Errorf("fetch bars: %w", err)
	}
	if len(bars) < w.strat.MinBars() {
		return events.Decision{}, fmt.Errorf("%w: have %d, need %d", errWindowTooShort, len(bars), w.strat.MinBars())
	}

	signalled, err := w.strat.GenerateSignals(bars)
	if err != nil {
		return events.Decision{}, fmt.Errorf("generate signals: %w", err)
	}
	if len(signalled) == 0 {
		return events.Decision{}, fmt.Errorf("no computable signals in window of %d bars", len(bars))
	}

	last := signalled[len(signalled)-1]

	action := ActionHold
	switch {
	case last.Signal == strategy.SignalBuy && !w.positionOpen:
		w.positionOpen = true
		action = ActionWouldBuy
	case last.Signal == strategy.SignalSell && w.positionOpen:
		w.positionOpen = false
		action = ActionWouldSell
	}

	return events.Decision{
		Timestamp: time.Now().UTC(),
		Symbol:    w.opts.Symbol,
		Interval:  w.opts.Interval,
		Strategy:  w.strat.Name(),
		LastPrice: last.Close,
		Signal:    string(last.Signal),
		Action:    action,
	}, nil
}
