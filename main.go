package main

import (
	"context"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"trading-bot/internal/api"
	"trading-bot/internal/backtest"
	"trading-bot/internal/data"
	"trading-bot/internal/events"
	"trading-bot/internal/strategy"
	"trading-bot/internal/worker"
	"trading-bot/pkg/config"
	"trading-bot/pkg/db"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Printf("starting trading bot on port %s (db: %s)", cfg.Port, cfg.DBPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()
	if err := db.ApplyMigrations(database); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	queries := db.NewQueries(database)
	if cfg.SeedMockData {
		if err := seedMockData(ctx, queries); err != nil {
			log.Printf("mock data seeding failed: %v", err)
		}
	}

	bus := events.NewBus()
	feed := data.NewStoreFeed(queries)
	registry := strategy.NewDefaultRegistry()
	runner := backtest.NewRunner(feed, registry, queries)

	// One worker goroutine per active strategy instance.
	var wg sync.WaitGroup
	if cfg.WorkerEnabled {
		instances, err := strategy.LoadInstances(cfg.StrategiesPath)
		if err != nil {
			log.Printf("no worker strategies loaded: %v", err)
		}
		for _, inst := range instances {
			if !inst.IsActive {
				continue
			}
			strat, err := registry.Create(inst.Type, inst.Params)
			if err != nil {
				log.Printf("skipping strategy %s: %v", inst.ID, err)
				continue
			}
			w := worker.New(feed, strat, bus, worker.Options{
				Symbol:       inst.Symbol,
				Interval:     inst.Interval,
				Lookback:     cfg.WorkerLookback,
				PollInterval: cfg.WorkerPollInterval,
				ErrorBackoff: cfg.WorkerErrorBackoff,
			})
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.Run(ctx)
			}()
		}
	}

	server := api.NewServer(bus, runner, registry, queries)
	go func() {
		if err := server.Start(":" + cfg.Port); err != nil {
			log.Fatalf("api server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Println("shutting down")
	cancel()
	wg.Wait()
}

// seedMockData fills the kline store with a deterministic random walk so the
// API and workers have something to chew on in demo setups.
func seedMockData(ctx context.Context, queries *db.Queries) error {
	const (
		symbol   = "GGAL"
		interval = "1d"
		days     = 365
	)

	rng := rand.New(rand.NewSource(42))
	price := 100.0
	start := time.Now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)

	klines := make([]db.Kline, 0, days)
	for i := 0; i < days; i++ {
		change := rng.NormFloat64() * 0.02
		open := price
		price = price * (1 + change)
		high := math.Max(open, price) * (1 + rng.Float64()*0.01)
		low := math.Min(open, price) * (1 - rng.Float64()*0.01)

		klines = append(klines, db.Kline{
			Symbol:    symbol,
			Interval:  interval,
			Timestamp: start.AddDate(0, 0, i),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     price,
			Volume:    1000 + rng.Float64()*9000,
		})
	}

	if err := queries.UpsertKlines(ctx, klines); err != nil {
		return err
	}
	log.Printf("seeded %d mock bars for %s/%s", len(klines), symbol, interval)
	return nil
}
