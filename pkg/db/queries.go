package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("record not found")

// Queries bundles the SQL used by the bot around a single handle.
type Queries struct {
	db *sql.DB
}

// NewQueries creates a Queries instance over an open database.
func NewQueries(d *Database) *Queries {
	return &Queries{db: d.DB}
}

// UpsertKlines inserts or replaces a batch of bars inside one transaction.
func (q *Queries) UpsertKlines(ctx context.Context, klines []Kline) error {
	if len(klines) == 0 {
		return nil
	}

	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO klines (symbol, interval, timestamp, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol, interval, timestamp) DO UPDATE SET
			open = excluded.open,
			high = excluded.high,
			low = excluded.low,
			close = excluded.close,
			volume = excluded.volume
	`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, k := range klines {
		if _, err := stmt.ExecContext(ctx,
			k.Symbol, k.Interval, k.Timestamp.UTC(), k.Open, k.High, k.Low, k.Close, k.Volume,
		); err != nil {
			return fmt.Errorf("upsert kline %s/%s@%s: %w", k.Symbol, k.Interval, k.Timestamp, err)
		}
	}

	return tx.Commit()
}

// GetKlines returns all bars for a symbol/interval in ascending timestamp order.
func (q *Queries) GetKlines(ctx context.Context, symbol, interval string) ([]Kline, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT symbol, interval, timestamp, open, high, low, close, volume
		FROM klines
		WHERE symbol = ? AND interval = ?
		ORDER BY timestamp ASC
	`, symbol, interval)
	if err != nil {
		return nil, fmt.Errorf("query klines: %w", err)
	}
	defer rows.Close()

	return scanKlines(rows)
}

// GetRecentKlines returns the latest limit bars, still ascending, for
// lookback-window consumers.
func (q *Queries) GetRecentKlines(ctx context.Context, symbol, interval string, limit int) ([]Kline, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT symbol, interval, timestamp, open, high, low, close, volume
		FROM (
			SELECT symbol, interval, timestamp, open, high, low, close, volume
			FROM klines
			WHERE symbol = ? AND interval = ?
			ORDER BY timestamp DESC
			LIMIT ?
		)
		ORDER BY timestamp ASC
	`, symbol, interval, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent klines: %w", err)
	}
	defer rows.Close()

	return scanKlines(rows)
}

func scanKlines(rows *sql.Rows) ([]Kline, error) {
	var out []Kline
	for rows.Next() {
		var k Kline
		var ts time.Time
		if err := rows.Scan(&k.Symbol, &k.Interval, &ts, &k.Open, &k.High, &k.Low, &k.Close, &k.Volume); err != nil {
			return nil, fmt.Errorf("scan kline: %w", err)
		}
		k.Timestamp = ts.UTC()
		out = append(out, k)
	}
	return out, rows.Err()
}

// InsertBacktestRun records a completed backtest summary.
func (q *Queries) InsertBacktestRun(ctx context.Context, run BacktestRun) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO backtest_runs
			(id, symbol, interval, strategy_name, initial_capital, final_capital,
			 profit_loss_pct, total_trades, win_rate, max_drawdown, sharpe_ratio)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Symbol, run.Interval, run.StrategyName, run.InitialCapital,
		run.FinalCapital, run.ProfitLossPct, run.TotalTrades, run.WinRate,
		run.MaxDrawdown, run.SharpeRatio)
	if err != nil {
		return fmt.Errorf("insert backtest run: %w", err)
	}
	return nil
}

// RecentBacktestRuns returns the latest run summaries, newest first.
func (q *Queries) RecentBacktestRuns(ctx context.Context, limit int) ([]BacktestRun, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, symbol, interval, strategy_name, initial_capital, final_capital,
		       profit_loss_pct, total_trades, win_rate, max_drawdown, sharpe_ratio, created_at
		FROM backtest_runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query backtest runs: %w", err)
	}
	defer rows.Close()

	var out []BacktestRun
	for rows.Next() {
		var r BacktestRun
		var sharpe sql.NullFloat64
		if err := rows.Scan(&r.ID, &r.Symbol, &r.Interval, &r.StrategyName,
			&r.InitialCapital, &r.FinalCapital, &r.ProfitLossPct, &r.TotalTrades,
			&r.WinRate, &r.MaxDrawdown, &sharpe, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan backtest run: %w", err)
		}
		if sharpe.Valid {
			v := sharpe.Float64
			r.SharpeRatio = &v
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
