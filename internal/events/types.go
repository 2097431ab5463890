// Package events carries decision and run-completion notifications between
// the worker loops and their observers.
package events

import "time"

// Topic enumerates the event streams inside the bot.
type Topic string

const (
	TopicWorkerDecision Topic = "worker_decision"
	TopicBacktestDone   Topic = "backtest_done"
)

// Decision is one worker iteration's outcome. It is observability output,
// not a wire contract.
type Decision struct {
	Timestamp time.Time `json:"timestamp"`
	Symbol    string    `json:"symbol"`
	Interval  string    `json:"interval"`
	Strategy  string    `json:"strategy"`
	LastPrice float64   `json:"last_price"`
	Signal    string    `json:"signal"`
	Action    string    `json:"action"` // would-buy, would-sell, hold
}
