package strategy

import (
	"fmt"
	"sort"
)

// Factory builds a strategy instance from named parameters.
type Factory func(params Params) (Strategy, error)

// Registry maps strategy names to constructors. It is built once at startup
// and passed to whatever resolves a backtest request or worker config; it is
// not mutated afterwards.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named constructor.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Create resolves name and builds a strategy with the given parameters.
// Unknown names return ErrNotFound; invalid parameters a ConfigError.
func (r *Registry) Create(name string, params Params) (Strategy, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return f(params)
}

// Names returns the registered strategy names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultRegistry registers the built-in strategies under their canonical
// names. Parameter defaults match the strategy constructors' documented
// defaults.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("RSI", func(p Params) (Strategy, error) {
		length, err := p.intValue("rsi_length", 14)
		if err != nil {
			return nil, err
		}
		buy, err := p.floatValue("rsi_buy", 30)
		if err != nil {
			return nil, err
		}
		sell, err := p.floatValue("rsi_sell", 70)
		if err != nil {
			return nil, err
		}
		return NewRSI(length, buy, sell)
	})

	r.Register("MA_CROSS", func(p Params) (Strategy, error) {
		fast, err := p.intValue("fast_period", 20)
		if err != nil {
			return nil, err
		}
		slow, err := p.intValue("slow_period", 50)
		if err != nil {
			return nil, err
		}
		return NewMACross(fast, slow)
	})

	r.Register("MACD", func(p Params) (Strategy, error) {
		fast, err := p.intValue("fast", 12)
		if err != nil {
			return nil, err
		}
		slow, err := p.intValue("slow", 26)
		if err != nil {
			return nil, err
		}
		signal, err := p.intValue("signal", 9)
		if err != nil {
			return nil, err
		}
		return NewMACD(fast, slow, signal)
	})

	return r
}
