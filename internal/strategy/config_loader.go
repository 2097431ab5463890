package strategy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InstanceConfig is one worker strategy instance in the YAML file.
type InstanceConfig struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"` // registry name: RSI, MA_CROSS, MACD
	Symbol   string `yaml:"symbol"`
	Interval string `yaml:"interval"`
	Params   Params `yaml:"parameters"`
	IsActive bool   `yaml:"is_active"`
}

// ConfigFile is the top-level YAML structure.
type ConfigFile struct {
	Strategies []InstanceConfig `yaml:"strategies"`
}

// LoadInstances reads worker strategy instances from a YAML file.
func LoadInstances(path string) ([]InstanceConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read strategies config: %w", err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse strategies config: %w", err)
	}

	for i, cfg := range file.Strategies {
		if cfg.ID == "" {
			return nil, fmt.Errorf("strategies[%d]: id is required", i)
		}
		if cfg.Symbol == "" || cfg.Interval == "" {
			return nil, fmt.Errorf("strategy %s: symbol and interval are required", cfg.ID)
		}
	}
	return file.Strategies, nil
}
