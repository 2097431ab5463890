package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_PATH", "STRATEGIES_PATH", "WORKER_ENABLED",
		"WORKER_LOOKBACK", "WORKER_POLL_INTERVAL", "WORKER_ERROR_BACKOFF", "SEED_MOCK_DATA",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if !cfg.WorkerEnabled {
		t.Error("worker should default to enabled")
	}
	if cfg.WorkerLookback != 200 {
		t.Errorf("WorkerLookback = %d, want 200", cfg.WorkerLookback)
	}
	if cfg.WorkerPollInterval != 60*time.Second {
		t.Errorf("WorkerPollInterval = %v, want 60s", cfg.WorkerPollInterval)
	}
	if cfg.WorkerErrorBackoff != 120*time.Second {
		t.Errorf("WorkerErrorBackoff = %v, want 120s", cfg.WorkerErrorBackoff)
	}
	if cfg.SeedMockData {
		t.Error("mock data seeding should default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_ENABLED", "false")
	t.Setenv("WORKER_LOOKBACK", "500")
	t.Setenv("WORKER_POLL_INTERVAL", "5s")
	t.Setenv("SEED_MOCK_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %s, want 9000", cfg.Port)
	}
	if cfg.WorkerEnabled {
		t.Error("worker should be disabled")
	}
	if cfg.WorkerLookback != 500 {
		t.Errorf("WorkerLookback = %d, want 500", cfg.WorkerLookback)
	}
	if cfg.WorkerPollInterval != 5*time.Second {
		t.Errorf("WorkerPollInterval = %v, want 5s", cfg.WorkerPollInterval)
	}
	if !cfg.SeedMockData {
		t.Error("mock data seeding should be on")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("WORKER_LOOKBACK", "lots")
	t.Setenv("WORKER_POLL_INTERVAL", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkerLookback != 200 {
		t.Errorf("WorkerLookback = %d, want default 200", cfg.WorkerLookback)
	}
	if cfg.WorkerPollInterval != 60*time.Second {
		t.Errorf("WorkerPollInterval = %v, want default 60s", cfg.WorkerPollInterval)
	}
}
