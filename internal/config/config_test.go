package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0.3, cfg.LLM.Temperature)
	assert.Equal(t, 4, cfg.Matching.MaxConcurrency)
	assert.Equal(t, 10, cfg.Matching.TopK)
	assert.Equal(t, 0.2, cfg.Learning.ValidationSplit)
	assert.Equal(t, 100, cfg.Learning.MinNewSamples)
	assert.Equal(t, 30, cfg.Learning.MaxDaysSinceTraining)
	assert.Equal(t, int64(42), cfg.Learning.Seed)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)

	assert.Equal(t, types.DefaultTiers(), cfg.TierTable())
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
database-url: postgres://localhost/odds
redis:
  addr: localhost:6379
  ttl: 1h
llm:
  model: gemini-2.0-flash
  timeout: 3s
matching:
  top-k: 3
tiers:
  - name: team
    threshold: 0.6
    review: true
    features: [Shared matches]
`
	path := filepath.Join(t.TempDir(), "match-agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "postgres://localhost/odds", cfg.DatabaseURL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, 3*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.Matching.TopK)
	assert.Equal(t, 4, cfg.Matching.MaxConcurrency)

	table := cfg.TierTable()
	require.Len(t, table, 1)
	assert.Equal(t, types.Tier{Name: "team", Threshold: 0.6, Review: true, Features: []string{"Shared matches"}}, table["team"])
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/odds")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MATCH_MATCHING_TOP_K", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/odds", cfg.DatabaseURL)
	assert.Equal(t, "secret", cfg.LLM.APIKey)
	assert.Equal(t, 7, cfg.Matching.TopK)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"split zero", func(c *Config) { c.Learning.ValidationSplit = 0 }, "validation-split"},
		{"split one", func(c *Config) { c.Learning.ValidationSplit = 1 }, "validation-split"},
		{"concurrency", func(c *Config) { c.Matching.MaxConcurrency = 0 }, "max-concurrency"},
		{"top-k", func(c *Config) { c.Matching.TopK = -1 }, "top-k"},
		{"timeout", func(c *Config) { c.LLM.Timeout = 0 }, "llm.timeout"},
		{"no tiers", func(c *Config) { c.Tiers = nil }, "at least one tier"},
		{"duplicate tier", func(c *Config) { c.Tiers = append(c.Tiers, c.Tiers[0]) }, "duplicate tier"},
		{"threshold", func(c *Config) { c.Tiers[0].Threshold = 1.5 }, "threshold"},
		{"unnamed tier", func(c *Config) { c.Tiers[0].Name = " " }, "tier name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
