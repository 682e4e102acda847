// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/interview-odds/internal/types"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MATCH_LLM_MODEL.
const EnvPrefix = "MATCH"

// Config is the full application configuration. Every field has a default.
type Config struct {
	DatabaseURL string         `mapstructure:"database-url"`
	Redis       RedisConfig    `mapstructure:"redis"`
	LLM         LLMConfig      `mapstructure:"llm"`
	Matching    MatchingConfig `mapstructure:"matching"`
	Learning    LearningConfig `mapstructure:"learning"`
	Log         LogConfig      `mapstructure:"log"`
	Tiers       []TierConfig   `mapstructure:"tiers"`
}

// RedisConfig configures the explanation cache. An empty address keeps the cache in memory.
type RedisConfig struct {
	Addr string        `mapstructure:"addr"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// LLMConfig configures the text completion provider. Without an API key, explanations are rule-based.
type LLMConfig struct {
	APIKey      string        `mapstructure:"api-key"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
}

type MatchingConfig struct {
	MaxConcurrency int `mapstructure:"max-concurrency"`
	TopK           int `mapstructure:"top-k"`
}

type LearningConfig struct {
	ValidationSplit      float64 `mapstructure:"validation-split"`
	MinNewSamples        int     `mapstructure:"min-new-samples"`
	MaxDaysSinceTraining int     `mapstructure:"max-days-since-training"`
	Seed                 int64   `mapstructure:"seed"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// TierConfig is one configured subscription tier.
type TierConfig struct {
	Name      string   `mapstructure:"name"`
	Threshold float64  `mapstructure:"threshold"`
	Review    bool     `mapstructure:"review"`
	Features  []string `mapstructure:"features"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database-url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", 24*time.Hour)
	v.SetDefault("llm.api-key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout", 10*time.Second)
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("matching.max-concurrency", 4)
	v.SetDefault("matching.top-k", 10)
	v.SetDefault("learning.validation-split", 0.2)
	v.SetDefault("learning.min-new-samples", 100)
	v.SetDefault("learning.max-days-since-training", 30)
	v.SetDefault("learning.seed", 42)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("tiers", defaultTiers())
}

func defaultTiers() []map[string]any {
	tiers := types.DefaultTiers()
	out := make([]map[string]any, 0, len(tiers))
	for _, name := range tiers.Names() {
		tier := tiers[name]
		out = append(out, map[string]any{
			"name":      tier.Name,
			"threshold": tier.Threshold,
			"review":    tier.Review,
			"features":  tier.Features,
		})
	}
	return out
}

// Load reads configuration from path (YAML, JSON or TOML by extension; optional) and the environment.
// Environment variables use the MATCH_ prefix with dashes and dots replaced by underscores;
// DATABASE_URL, REDIS_ADDR and GEMINI_API_KEY are honoured as well.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	bindings := map[string][]string{
		"database-url": {"MATCH_DATABASE_URL", "DATABASE_URL"},
		"redis.addr":   {"MATCH_REDIS_ADDR", "REDIS_ADDR"},
		"llm.api-key":  {"MATCH_LLM_API_KEY", "GEMINI_API_KEY"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Learning.ValidationSplit <= 0 || c.Learning.ValidationSplit >= 1 {
		return fmt.Errorf("config error: 'learning.validation-split' must be between 0 and 1 (exclusive)")
	}
	if c.Learning.MinNewSamples < 0 {
		return fmt.Errorf("config error: 'learning.min-new-samples' must be non-negative")
	}
	if c.Learning.MaxDaysSinceTraining <= 0 {
		return fmt.Errorf("config error: 'learning.max-days-since-training' must be positive")
	}
	if c.Matching.MaxConcurrency <= 0 {
		return fmt.Errorf("config error: 'matching.max-concurrency' must be positive")
	}
	if c.Matching.TopK <= 0 {
		return fmt.Errorf("config error: 'matching.top-k' must be positive")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("config error: 'llm.timeout' must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("config error: 'llm.temperature' must be between 0 and 2")
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("config error: at least one tier is required")
	}

	seen := make(map[string]bool, len(c.Tiers))
	for _, tier := range c.Tiers {
		name := strings.TrimSpace(tier.Name)
		if name == "" {
			return fmt.Errorf("config error: tier name is required")
		}
		if seen[name] {
			return fmt.Errorf("config error: duplicate tier %q", name)
		}
		seen[name] = true
		if tier.Threshold < 0 || tier.Threshold > 1 {
			return fmt.Errorf("config error: tier %q threshold must be between 0 and 1", name)
		}
	}
	return nil
}

// TierTable converts the configured tiers for the matcher.
func (c *Config) TierTable() types.TierTable {
	table := make(types.TierTable, len(c.Tiers))
	for _, tier := range c.Tiers {
		name := strings.TrimSpace(tier.Name)
		table[name] = types.Tier{
			Name:      name,
			Threshold: tier.Threshold,
			Review:    tier.Review,
			Features:  append([]string(nil), tier.Features...),
		}
	}
	return table
}
