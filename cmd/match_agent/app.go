package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/interview-odds/internal/cache"
	"github.com/jonathan/interview-odds/internal/config"
	"github.com/jonathan/interview-odds/internal/db"
	"github.com/jonathan/interview-odds/internal/learning"
	"github.com/jonathan/interview-odds/internal/llm"
	"github.com/jonathan/interview-odds/internal/logger"
	"github.com/jonathan/interview-odds/internal/matching"
	"github.com/jonathan/interview-odds/internal/observability"
	"go.uber.org/zap"
)

// app holds the wired services for one command invocation.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   matching.Store
	durable bool
	learner *learning.System
	matcher *matching.Matcher
	printer *observability.Printer
	closers []func()
}

type appOptions struct {
	// learned trains the estimator from stored feedback before scoring.
	learned bool
}

func newApp(ctx context.Context, opts appOptions) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debugLog {
		cfg.Log.Debug = true
	}
	if jsonLog {
		cfg.Log.JSON = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	a := &app{cfg: cfg, logger: log, printer: observability.NewPrinter(os.Stderr)}
	a.closers = append(a.closers, func() { _ = log.Sync() })

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, database.Close)
		if err := database.Migrate(ctx); err != nil {
			a.Close()
			return nil, err
		}
		a.store = database
		a.durable = true
	} else {
		log.Debug("no database configured, using in-memory store")
		a.store = db.NewMemoryStore()
	}

	var explanations matching.ExplanationCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.TTL)
		if err != nil {
			log.Warn("redis unavailable, caching explanations in memory", zap.Error(err))
			explanations = cache.NewMemory(cfg.Redis.TTL)
		} else {
			a.closers = append(a.closers, func() { _ = redisCache.Close() })
			explanations = redisCache
		}
	} else {
		explanations = cache.NewMemory(cfg.Redis.TTL)
	}

	var completer llm.Completer
	if cfg.LLM.APIKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.LLM.Model != "" {
			llmConfig = llmConfig.WithModel(llmConfig.Tier, cfg.LLM.Model)
		}
		llmConfig.Timeout = cfg.LLM.Timeout
		client, err := llm.NewCompleter(ctx, llmConfig, cfg.LLM.APIKey)
		if err != nil {
			log.Warn("completion provider unavailable, explanations will be rule-based", zap.Error(err))
		} else {
			a.closers = append(a.closers, func() { _ = client.Close() })
			completer = client
		}
	}

	a.learner = learning.NewSystem(learning.Options{
		ValidationSplit: cfg.Learning.ValidationSplit,
		Seed:            cfg.Learning.Seed,
		Logger:          logger.Named(log, "learning"),
	})
	var estimator matching.Estimator
	if opts.learned && a.learner.ShouldRetrain(cfg.Learning.MinNewSamples, cfg.Learning.MaxDaysSinceTraining) {
		if err := a.trainFromStore(ctx); err != nil {
			log.Warn("learned estimator unavailable", zap.Error(err))
		} else {
			estimator = a.learner
		}
	}

	a.matcher = matching.NewMatcher(matching.Options{
		Tiers:             cfg.TierTable(),
		Store:             a.store,
		Cache:             explanations,
		Completer:         completer,
		Estimator:         estimator,
		Logger:            logger.Named(log, "matching"),
		CompletionTimeout: cfg.LLM.Timeout,
		Temperature:       cfg.LLM.Temperature,
		MaxConcurrency:    cfg.Matching.MaxConcurrency,
	})
	return a, nil
}

// trainFromStore fits the learner on every stored training point.
func (a *app) trainFromStore(ctx context.Context) error {
	points, err := a.store.ListTrainingPoints(ctx)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no training data recorded yet")
	}
	_, err = a.learner.Train(ctx, points)
	return err
}

// requireDurable rejects commands that need records from an earlier invocation.
func (a *app) requireDurable(command string) error {
	if !a.durable {
		return fmt.Errorf("%s needs a database: set database-url in the config or DATABASE_URL", command)
	}
	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
