package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/types"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "interview-odds:explanation:"

// Redis stores explanations as JSON values with a TTL.
type Redis struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedis connects to addr and verifies the connection. ttl <= 0 uses DefaultTTL.
func NewRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func explanationKey(matchID uuid.UUID) string {
	return keyPrefix + matchID.String()
}

// Get returns the cached explanation, or (nil, nil) on a miss.
func (c *Redis) Get(ctx context.Context, matchID uuid.UUID) (*types.MatchExplanation, error) {
	raw, err := c.rdb.Get(ctx, explanationKey(matchID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var explanation types.MatchExplanation
	if err := json.Unmarshal(raw, &explanation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached explanation: %w", err)
	}
	return &explanation, nil
}

// Set stores explanation under its match id with the configured TTL.
func (c *Redis) Set(ctx context.Context, explanation *types.MatchExplanation) error {
	raw, err := json.Marshal(explanation)
	if err != nil {
		return fmt.Errorf("failed to marshal explanation: %w", err)
	}
	if err := c.rdb.Set(ctx, explanationKey(explanation.MatchID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (c *Redis) Close() error {
	return c.rdb.Close()
}
