// Package cache holds generated match explanations in memory or in Redis.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/types"
)

// DefaultTTL is how long an explanation stays cached when no TTL is configured.
const DefaultTTL = 24 * time.Hour

type memoryEntry struct {
	explanation types.MatchExplanation
	expiresAt   time.Time
}

// Memory is an in-process explanation cache with per-entry expiry.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]memoryEntry
}

// NewMemory creates an in-process cache. ttl <= 0 uses DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

// Get returns the cached explanation, or (nil, nil) on a miss or after expiry.
func (c *Memory) Get(_ context.Context, matchID uuid.UUID) (*types.MatchExplanation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[matchID]
	if !ok {
		return nil, nil
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, matchID)
		return nil, nil
	}
	out := entry.explanation
	return &out, nil
}

// Set stores explanation under its match id.
func (c *Memory) Set(_ context.Context, explanation *types.MatchExplanation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[explanation.MatchID] = memoryEntry{
		explanation: *explanation,
		expiresAt:   c.now().Add(c.ttl),
	}
	return nil
}

// Len returns the number of entries, expired ones included.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
