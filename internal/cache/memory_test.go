package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour)
	id := uuid.New()

	got, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, &types.MatchExplanation{MatchID: id, Summary: "Strong match"}))

	got, err = c.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Strong match", got.Summary)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	id := uuid.New()
	require.NoError(t, c.Set(ctx, &types.MatchExplanation{MatchID: id}))

	clock = clock.Add(30 * time.Second)
	got, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, got)

	clock = clock.Add(time.Minute)
	got, err = c.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, c.Len())
}

func TestNewMemory_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewMemory(0).ttl)
}

func TestNewRedis_RequiresAddr(t *testing.T) {
	_, err := NewRedis(context.Background(), "", time.Minute)
	assert.Error(t, err)
}
