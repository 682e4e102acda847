//go:build integration

package db

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func cleanupMatch(t *testing.T, db *DB, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	_, _ = db.pool.Exec(ctx, "DELETE FROM training_points WHERE match_id = $1", id)
	_, _ = db.pool.Exec(ctx, "DELETE FROM match_feedback WHERE match_id = $1", id)
	_, _ = db.pool.Exec(ctx, "DELETE FROM match_results WHERE id = $1", id)
}

func TestIntegration_Migrate_Idempotent(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	require.NoError(t, db.Migrate(context.Background()))
}

func TestIntegration_Match_CreateAndGet(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	m := sampleMatch()
	defer cleanupMatch(t, db, m.ID)

	require.NoError(t, db.CreateMatch(ctx, m))
	assert.ErrorIs(t, db.CreateMatch(ctx, m), ErrDuplicate)

	got, err := db.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.UserID, got.UserID)
	assert.Equal(t, m.Components, got.Components)
	assert.Equal(t, m.CriticalGaps, got.CriticalGaps)
	assert.Equal(t, 0.5, got.Metadata[types.MetaSkillOverlap])
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))

	missing, err := db.GetMatch(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_FeedbackAndTrainingPoints(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	m := sampleMatch()
	defer cleanupMatch(t, db, m.ID)
	require.NoError(t, db.CreateMatch(ctx, m))

	applied := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	days := 5
	f := &types.MatchFeedback{
		ID:             uuid.New(),
		MatchID:        m.ID,
		Outcome:        types.OutcomeInterview,
		AppliedAt:      &applied,
		DaysToResponse: &days,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, db.CreateFeedback(ctx, f))

	got, err := db.GetFeedback(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, types.OutcomeInterview, got.Outcome)
	require.NotNil(t, got.DaysToResponse)
	assert.Equal(t, 5, *got.DaysToResponse)
	assert.Nil(t, got.UserRating)

	before, err := db.ListTrainingPoints(ctx)
	require.NoError(t, err)

	point := &types.TrainingDataPoint{FeedbackID: f.ID, MatchID: m.ID, SkillOverlap: 0.7, OutcomeScore: 0.5, Weight: 1}
	require.NoError(t, db.AppendTrainingPoint(ctx, point))

	after, err := db.ListTrainingPoints(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, 0.7, after[len(after)-1].SkillOverlap)
}

func TestIntegration_RecordFeedback_RollsBack(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	m := sampleMatch()
	defer cleanupMatch(t, db, m.ID)
	require.NoError(t, db.CreateMatch(ctx, m))

	before, err := db.ListTrainingPoints(ctx)
	require.NoError(t, err)

	f := &types.MatchFeedback{ID: uuid.New(), MatchID: m.ID, Outcome: types.OutcomeOffer, CreatedAt: time.Now().UTC()}
	require.NoError(t, db.RecordFeedback(ctx, f, &types.TrainingDataPoint{FeedbackID: f.ID, MatchID: m.ID, OutcomeScore: 1, Weight: 1}))

	// The feedback row is written before the point fails to encode, so the transaction must undo it.
	broken := &types.MatchFeedback{ID: uuid.New(), MatchID: m.ID, Outcome: types.OutcomeRejected, CreatedAt: time.Now().UTC()}
	err = db.RecordFeedback(ctx, broken, &types.TrainingDataPoint{FeedbackID: broken.ID, MatchID: m.ID, SkillOverlap: math.NaN()})
	require.Error(t, err)

	got, err := db.GetFeedback(ctx, broken.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = db.RecordFeedback(ctx, f, &types.TrainingDataPoint{FeedbackID: f.ID, MatchID: m.ID})
	assert.ErrorIs(t, err, ErrDuplicate)

	after, err := db.ListTrainingPoints(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}
