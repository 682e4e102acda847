// Package db provides PostgreSQL and in-memory storage for match results, feedback and training data.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicate is returned when a record with the same id already exists. Records are create-once.
var ErrDuplicate = errors.New("record already exists")

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS match_results (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		job_id TEXT NOT NULL DEFAULT '',
		interview_probability DOUBLE PRECISION NOT NULL,
		offer_probability DOUBLE PRECISION NOT NULL,
		overall_score DOUBLE PRECISION NOT NULL,
		components JSONB NOT NULL,
		critical_gaps JSONB NOT NULL DEFAULT '[]',
		minor_gaps JSONB NOT NULL DEFAULT '[]',
		strengths JSONB NOT NULL DEFAULT '[]',
		subscription_tier TEXT NOT NULL,
		threshold_met BOOLEAN NOT NULL,
		requires_human_review BOOLEAN NOT NULL,
		metadata JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_results_user ON match_results (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS match_feedback (
		id UUID PRIMARY KEY,
		match_id UUID NOT NULL REFERENCES match_results (id),
		outcome TEXT NOT NULL CHECK (outcome IN ('rejected', 'interview', 'offer', 'accepted', 'declined')),
		applied_at TIMESTAMPTZ,
		response_at TIMESTAMPTZ,
		days_to_response INTEGER,
		interview_rounds INTEGER,
		user_rating INTEGER CHECK (user_rating BETWEEN 1 AND 5),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_feedback_match ON match_feedback (match_id)`,
	`CREATE TABLE IF NOT EXISTS training_points (
		seq BIGSERIAL PRIMARY KEY,
		feedback_id UUID,
		match_id UUID,
		point JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the tables if they do not exist. It is safe to run repeatedly.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}
