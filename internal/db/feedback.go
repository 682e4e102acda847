package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonathan/interview-odds/internal/types"
)

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// CreateFeedback stores a feedback record. The referenced match must exist.
func (db *DB) CreateFeedback(ctx context.Context, f *types.MatchFeedback) error {
	return insertFeedback(ctx, db.pool, f)
}

// RecordFeedback stores a feedback record and its training point in one transaction.
// Either both rows are written or neither is.
func (db *DB) RecordFeedback(ctx context.Context, f *types.MatchFeedback, p *types.TrainingDataPoint) error {
	if err := checkFeedbackPoint(f, p); err != nil {
		return err
	}

	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin feedback transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertFeedback(ctx, tx, f); err != nil {
		return err
	}
	if err := insertTrainingPoint(ctx, tx, p); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit feedback: %w", err)
	}
	return nil
}

// checkFeedbackPoint rejects a training point that does not belong to the feedback record.
func checkFeedbackPoint(f *types.MatchFeedback, p *types.TrainingDataPoint) error {
	if f == nil || p == nil {
		return fmt.Errorf("feedback and training point are both required")
	}
	if p.FeedbackID != f.ID || p.MatchID != f.MatchID {
		return fmt.Errorf("training point (feedback %s, match %s) does not belong to feedback %s of match %s",
			p.FeedbackID, p.MatchID, f.ID, f.MatchID)
	}
	return nil
}

func insertFeedback(ctx context.Context, q execer, f *types.MatchFeedback) error {
	_, err := q.Exec(ctx,
		`INSERT INTO match_feedback (id, match_id, outcome, applied_at, response_at, days_to_response,
		        interview_rounds, user_rating, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		f.ID, f.MatchID, string(f.Outcome), f.AppliedAt, f.ResponseAt, f.DaysToResponse,
		f.InterviewRounds, f.UserRating, f.Notes, f.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("feedback %s: %w", f.ID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetFeedback retrieves a feedback record by ID. It returns (nil, nil) when no row exists.
func (db *DB) GetFeedback(ctx context.Context, id uuid.UUID) (*types.MatchFeedback, error) {
	var f types.MatchFeedback
	var outcome string

	err := db.pool.QueryRow(ctx,
		`SELECT id, match_id, outcome, applied_at, response_at, days_to_response,
		        interview_rounds, user_rating, notes, created_at
		 FROM match_feedback WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.MatchID, &outcome, &f.AppliedAt, &f.ResponseAt, &f.DaysToResponse,
		&f.InterviewRounds, &f.UserRating, &f.Notes, &f.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	f.Outcome = types.Outcome(outcome)
	return &f, nil
}

// AppendTrainingPoint adds a point to the training corpus.
func (db *DB) AppendTrainingPoint(ctx context.Context, p *types.TrainingDataPoint) error {
	return insertTrainingPoint(ctx, db.pool, p)
}

func insertTrainingPoint(ctx context.Context, q execer, p *types.TrainingDataPoint) error {
	pointJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal training point: %w", err)
	}

	var feedbackID, matchID *uuid.UUID
	if p.FeedbackID != uuid.Nil {
		feedbackID = &p.FeedbackID
	}
	if p.MatchID != uuid.Nil {
		matchID = &p.MatchID
	}

	_, err = q.Exec(ctx,
		`INSERT INTO training_points (feedback_id, match_id, point, created_at)
		 VALUES ($1, $2, $3, $4)`,
		feedbackID, matchID, pointJSON, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append training point: %w", err)
	}
	return nil
}

// ListTrainingPoints returns the whole training corpus in insertion order.
func (db *DB) ListTrainingPoints(ctx context.Context) ([]types.TrainingDataPoint, error) {
	rows, err := db.pool.Query(ctx, `SELECT point FROM training_points ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list training points: %w", err)
	}
	defer rows.Close()

	var points []types.TrainingDataPoint
	for rows.Next() {
		var pointJSON []byte
		if err := rows.Scan(&pointJSON); err != nil {
			return nil, fmt.Errorf("failed to scan training point: %w", err)
		}
		var p types.TrainingDataPoint
		if err := json.Unmarshal(pointJSON, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal training point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate training points: %w", err)
	}
	return points, nil
}
