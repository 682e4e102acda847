package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonathan/interview-odds/internal/types"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CreateMatch stores a match result. Storing the same id twice fails with ErrDuplicate.
func (db *DB) CreateMatch(ctx context.Context, m *types.MatchResult) error {
	componentsJSON, err := json.Marshal(m.Components)
	if err != nil {
		return fmt.Errorf("failed to marshal components: %w", err)
	}
	criticalJSON, err := json.Marshal(m.CriticalGaps)
	if err != nil {
		return fmt.Errorf("failed to marshal critical gaps: %w", err)
	}
	minorJSON, err := json.Marshal(m.MinorGaps)
	if err != nil {
		return fmt.Errorf("failed to marshal minor gaps: %w", err)
	}
	strengthsJSON, err := json.Marshal(m.Strengths)
	if err != nil {
		return fmt.Errorf("failed to marshal strengths: %w", err)
	}
	metadataJSON, err := json.Marshal(m.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results (id, user_id, job_id, interview_probability, offer_probability,
		        overall_score, components, critical_gaps, minor_gaps, strengths, subscription_tier,
		        threshold_met, requires_human_review, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.ID, m.UserID, m.JobID, m.InterviewProbability, m.OfferProbability,
		m.OverallScore, componentsJSON, criticalJSON, minorJSON, strengthsJSON, m.SubscriptionTier,
		m.ThresholdMet, m.RequiresHumanReview, metadataJSON, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("match %s: %w", m.ID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match result by ID. It returns (nil, nil) when no row exists.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchResult, error) {
	var m types.MatchResult
	var componentsJSON, criticalJSON, minorJSON, strengthsJSON, metadataJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, interview_probability, offer_probability, overall_score,
		        components, critical_gaps, minor_gaps, strengths, subscription_tier,
		        threshold_met, requires_human_review, metadata, created_at
		 FROM match_results WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.UserID, &m.JobID, &m.InterviewProbability, &m.OfferProbability, &m.OverallScore,
		&componentsJSON, &criticalJSON, &minorJSON, &strengthsJSON, &m.SubscriptionTier,
		&m.ThresholdMet, &m.RequiresHumanReview, &metadataJSON, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	// Parse JSONB fields
	if err := json.Unmarshal(componentsJSON, &m.Components); err != nil {
		return nil, fmt.Errorf("failed to unmarshal components: %w", err)
	}
	_ = json.Unmarshal(criticalJSON, &m.CriticalGaps)
	_ = json.Unmarshal(minorJSON, &m.MinorGaps)
	_ = json.Unmarshal(strengthsJSON, &m.Strengths)
	if metadataJSON != nil {
		_ = json.Unmarshal(metadataJSON, &m.Metadata)
	}

	return &m, nil
}
