package matching

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/types"
	"go.uber.org/zap"
)

// Training weights decay linearly over a year down to a floor.
const (
	weightDecayDays = 365.0
	minWeight       = 0.5
	hoursPerDay     = 24.0
)

// RecordFeedback stores a reported outcome for a match and appends the matching training point.
func (m *Matcher) RecordFeedback(ctx context.Context, req *types.FeedbackRequest) (*types.MatchFeedback, error) {
	if req == nil {
		return nil, &ValidationError{Message: "request is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, fromValidator(err)
	}
	outcome, ok := types.ParseOutcome(req.Outcome)
	if !ok {
		return nil, &ValidationError{Field: "outcome", Message: fmt.Sprintf("unknown outcome %q", req.Outcome)}
	}

	var daysToResponse *int
	if req.AppliedAt != nil && req.ResponseAt != nil {
		if req.ResponseAt.Before(*req.AppliedAt) {
			return nil, &ValidationError{Field: "response_at", Message: "response precedes application"}
		}
		days := int(req.ResponseAt.Sub(*req.AppliedAt).Hours() / hoursPerDay)
		daysToResponse = &days
	}

	match, md, err := m.loadMatch(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	now := m.now().UTC()
	feedback := &types.MatchFeedback{
		ID:              uuid.New(),
		MatchID:         match.ID,
		Outcome:         outcome,
		AppliedAt:       req.AppliedAt,
		ResponseAt:      req.ResponseAt,
		DaysToResponse:  daysToResponse,
		InterviewRounds: req.InterviewRounds,
		UserRating:      req.UserRating,
		Notes:           req.Notes,
		CreatedAt:       now,
	}
	point := trainingPoint(match, md)
	point.FeedbackID = feedback.ID
	point.OutcomeScore = outcome.Score()
	point.Weight = feedbackWeight(feedbackAge(match, req, now))
	point.CreatedAt = now
	if err := m.store.RecordFeedback(ctx, feedback, &point); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	if observer, ok := m.estimator.(sampleObserver); ok {
		observer.ObserveSamples(1)
	}

	m.logger.Info("recorded feedback",
		zap.String("match_id", match.ID.String()),
		zap.String("outcome", string(outcome)),
		zap.Float64("weight", point.Weight))
	return feedback, nil
}

// feedbackAge measures from the application date when known, else from when the match was scored.
func feedbackAge(match *types.MatchResult, req *types.FeedbackRequest, now time.Time) time.Duration {
	start := match.CreatedAt
	if req.AppliedAt != nil {
		start = *req.AppliedAt
	}
	return now.Sub(start)
}

// feedbackWeight is max(0.5, 1 - days/365). Future-dated feedback counts as fresh.
func feedbackWeight(age time.Duration) float64 {
	days := math.Max(0, age.Hours()/hoursPerDay)
	return math.Max(minWeight, 1-days/weightDecayDays)
}
