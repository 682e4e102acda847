// Package matching implements the probability matcher: it scores candidates against jobs, applies
// subscription-tier thresholds, explains results and turns reported outcomes into training data.
package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/db"
	"github.com/jonathan/interview-odds/internal/llm"
	"github.com/jonathan/interview-odds/internal/parsing"
	"github.com/jonathan/interview-odds/internal/ranking"
	"github.com/jonathan/interview-odds/internal/types"
	"go.uber.org/zap"
)

// Default matcher settings.
const (
	DefaultCompletionTimeout = 10 * time.Second
	DefaultTemperature       = 0.3
	DefaultMaxConcurrency    = 4
)

// Options configures a Matcher. Zero values fall back to defaults.
type Options struct {
	Tiers     types.TierTable
	Parser    ProfileParser
	Store     Store
	Cache     ExplanationCache
	Completer llm.Completer
	Estimator Estimator
	Logger    *zap.Logger
	Now       func() time.Time

	CompletionTimeout time.Duration
	Temperature       float64
	MaxConcurrency    int
}

// Matcher is the probability matcher service. It is safe for concurrent use.
type Matcher struct {
	tiers     types.TierTable
	parser    ProfileParser
	store     Store
	cache     ExplanationCache
	completer llm.Completer
	estimator Estimator
	logger    *zap.Logger
	now       func() time.Time

	completionTimeout time.Duration
	temperature       float64
	maxConcurrency    int
}

// NewMatcher creates a Matcher from opts.
func NewMatcher(opts Options) *Matcher {
	m := &Matcher{
		tiers:             opts.Tiers,
		parser:            opts.Parser,
		store:             opts.Store,
		cache:             opts.Cache,
		completer:         opts.Completer,
		estimator:         opts.Estimator,
		logger:            opts.Logger,
		now:               opts.Now,
		completionTimeout: opts.CompletionTimeout,
		temperature:       opts.Temperature,
		maxConcurrency:    opts.MaxConcurrency,
	}
	if m.tiers == nil {
		m.tiers = types.DefaultTiers()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.parser == nil {
		m.parser = &parsing.HeuristicParser{Now: m.now}
	}
	if m.store == nil {
		m.store = db.NewMemoryStore()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.completionTimeout <= 0 {
		m.completionTimeout = DefaultCompletionTimeout
	}
	if m.temperature <= 0 {
		m.temperature = DefaultTemperature
	}
	if m.maxConcurrency <= 0 {
		m.maxConcurrency = DefaultMaxConcurrency
	}
	return m
}

// Tiers returns the subscription tier table the matcher applies.
func (m *Matcher) Tiers() types.TierTable {
	return m.tiers
}

// CalculateProbability parses the candidate sources, scores them against the job, applies the tier
// threshold and persists the result. An unknown tier fails before any scoring work.
func (m *Matcher) CalculateProbability(ctx context.Context, req *types.ScoreRequest) (*types.MatchResult, error) {
	if req == nil {
		return nil, &ValidationError{Message: "request is required"}
	}
	tier, err := m.lookupTier(req.SubscriptionTier)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fromValidator(err)
	}

	profile := m.parser.ParseProfile(req.Sources)
	return m.score(ctx, req.UserID, req.Job, profile, tier)
}

func (m *Matcher) lookupTier(name string) (types.Tier, error) {
	tier, ok := m.tiers.Lookup(name)
	if !ok {
		return types.Tier{}, &ValidationError{
			Field:   "subscription_tier",
			Message: fmt.Sprintf("unknown subscription tier %q", name),
		}
	}
	return tier, nil
}

// score assesses an already parsed profile and stores the result.
func (m *Matcher) score(
	ctx context.Context,
	userID string,
	job *types.JobRequirements,
	profile *types.Profile,
	tier types.Tier,
) (*types.MatchResult, error) {
	now := m.now()
	assessment := ranking.Assess(profile, job, now)

	metadata := buildMetadata(profile, job, assessment)
	if m.estimator != nil && m.estimator.Trained() {
		raw := features(profile, job, assessment)
		metadata[types.MetaLearnedProbability] = m.estimator.PredictProbability(raw)
		if reporter, ok := m.estimator.(confidenceReporter); ok {
			metadata[types.MetaLearnedConfidence] = reporter.PredictionConfidence(raw)
		}
	}

	probability := assessment.InterviewProbability
	result := &types.MatchResult{
		ID:                   uuid.New(),
		UserID:               userID,
		JobID:                job.ID,
		InterviewProbability: probability,
		OfferProbability:     assessment.OfferProbability,
		OverallScore:         assessment.OverallScore,
		Components:           assessment.Components,
		CriticalGaps:         nonNil(assessment.CriticalGaps),
		MinorGaps:            nonNil(assessment.MinorGaps),
		Strengths:            nonNil(assessment.Strengths),
		SubscriptionTier:     tier.Name,
		ThresholdMet:         probability >= tier.Threshold,
		RequiresHumanReview:  tier.Review && probability >= types.ReviewFloor && probability < tier.Threshold,
		Metadata:             metadata,
		CreatedAt:            now.UTC(),
	}

	if err := m.store.CreateMatch(ctx, result); err != nil {
		m.logger.Error("failed to store match result",
			zap.String("match_id", result.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to store match result: %w", err)
	}

	m.logger.Debug("scored match",
		zap.String("match_id", result.ID.String()),
		zap.String("job_id", job.ID),
		zap.Float64("interview_probability", probability),
		zap.Bool("threshold_met", result.ThresholdMet))
	return result, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return append([]string(nil), values...)
}

// loadMatch fetches a stored match, converting a miss into NotFoundError.
func (m *Matcher) loadMatch(ctx context.Context, id uuid.UUID) (*types.MatchResult, *matchMetadata, error) {
	match, err := m.store.GetMatch(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load match %s: %w", id, err)
	}
	if match == nil {
		return nil, nil, &NotFoundError{Kind: "match", ID: id.String()}
	}

	md, err := decodeMetadata(match.Metadata)
	if err != nil {
		m.logger.Warn("unreadable match metadata",
			zap.String("match_id", id.String()),
			zap.Error(err))
		md = &matchMetadata{}
	}
	return match, md, nil
}
