package matching

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/types"
)

// Store persists match results, feedback and training points. Records are created once and never
// updated. Getters return (nil, nil) when the record does not exist.
type Store interface {
	CreateMatch(ctx context.Context, match *types.MatchResult) error
	GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchResult, error)
	// RecordFeedback stores a feedback record together with its training point. Either both are
	// stored or neither is.
	RecordFeedback(ctx context.Context, feedback *types.MatchFeedback, point *types.TrainingDataPoint) error
	GetFeedback(ctx context.Context, id uuid.UUID) (*types.MatchFeedback, error)
	ListTrainingPoints(ctx context.Context) ([]types.TrainingDataPoint, error)
}

// ExplanationCache holds generated explanations. Get returns (nil, nil) on a miss.
type ExplanationCache interface {
	Get(ctx context.Context, matchID uuid.UUID) (*types.MatchExplanation, error)
	Set(ctx context.Context, explanation *types.MatchExplanation) error
}

// ProfileParser turns candidate sources into a profile.
type ProfileParser interface {
	ParseProfile(sources types.ProfileSources) *types.Profile
}

// Estimator is a learned interview-probability model.
type Estimator interface {
	Trained() bool
	PredictProbability(features map[string]float64) float64
}

// confidenceReporter is implemented by estimators that can score their own agreement on a prediction.
type confidenceReporter interface {
	PredictionConfidence(features map[string]float64) float64
}

// sampleObserver is implemented by estimators that track new training samples between runs.
type sampleObserver interface {
	ObserveSamples(n int)
}
