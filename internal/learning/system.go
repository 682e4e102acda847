// Package learning maintains the ensemble that learns interview odds from reported application outcomes.
package learning

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonathan/interview-odds/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Defaults applied by NewSystem.
const (
	DefaultValidationSplit      = 0.2
	DefaultSeed                 = 42
	DefaultMinNewSamples        = 100
	DefaultMaxDaysSinceTraining = 30

	neutralProbability = 0.5
	varianceScale      = 10.0
)

// Options configures a System.
type Options struct {
	ValidationSplit float64
	Seed            int64
	Now             func() time.Time
	Logger          *zap.Logger
}

// System trains and serves an ensemble of gradient-boosted trees, a random forest and a logistic
// regression. Each successful training run publishes a new model generation atomically; predictions
// always see a complete generation and are never blocked by training.
type System struct {
	opts   Options
	logger *zap.Logger

	current atomic.Pointer[generation]
	pending atomic.Int64

	trainMu   sync.Mutex
	historyMu sync.RWMutex
	history   []types.TrainingMetrics
}

// generation is an immutable fitted scaler and ensemble.
type generation struct {
	scaler    *standardScaler
	members   []classifier
	trainedAt time.Time
}

// NewSystem creates an untrained system.
func NewSystem(opts Options) *System {
	if opts.ValidationSplit <= 0 || opts.ValidationSplit >= 1 {
		opts.ValidationSplit = DefaultValidationSplit
	}
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{opts: opts, logger: logger}
}

// Train fits a new generation on points, evaluates it on a stratified hold-out split and publishes it.
func (s *System) Train(ctx context.Context, points []types.TrainingDataPoint) (*types.TrainingMetrics, error) {
	s.trainMu.Lock()
	defer s.trainMu.Unlock()

	features, targets, weights, err := PrepareTrainingData(points)
	if err != nil {
		return nil, err
	}
	labels := binarize(targets)

	rng := rand.New(rand.NewSource(s.opts.Seed))
	trainIdx, validIdx := stratifiedSplit(labels, s.opts.ValidationSplit, rng)
	trainX, trainY, trainW := subset(features, labels, weights, trainIdx)
	validX, validTargets, _ := subset(features, targets, weights, validIdx)

	s.logger.Info("Training ensemble",
		zap.Int("training_samples", len(trainIdx)),
		zap.Int("validation_samples", len(validIdx)))

	scaler := fitScaler(trainX)
	scaledTrain := scaler.transformAll(trainX)

	members := []classifier{
		newGradientBoosting(),
		newRandomForest(rand.New(rand.NewSource(s.opts.Seed + 1))),
		newLogisticRegression(),
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, member := range members {
		member := member
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := member.fit(scaledTrain, trainY, trainW); err != nil {
				return fmt.Errorf("%T: %w", member, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &TrainingError{Message: "failed to fit ensemble", Cause: err}
	}

	gen := &generation{scaler: scaler, members: members, trainedAt: s.opts.Now()}

	probabilities := make([]float64, len(validX))
	for i, row := range validX {
		probabilities[i] = gen.predict(row)
	}
	metrics := evaluate(probabilities, validTargets)
	metrics.TrainingSamples = len(trainIdx)
	metrics.TrainedAt = gen.trainedAt

	var reporters []importanceReporter
	for _, member := range members {
		if r, ok := member.(importanceReporter); ok {
			reporters = append(reporters, r)
		}
	}
	metrics.FeatureImportance = topImportances(reporters)

	s.current.Store(gen)
	s.pending.Store(0)

	s.historyMu.Lock()
	s.history = append(s.history, metrics)
	s.historyMu.Unlock()

	s.logger.Info("Training complete",
		zap.Float64("accuracy", metrics.Accuracy),
		zap.Float64("auc", metrics.AUC),
		zap.Float64("brier_score", metrics.BrierScore),
		zap.Float64("calibration_error", metrics.CalibrationError))

	return &metrics, nil
}

// IncrementalUpdate retrains from scratch on the supplied points only; prior generations are discarded.
func (s *System) IncrementalUpdate(ctx context.Context, points []types.TrainingDataPoint) (*types.TrainingMetrics, error) {
	if s.Trained() {
		s.logger.Debug("Incremental update retrains on the new batch only", zap.Int("points", len(points)))
	}
	return s.Train(ctx, points)
}

// PredictProbability returns the mean positive-class probability of the ensemble, or 0.5 when untrained.
// Missing features take neutral defaults.
func (s *System) PredictProbability(features map[string]float64) float64 {
	gen := s.current.Load()
	if gen == nil {
		return neutralProbability
	}
	return gen.predict(featureVector(features))
}

// PredictionConfidence converts ensemble disagreement into a confidence: 1 - min(variance x 10, 1).
// An untrained system has no confidence.
func (s *System) PredictionConfidence(features map[string]float64) float64 {
	gen := s.current.Load()
	if gen == nil {
		return 0
	}
	predictions := gen.memberPredictions(featureVector(features))
	_, variance := stat.PopMeanVariance(predictions, nil)
	return 1 - math.Min(variance*varianceScale, 1)
}

// ShouldRetrain reports whether a new training run is due: never trained, the last run is at least
// maxDaysSinceTraining days old, or at least minNewSamples samples were observed since.
// A non-positive minNewSamples disables the sample trigger.
func (s *System) ShouldRetrain(minNewSamples, maxDaysSinceTraining int) bool {
	gen := s.current.Load()
	if gen == nil {
		return true
	}
	days := s.opts.Now().Sub(gen.trainedAt).Hours() / 24
	if days >= float64(maxDaysSinceTraining) {
		return true
	}
	return minNewSamples > 0 && s.pending.Load() >= int64(minNewSamples)
}

// ObserveSamples records n new training points collected since the last training run.
func (s *System) ObserveSamples(n int) {
	s.pending.Add(int64(n))
}

// Trained reports whether a generation has been published.
func (s *System) Trained() bool {
	return s.current.Load() != nil
}

// LastTrained returns when the current generation was trained (zero if untrained).
func (s *System) LastTrained() time.Time {
	if gen := s.current.Load(); gen != nil {
		return gen.trainedAt
	}
	return time.Time{}
}

// History returns a copy of every training run's metrics, oldest first.
func (s *System) History() []types.TrainingMetrics {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()
	out := make([]types.TrainingMetrics, len(s.history))
	copy(out, s.history)
	return out
}

func (g *generation) memberPredictions(vector []float64) []float64 {
	scaled := g.scaler.transform(vector)
	predictions := make([]float64, len(g.members))
	for i, member := range g.members {
		predictions[i] = math.Max(0, math.Min(1, member.predictProba(scaled)))
	}
	return predictions
}

func (g *generation) predict(vector []float64) float64 {
	return stat.Mean(g.memberPredictions(vector), nil)
}
