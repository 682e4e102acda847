package learning

import (
	"github.com/jonathan/interview-odds/internal/types"
)

// Fixed feature normalization.
const (
	experienceYearsScale = 20.0
	seniorityGapOffset   = 2.0
	seniorityGapScale    = 4.0
	educationLevelScale  = 5.0

	// positiveOutcome binarizes outcome scores: interviews and better are positive.
	positiveOutcome = 0.25
)

// featureDefaults are the raw values assumed for features missing from a prediction request.
var featureDefaults = map[string]float64{
	types.FeatureSkillOverlap:              0.5,
	types.FeatureSkillDepth:                0.5,
	types.FeatureExperienceYears:           5,
	types.FeatureSeniorityGap:              0,
	types.FeatureIndustryMatch:             0,
	types.FeatureEducationLevel:            3,
	types.FeatureEducationMatch:            0,
	types.FeatureKeywordDensity:            0.5,
	types.FeatureRecentExperienceRelevance: 0.5,
	types.FeatureCompanySizeMatch:          0,
	types.FeatureLocationMatch:             0,
}

var booleanFeatures = map[string]bool{
	types.FeatureIndustryMatch:    true,
	types.FeatureEducationMatch:   true,
	types.FeatureCompanySizeMatch: true,
	types.FeatureLocationMatch:    true,
}

// PrepareTrainingData builds the normalized feature matrix, the outcome targets and the sample weights.
func PrepareTrainingData(points []types.TrainingDataPoint) ([][]float64, []float64, []float64, error) {
	if len(points) == 0 {
		return nil, nil, nil, &TrainingError{Message: "no training data points"}
	}

	features := make([][]float64, len(points))
	targets := make([]float64, len(points))
	weights := make([]float64, len(points))
	for i, point := range points {
		features[i] = featureVector(point.Features())
		targets[i] = point.OutcomeScore
		weights[i] = point.Weight
		if weights[i] <= 0 {
			weights[i] = 1
		}
	}
	return features, targets, weights, nil
}

// featureVector normalizes raw feature values into model column order, filling in defaults.
func featureVector(raw map[string]float64) []float64 {
	vector := make([]float64, len(types.FeatureNames))
	for i, name := range types.FeatureNames {
		value, ok := raw[name]
		if !ok {
			value = featureDefaults[name]
		}
		vector[i] = normalizeFeature(name, value)
	}
	return vector
}

func normalizeFeature(name string, value float64) float64 {
	switch {
	case name == types.FeatureExperienceYears:
		return value / experienceYearsScale
	case name == types.FeatureSeniorityGap:
		return (value + seniorityGapOffset) / seniorityGapScale
	case name == types.FeatureEducationLevel:
		return value / educationLevelScale
	case booleanFeatures[name]:
		if value != 0 {
			return 1
		}
		return 0
	default:
		return value
	}
}

// binarize maps outcome scores onto positive (1) and negative (0) labels.
func binarize(targets []float64) []float64 {
	labels := make([]float64, len(targets))
	for i, t := range targets {
		if t > positiveOutcome {
			labels[i] = 1
		}
	}
	return labels
}
