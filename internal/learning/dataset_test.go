package learning

import (
	"math/rand"
	"testing"

	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareTrainingData_Empty(t *testing.T) {
	_, _, _, err := PrepareTrainingData(nil)

	var trainingErr *TrainingError
	require.ErrorAs(t, err, &trainingErr)
	assert.Contains(t, err.Error(), "no training data points")
}

func TestPrepareTrainingData_Normalization(t *testing.T) {
	points := []types.TrainingDataPoint{{
		SkillOverlap:              0.75,
		SkillDepth:                0.6,
		ExperienceYears:           10,
		SeniorityGap:              -2,
		IndustryMatch:             true,
		EducationLevel:            5,
		EducationMatch:            false,
		KeywordDensity:            0.3,
		RecentExperienceRelevance: 0.9,
		CompanySizeMatch:          true,
		LocationMatch:             false,
		OutcomeScore:              0.5,
		Weight:                    0.8,
	}}

	features, targets, weights, err := PrepareTrainingData(points)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0.75, 0.6, 0.5, 0, 1, 1, 0, 0.3, 0.9, 1, 0}}, features)
	assert.Equal(t, []float64{0.5}, targets)
	assert.Equal(t, []float64{0.8}, weights)
}

func TestPrepareTrainingData_NonPositiveWeightDefaultsToOne(t *testing.T) {
	_, _, weights, err := PrepareTrainingData([]types.TrainingDataPoint{{Weight: 0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, weights)
}

func TestFeatureVector_Defaults(t *testing.T) {
	vector := featureVector(map[string]float64{})
	assert.Equal(t, []float64{0.5, 0.5, 0.25, 0.5, 0, 0.6, 0, 0.5, 0.5, 0, 0}, vector)

	vector = featureVector(map[string]float64{types.FeatureSeniorityGap: 2, types.FeatureLocationMatch: 1})
	assert.Equal(t, 1.0, vector[3])
	assert.Equal(t, 1.0, vector[10])
}

func TestBinarize(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 1, 0}, binarize([]float64{0, 0.5, 1, 0.25}))
}

func TestStratifiedSplit(t *testing.T) {
	labels := make([]float64, 50)
	for i := 0; i < 10; i++ {
		labels[i] = 1
	}

	train, validation := stratifiedSplit(labels, 0.2, rand.New(rand.NewSource(1)))

	assert.Len(t, train, 40)
	assert.Len(t, validation, 10)

	positives := 0
	for _, idx := range validation {
		positives += int(labels[idx])
	}
	assert.Equal(t, 2, positives)
	assert.ElementsMatch(t, allIndices(50), append(append([]int{}, train...), validation...))
}

func TestStratifiedSplit_KeepsTrainingNonEmpty(t *testing.T) {
	train, validation := stratifiedSplit([]float64{1}, 0.9, rand.New(rand.NewSource(1)))
	assert.Equal(t, []int{0}, train)
	assert.Empty(t, validation)
}

func TestStandardScaler(t *testing.T) {
	scaler := fitScaler([][]float64{{1, 5}, {3, 5}})

	assert.Equal(t, []float64{-1, 0}, scaler.transform([]float64{1, 5}))
	assert.Equal(t, []float64{1, 0}, scaler.transform([]float64{3, 5}))
}
