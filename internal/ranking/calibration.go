package ranking

import (
	"math"

	"github.com/jonathan/interview-odds/internal/types"
	"gonum.org/v1/gonum/stat"
)

// Logistic calibration parameters and post-calibration penalties.
const (
	CalibrationSteepness = 10.0
	CalibrationMidpoint  = 0.6

	weakSkillPenalty      = 0.8
	weakExperiencePenalty = 0.9
	penaltyThreshold      = 0.5

	baseOfferRate   = 0.25
	offerBaseline   = 0.7
	maxOverallScore = 100.0
)

// Calibrate maps a [0,1] match score onto a probability with a logistic curve.
func Calibrate(score float64) float64 {
	return 1 / (1 + math.Exp(-CalibrationSteepness*(score-CalibrationMidpoint)))
}

// InterviewProbability calibrates the overall score (0-100) and then applies the weak-skill and
// weak-experience penalties, which compose multiplicatively.
func InterviewProbability(overallScore float64, components types.ComponentScores) float64 {
	probability := Calibrate(overallScore / maxOverallScore)
	if components.SkillDepth < penaltyThreshold {
		probability *= weakSkillPenalty
	}
	if components.ExperienceRelevance < penaltyThreshold {
		probability *= weakExperiencePenalty
	}
	return clamp01(probability)
}

// OfferProbability scales a 25% conditional offer rate by match strength relative to a 0.7 baseline.
func OfferProbability(interview float64, components types.ComponentScores) float64 {
	mean := stat.Mean(components.Values(), nil)
	return clamp01(interview * baseOfferRate * (1 + mean - offerBaseline))
}
