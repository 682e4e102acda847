package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Outcome is a reported application outcome.
type Outcome string

// Outcome vocabulary shared with the upstream application tracking system.
const (
	OutcomeRejected  Outcome = "rejected"
	OutcomeInterview Outcome = "interview"
	OutcomeOffer     Outcome = "offer"
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDeclined  Outcome = "declined"
)

// Outcomes lists every accepted outcome value.
var Outcomes = []Outcome{OutcomeRejected, OutcomeInterview, OutcomeOffer, OutcomeAccepted, OutcomeDeclined}

// ParseOutcome returns the Outcome for s, or false if s is not part of the vocabulary.
func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range Outcomes {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}

// Score maps the outcome onto the training target: rejected 0.0, interview 0.5, offer/accepted/declined 1.0.
func (o Outcome) Score() float64 {
	switch o {
	case OutcomeInterview:
		return 0.5
	case OutcomeOffer, OutcomeAccepted, OutcomeDeclined:
		return 1.0
	default:
		return 0.0
	}
}

// FeedbackRequest is the inbound request to record an outcome against a match.
type FeedbackRequest struct {
	MatchID         uuid.UUID  `json:"match_id" validate:"required"`
	Outcome         string     `json:"outcome" validate:"required,oneof=rejected interview offer accepted declined"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
	ResponseAt      *time.Time `json:"response_at,omitempty"`
	InterviewRounds *int       `json:"interview_rounds,omitempty" validate:"omitempty,gte=0"`
	UserRating      *int       `json:"user_rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes           string     `json:"notes,omitempty"`
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MatchFeedback links a MatchResult to a reported outcome.
type MatchFeedback struct {
	ID              uuid.UUID  `json:"id"`
	MatchID         uuid.UUID  `json:"match_id"`
	Outcome         Outcome    `json:"outcome"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
	ResponseAt      *time.Time `json:"response_at,omitempty"`
	DaysToResponse  *int       `json:"days_to_response,omitempty"`
	InterviewRounds *int       `json:"interview_rounds,omitempty"`
	UserRating      *int       `json:"user_rating,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Feature names of a TrainingDataPoint, in model column order.
const (
	FeatureSkillOverlap              = "skill_overlap"
	FeatureSkillDepth                = "skill_depth"
	FeatureExperienceYears           = "experience_years"
	FeatureSeniorityGap              = "seniority_gap"
	FeatureIndustryMatch             = "industry_match"
	FeatureEducationLevel            = "education_level"
	FeatureEducationMatch            = "education_match"
	FeatureKeywordDensity            = "keyword_density"
	FeatureRecentExperienceRelevance = "recent_experience_relevance"
	FeatureCompanySizeMatch          = "company_size_match"
	FeatureLocationMatch             = "location_match"
)

// FeatureNames lists the eleven features in model column order.
var FeatureNames = []string{
	FeatureSkillOverlap,
	FeatureSkillDepth,
	FeatureExperienceYears,
	FeatureSeniorityGap,
	FeatureIndustryMatch,
	FeatureEducationLevel,
	FeatureEducationMatch,
	FeatureKeywordDensity,
	FeatureRecentExperienceRelevance,
	FeatureCompanySizeMatch,
	FeatureLocationMatch,
}

// TrainingDataPoint is one labeled feature vector derived from a single feedback record.
type TrainingDataPoint struct {
	FeedbackID                uuid.UUID `json:"feedback_id,omitempty"`
	MatchID                   uuid.UUID `json:"match_id,omitempty"`
	SkillOverlap              float64   `json:"skill_overlap"`
	SkillDepth                float64   `json:"skill_depth"`
	ExperienceYears           float64   `json:"experience_years"`
	SeniorityGap              int       `json:"seniority_gap"`
	IndustryMatch             bool      `json:"industry_match"`
	EducationLevel            int       `json:"education_level"`
	EducationMatch            bool      `json:"education_match"`
	KeywordDensity            float64   `json:"keyword_density"`
	RecentExperienceRelevance float64   `json:"recent_experience_relevance"`
	CompanySizeMatch          bool      `json:"company_size_match"`
	LocationMatch             bool      `json:"location_match"`
	OutcomeScore              float64   `json:"outcome_score"`
	Weight                    float64   `json:"weight"`
	CreatedAt                 time.Time `json:"created_at"`
}

// Features returns the raw (un-normalized) feature values keyed by feature name. Booleans are 0 or 1.
func (p TrainingDataPoint) Features() map[string]float64 {
	return map[string]float64{
		FeatureSkillOverlap:              p.SkillOverlap,
		FeatureSkillDepth:                p.SkillDepth,
		FeatureExperienceYears:           p.ExperienceYears,
		FeatureSeniorityGap:              float64(p.SeniorityGap),
		FeatureIndustryMatch:             boolToFloat(p.IndustryMatch),
		FeatureEducationLevel:            float64(p.EducationLevel),
		FeatureEducationMatch:            boolToFloat(p.EducationMatch),
		FeatureKeywordDensity:            p.KeywordDensity,
		FeatureRecentExperienceRelevance: p.RecentExperienceRelevance,
		FeatureCompanySizeMatch:          boolToFloat(p.CompanySizeMatch),
		FeatureLocationMatch:             boolToFloat(p.LocationMatch),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
