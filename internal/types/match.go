package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Component score names shared by results, explanations and metadata.
const (
	ComponentSkillDepth          = "skill_depth"
	ComponentExperienceRelevance = "experience_relevance"
	ComponentSeniorityMatch      = "seniority_match"
	ComponentIndustryFit         = "industry_fit"
	ComponentEducationMatch      = "education_match"
	ComponentKeywordDensity      = "keyword_density"
	ComponentRecency             = "recency"
)

// ComponentScores holds the five persisted component scores, each in [0,1].
type ComponentScores struct {
	SkillDepth          float64 `json:"skill_depth"`
	ExperienceRelevance float64 `json:"experience_relevance"`
	SeniorityMatch      float64 `json:"seniority_match"`
	IndustryFit         float64 `json:"industry_fit"`
	EducationMatch      float64 `json:"education_match"`
}

// Values returns the scores in declaration order.
func (c ComponentScores) Values() []float64 {
	return []float64{c.SkillDepth, c.ExperienceRelevance, c.SeniorityMatch, c.IndustryFit, c.EducationMatch}
}

// ScoreRequest asks for the interview odds of one candidate against one job.
type ScoreRequest struct {
	UserID           string           `json:"user_id" validate:"required"`
	Job              *JobRequirements `json:"job" validate:"required"`
	Sources          ProfileSources   `json:"sources"`
	SubscriptionTier string           `json:"subscription_tier" validate:"required"`
}

// Validate validates the request and the job requirements it carries.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MatchResult is the immutable outcome of one probability calculation.
type MatchResult struct {
	ID                   uuid.UUID       `json:"id"`
	UserID               string          `json:"user_id"`
	JobID                string          `json:"job_id"`
	InterviewProbability float64         `json:"interview_probability"`
	OfferProbability     float64         `json:"offer_probability"`
	OverallScore         float64         `json:"overall_score"`
	Components           ComponentScores `json:"components"`
	CriticalGaps         []string        `json:"critical_gaps"`
	MinorGaps            []string        `json:"minor_gaps"`
	Strengths            []string        `json:"strengths"`
	SubscriptionTier     string          `json:"subscription_tier"`
	ThresholdMet         bool            `json:"threshold_met"`
	RequiresHumanReview  bool            `json:"requires_human_review"`
	Metadata             map[string]any  `json:"metadata,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// Actionable reports whether the match is surfaced to the user, either directly or after review.
func (m *MatchResult) Actionable() bool {
	return m.ThresholdMet || m.RequiresHumanReview
}

// Metadata keys written by the matcher.
const (
	MetaProfileCompleteness    = "profile_completeness"
	MetaComponentScores        = "component_scores"
	MetaJobTitle               = "job_title"
	MetaJobCompany             = "job_company"
	MetaCandidateYears         = "candidate_experience_years"
	MetaCandidateSeniority     = "candidate_seniority"
	MetaJobSeniority           = "job_seniority"
	MetaSeniorityGap           = "seniority_gap"
	MetaCandidateEducation     = "candidate_education_level"
	MetaEducationMet           = "education_requirement_met"
	MetaSkillOverlap           = "skill_overlap"
	MetaLocationMatch          = "location_match"
	MetaCompanySizeMatch       = "company_size_match"
	MetaLearnedProbability     = "learned_interview_probability"
	MetaLearnedConfidence      = "learned_prediction_confidence"
	MetaMatchedRequiredSkills  = "matched_required_skills"
	MetaMissingPreferredSkills = "missing_preferred_skills"
)

// ComponentAnalysis is the textual assessment of a single component score.
type ComponentAnalysis struct {
	Component string  `json:"component"`
	Score     float64 `json:"score"`
	Rating    string  `json:"rating"`
	Analysis  string  `json:"analysis"`
}

// Reasoning sources for MatchExplanation.ReasoningSource.
const (
	ReasoningSourceProvider = "provider"
	ReasoningSourceRules    = "rules"
)

// MatchExplanation is a lazily generated narrative for a MatchResult.
type MatchExplanation struct {
	MatchID           uuid.UUID           `json:"match_id"`
	Summary           string              `json:"summary"`
	Components        []ComponentAnalysis `json:"components"`
	DetailedReasoning string              `json:"detailed_reasoning"`
	ReasoningSource   string              `json:"reasoning_source"`
	Recommendations   []string            `json:"recommendations"`
	ApplicationTips   []string            `json:"application_tips"`
	Confidence        float64             `json:"confidence"`
	GeneratedAt       time.Time           `json:"generated_at"`
}
