package matching

import (
	"fmt"

	"github.com/jonathan/interview-odds/internal/ranking"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/mitchellh/mapstructure"
)

// matchMetadata is the typed view of MatchResult.Metadata. Metadata may have been round-tripped
// through JSON, so numbers can arrive as float64 and lists as []any.
type matchMetadata struct {
	ProfileCompleteness    float64            `mapstructure:"profile_completeness"`
	ComponentScores        map[string]float64 `mapstructure:"component_scores"`
	JobTitle               string             `mapstructure:"job_title"`
	JobCompany             string             `mapstructure:"job_company"`
	CandidateYears         float64            `mapstructure:"candidate_experience_years"`
	CandidateSeniority     string             `mapstructure:"candidate_seniority"`
	JobSeniority           string             `mapstructure:"job_seniority"`
	SeniorityGap           int                `mapstructure:"seniority_gap"`
	CandidateEducation     int                `mapstructure:"candidate_education_level"`
	EducationMet           bool               `mapstructure:"education_requirement_met"`
	SkillOverlap           float64            `mapstructure:"skill_overlap"`
	LocationMatch          bool               `mapstructure:"location_match"`
	CompanySizeMatch       bool               `mapstructure:"company_size_match"`
	LearnedProbability     *float64           `mapstructure:"learned_interview_probability"`
	MatchedRequiredSkills  []string           `mapstructure:"matched_required_skills"`
	MissingPreferredSkills []string           `mapstructure:"missing_preferred_skills"`
}

func decodeMetadata(raw map[string]any) (*matchMetadata, error) {
	var md matchMetadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &md,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode match metadata: %w", err)
	}
	return &md, nil
}

// buildMetadata records everything explanation and training-point reconstruction need later.
func buildMetadata(profile *types.Profile, job *types.JobRequirements, a *ranking.Assessment) map[string]any {
	return map[string]any{
		types.MetaProfileCompleteness:    ranking.ProfileCompleteness(profile),
		types.MetaComponentScores:        a.Values(),
		types.MetaJobTitle:               job.Title,
		types.MetaJobCompany:             job.Company,
		types.MetaCandidateYears:         profile.TotalExperienceYears,
		types.MetaCandidateSeniority:     string(profile.SeniorityLevel),
		types.MetaJobSeniority:           job.SeniorityLevel,
		types.MetaSeniorityGap:           a.SeniorityGap,
		types.MetaCandidateEducation:     profile.HighestEducationLevel,
		types.MetaEducationMet:           educationMet(profile, job),
		types.MetaSkillOverlap:           a.SkillOverlap,
		types.MetaLocationMatch:          a.LocationMatch,
		types.MetaCompanySizeMatch:       a.CompanySizeMatch,
		types.MetaMatchedRequiredSkills:  a.MatchedRequiredSkills,
		types.MetaMissingPreferredSkills: a.MissingPreferredSkills,
	}
}

// trainingPoint derives the training features of a stored match.
func trainingPoint(match *types.MatchResult, md *matchMetadata) types.TrainingDataPoint {
	return types.TrainingDataPoint{
		MatchID:                   match.ID,
		SkillOverlap:              md.SkillOverlap,
		SkillDepth:                match.Components.SkillDepth,
		ExperienceYears:           md.CandidateYears,
		SeniorityGap:              md.SeniorityGap,
		IndustryMatch:             match.Components.IndustryFit >= 1.0,
		EducationLevel:            md.CandidateEducation,
		EducationMatch:            md.EducationMet,
		KeywordDensity:            md.ComponentScores[types.ComponentKeywordDensity],
		RecentExperienceRelevance: md.ComponentScores[types.ComponentRecency],
		CompanySizeMatch:          md.CompanySizeMatch,
		LocationMatch:             md.LocationMatch,
	}
}

// educationMet reports whether the candidate meets the job's degree tier. A job without one is always met.
func educationMet(profile *types.Profile, job *types.JobRequirements) bool {
	return job.EducationLevel <= types.DegreeNone || profile.HighestEducationLevel >= job.EducationLevel
}

// features returns the raw feature map of an assessment for the learned estimator.
func features(profile *types.Profile, job *types.JobRequirements, a *ranking.Assessment) map[string]float64 {
	point := types.TrainingDataPoint{
		SkillOverlap:              a.SkillOverlap,
		SkillDepth:                a.Components.SkillDepth,
		ExperienceYears:           profile.TotalExperienceYears,
		SeniorityGap:              a.SeniorityGap,
		IndustryMatch:             a.Components.IndustryFit >= 1.0,
		EducationLevel:            profile.HighestEducationLevel,
		EducationMatch:            educationMet(profile, job),
		KeywordDensity:            a.KeywordDensity,
		RecentExperienceRelevance: a.Recency,
		CompanySizeMatch:          a.CompanySizeMatch,
		LocationMatch:             a.LocationMatch,
	}
	return point.Features()
}
