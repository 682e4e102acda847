package ranking

import (
	"math"
	"time"

	"github.com/jonathan/interview-odds/internal/skills"
	"github.com/jonathan/interview-odds/internal/types"
)

// Assessment is the full scoring of one profile against one job.
type Assessment struct {
	Components           types.ComponentScores
	KeywordDensity       float64
	Recency              float64
	OverallScore         float64 // 0-100
	InterviewProbability float64
	OfferProbability     float64

	CriticalGaps []string
	MinorGaps    []string
	Strengths    []string

	// SkillOverlap is the fraction of listed (required and preferred) skills the profile has.
	SkillOverlap           float64
	SeniorityGap           int
	MatchedRequiredSkills  []string
	MissingPreferredSkills []string
	LocationMatch          bool
	CompanySizeMatch       bool
}

// Assess scores profile against job. now resolves the recency component.
func Assess(profile *types.Profile, job *types.JobRequirements, now time.Time) *Assessment {
	a := &Assessment{
		Components: types.ComponentScores{
			SkillDepth:          computeSkillDepthScore(profile, job),
			ExperienceRelevance: computeExperienceRelevance(profile.TotalExperienceYears, job),
			SeniorityMatch:      computeSeniorityMatch(profile.SeniorityLevel, job.SeniorityLevel),
			IndustryFit:         computeIndustryFit(profile.Industries, job.Industry),
			EducationMatch:      computeEducationMatch(profile.HighestEducationLevel, job.EducationLevel),
		},
		KeywordDensity:   computeKeywordDensity(profile, job.Description),
		Recency:          computeRecency(profile.Experience, now),
		LocationMatch:    LocationMatches(profile.Location, job.Location),
		CompanySizeMatch: CompanySizeMatches(profile.PreferredCompanySize, job.CompanySize),
	}
	a.SeniorityGap, _ = seniorityGap(profile.SeniorityLevel, job.SeniorityLevel)

	a.OverallScore = maxOverallScore * (WeightSkillDepth*a.Components.SkillDepth +
		WeightExperienceRelevance*a.Components.ExperienceRelevance +
		WeightSeniorityMatch*a.Components.SeniorityMatch +
		WeightIndustryFit*a.Components.IndustryFit +
		WeightEducationMatch*a.Components.EducationMatch +
		WeightKeywordDensity*a.KeywordDensity +
		WeightRecency*a.Recency)
	a.OverallScore = math.Max(0, math.Min(maxOverallScore, a.OverallScore))

	a.InterviewProbability = InterviewProbability(a.OverallScore, a.Components)
	a.OfferProbability = OfferProbability(a.InterviewProbability, a.Components)

	a.CriticalGaps, a.MinorGaps = Gaps(profile, job)
	a.Strengths = Strengths(a.Components)

	listed := 0
	present := 0
	for _, skill := range job.RequiredSkills {
		listed++
		if skills.Contains(profile.Skills, skill) {
			present++
			a.MatchedRequiredSkills = append(a.MatchedRequiredSkills, skill)
		}
	}
	for _, skill := range job.PreferredSkills {
		listed++
		if skills.Contains(profile.Skills, skill) {
			present++
		} else {
			a.MissingPreferredSkills = append(a.MissingPreferredSkills, skill)
		}
	}
	a.SkillOverlap = neutralOverlap
	if listed > 0 {
		a.SkillOverlap = float64(present) / float64(listed)
	}

	return a
}

// neutralOverlap is reported when a job lists no skills.
const neutralOverlap = 0.5

// Values returns all seven component scores keyed by component name.
func (a *Assessment) Values() map[string]float64 {
	return map[string]float64{
		types.ComponentSkillDepth:          a.Components.SkillDepth,
		types.ComponentExperienceRelevance: a.Components.ExperienceRelevance,
		types.ComponentSeniorityMatch:      a.Components.SeniorityMatch,
		types.ComponentIndustryFit:         a.Components.IndustryFit,
		types.ComponentEducationMatch:      a.Components.EducationMatch,
		types.ComponentKeywordDensity:      a.KeywordDensity,
		types.ComponentRecency:             a.Recency,
	}
}
