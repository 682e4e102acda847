// Package ranking scores a candidate profile against job requirements. Every function is pure.
package ranking

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/interview-odds/internal/ingestion"
	"github.com/jonathan/interview-odds/internal/parsing"
	"github.com/jonathan/interview-odds/internal/types"
	"gonum.org/v1/gonum/stat"
)

// Component weights; they sum to 1.0.
const (
	WeightSkillDepth          = 0.30
	WeightExperienceRelevance = 0.25
	WeightSeniorityMatch      = 0.15
	WeightIndustryFit         = 0.10
	WeightEducationMatch      = 0.10
	WeightKeywordDensity      = 0.05
	WeightRecency             = 0.05
)

const (
	requiredSkillShare  = 0.7
	preferredSkillShare = 0.3
	// neutralSkillDepth is used when a job lists no skills at all.
	neutralSkillDepth = 0.8

	deficitPenaltyPerYear = 0.15
	excessPenaltyPerYear  = 0.05
	excessFloor           = 0.6

	unknownSeniorityScore = 0.7

	industryUnspecified = 0.7
	industryOther       = 0.6
	industryNone        = 0.5

	educationUnspecified = 0.8
	educationGapPenalty  = 0.2
	educationFloor       = 0.3

	recentDescriptions = 3
	neutralRecency     = 0.5
)

// computeSkillDepthScore blends the mean depth of required skills (70%) and preferred skills (30%).
// When only one group is listed its mean is used alone.
func computeSkillDepthScore(profile *types.Profile, job *types.JobRequirements) float64 {
	if !job.HasSkillRequirements() {
		return neutralSkillDepth
	}

	required := meanDepth(profile, job.RequiredSkills)
	preferred := meanDepth(profile, job.PreferredSkills)

	switch {
	case len(job.RequiredSkills) == 0:
		return preferred
	case len(job.PreferredSkills) == 0:
		return required
	default:
		return requiredSkillShare*required + preferredSkillShare*preferred
	}
}

func meanDepth(profile *types.Profile, skillNames []string) float64 {
	if len(skillNames) == 0 {
		return 0
	}
	depth := parsing.SkillDepth(profile, skillNames)
	values := make([]float64, 0, len(skillNames))
	for _, name := range skillNames {
		values = append(values, depth[name])
	}
	return stat.Mean(values, nil)
}

// computeExperienceRelevance compares total years against the job's [min, max] window.
// A max of 0 means the window is open-ended.
func computeExperienceRelevance(years float64, job *types.JobRequirements) float64 {
	switch {
	case years < job.MinExperienceYears:
		return math.Max(0, 1-deficitPenaltyPerYear*(job.MinExperienceYears-years))
	case job.MaxExperienceYears > 0 && years > job.MaxExperienceYears:
		return math.Max(excessFloor, 1-excessPenaltyPerYear*(years-job.MaxExperienceYears))
	default:
		return 1.0
	}
}

// seniorityGap returns the signed ladder distance candidate - job, and false if either side is unknown.
func seniorityGap(candidate types.SeniorityLevel, required string) (int, bool) {
	c := candidate.Rank()
	j := parsing.ParseSeniority(required).Rank()
	if c < 0 || j < 0 {
		return 0, false
	}
	return c - j, true
}

func computeSeniorityMatch(candidate types.SeniorityLevel, required string) float64 {
	gap, ok := seniorityGap(candidate, required)
	if !ok {
		return unknownSeniorityScore
	}
	switch absInt(gap) {
	case 0:
		return 1.0
	case 1:
		return 0.8
	case 2:
		return 0.5
	default:
		return 0.3
	}
}

func computeIndustryFit(industries []string, required string) float64 {
	required = strings.TrimSpace(required)
	if required == "" {
		return industryUnspecified
	}
	if len(industries) == 0 {
		return industryNone
	}
	for _, industry := range industries {
		if strings.EqualFold(industry, required) {
			return 1.0
		}
	}
	return industryOther
}

func computeEducationMatch(candidate, required int) float64 {
	if required <= types.DegreeNone {
		return educationUnspecified
	}
	if candidate >= required {
		return 1.0
	}
	return math.Max(educationFloor, 1-educationGapPenalty*float64(required-candidate))
}

// computeKeywordDensity returns the fraction of distinct job-description tokens that also appear in the
// candidate's summary or most recent experience descriptions.
func computeKeywordDensity(profile *types.Profile, description string) float64 {
	jobTokens := ingestion.TokenSet(ingestion.CleanText(description))
	if len(jobTokens) == 0 {
		return 0
	}

	parts := []string{profile.Summary}
	for _, entry := range profile.Experience[:min(len(profile.Experience), recentDescriptions)] {
		parts = append(parts, entry.Description)
	}
	candidateTokens := ingestion.TokenSet(strings.Join(parts, " "))

	present := 0
	for token := range jobTokens {
		if _, ok := candidateTokens[token]; ok {
			present++
		}
	}
	return float64(present) / float64(len(jobTokens))
}

// computeRecency scores how recently the most recent role ended relative to now.
func computeRecency(experience []types.ExperienceEntry, now time.Time) float64 {
	if len(experience) == 0 {
		return neutralRecency
	}
	switch yearsAgo := now.Year() - experience[0].EndYear; {
	case yearsAgo <= 0:
		return 1.0
	case yearsAgo == 1:
		return 0.9
	case yearsAgo == 2:
		return 0.7
	default:
		return neutralRecency
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
