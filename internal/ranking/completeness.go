package ranking

import (
	"strings"

	"github.com/jonathan/interview-odds/internal/types"
)

// Weights of the presence checks making up profile completeness.
const (
	completenessSkills         = 0.25
	completenessExperience     = 0.25
	completenessEducation      = 0.15
	completenessSummary        = 0.20
	completenessCertifications = 0.15
)

// ProfileCompleteness is a weighted presence check over the main profile sections, in [0,1].
func ProfileCompleteness(profile *types.Profile) float64 {
	if profile == nil {
		return 0
	}
	score := 0.0
	if len(profile.Skills) > 0 {
		score += completenessSkills
	}
	if len(profile.Experience) > 0 {
		score += completenessExperience
	}
	if len(profile.Education) > 0 {
		score += completenessEducation
	}
	if strings.TrimSpace(profile.Summary) != "" {
		score += completenessSummary
	}
	if len(profile.Certifications) > 0 {
		score += completenessCertifications
	}
	return clamp01(score)
}

// LocationMatches reports whether the candidate location is compatible with the job location.
// Remote jobs match any candidate; otherwise one location must contain the other.
func LocationMatches(candidate, job string) bool {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	job = strings.ToLower(strings.TrimSpace(job))
	if candidate == "" || job == "" {
		return false
	}
	if strings.Contains(job, "remote") {
		return true
	}
	return strings.Contains(job, candidate) || strings.Contains(candidate, job)
}

// CompanySizeMatches reports whether the candidate's preferred company size equals the job's.
func CompanySizeMatches(preferred, actual string) bool {
	preferred = strings.TrimSpace(preferred)
	return preferred != "" && strings.EqualFold(preferred, strings.TrimSpace(actual))
}
