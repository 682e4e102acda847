package ranking

import (
	"fmt"

	"github.com/jonathan/interview-odds/internal/skills"
	"github.com/jonathan/interview-odds/internal/types"
)

// MaxListEntries caps gaps and strengths.
const MaxListEntries = 5

// Strength sentences.
const (
	StrengthSkills     = "Demonstrated depth in the required skills"
	StrengthExperience = "Experience level fits the role's requirements"
	StrengthSeniority  = "Seniority matches the role"
	StrengthIndustry   = "Directly relevant industry background"
	StrengthEducation  = "Education meets or exceeds the requirement"
	StrengthPotential  = "Shows potential for this role"
)

// Gaps lists missing required skills (critical) and missing preferred skills (minor). An experience
// deficit below the job minimum is reported as a critical gap, replacing the last entry if the list is full.
func Gaps(profile *types.Profile, job *types.JobRequirements) ([]string, []string) {
	critical := make([]string, 0, MaxListEntries)
	for _, skill := range job.RequiredSkills {
		if len(critical) == MaxListEntries {
			break
		}
		if !skills.Contains(profile.Skills, skill) {
			critical = append(critical, fmt.Sprintf("Missing required skill: %s", skill))
		}
	}

	if deficit := job.MinExperienceYears - profile.TotalExperienceYears; deficit > 0 {
		gap := fmt.Sprintf("Needs %.1f more years of experience (has %.1f, requires %.1f)",
			deficit, profile.TotalExperienceYears, job.MinExperienceYears)
		if len(critical) == MaxListEntries {
			critical[MaxListEntries-1] = gap
		} else {
			critical = append(critical, gap)
		}
	}

	minor := make([]string, 0, MaxListEntries)
	for _, skill := range job.PreferredSkills {
		if len(minor) == MaxListEntries {
			break
		}
		if !skills.Contains(profile.Skills, skill) {
			minor = append(minor, fmt.Sprintf("Missing preferred skill: %s", skill))
		}
	}

	return critical, minor
}

// Strengths returns a sentence for every component that clears its strength bar, or a generic one.
func Strengths(c types.ComponentScores) []string {
	strengths := make([]string, 0, MaxListEntries)
	if c.SkillDepth >= 0.85 {
		strengths = append(strengths, StrengthSkills)
	}
	if c.ExperienceRelevance >= 0.9 {
		strengths = append(strengths, StrengthExperience)
	}
	if c.SeniorityMatch == 1.0 {
		strengths = append(strengths, StrengthSeniority)
	}
	if c.IndustryFit == 1.0 {
		strengths = append(strengths, StrengthIndustry)
	}
	if c.EducationMatch == 1.0 {
		strengths = append(strengths, StrengthEducation)
	}
	if len(strengths) == 0 {
		strengths = append(strengths, StrengthPotential)
	}
	return strengths[:min(len(strengths), MaxListEntries)]
}
