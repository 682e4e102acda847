package ranking

import (
	"math"
	"testing"

	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seniorPythonProfile() *types.Profile {
	return &types.Profile{
		Skills: []string{"Python", "AWS", "Docker"},
		Experience: []types.ExperienceEntry{{
			Title:          "Senior Engineer",
			Company:        "Acme",
			StartYear:      2018,
			EndYear:        2025,
			DurationMonths: 84,
			Description:    "Python services on AWS packaged with Docker",
		}},
		TotalExperienceYears: 7,
		SeniorityLevel:       types.SenioritySenior,
	}
}

func TestAssess_SeniorMatch(t *testing.T) {
	job := &types.JobRequirements{
		Title:              "Backend Engineer",
		Description:        "Python AWS Docker",
		RequiredSkills:     []string{"Python", "AWS", "Docker"},
		MinExperienceYears: 5,
		MaxExperienceYears: 10,
		SeniorityLevel:     "senior",
	}

	a := Assess(seniorPythonProfile(), job, fixedNow)

	assert.Equal(t, types.ComponentScores{
		SkillDepth:          1.0,
		ExperienceRelevance: 1.0,
		SeniorityMatch:      1.0,
		IndustryFit:         0.7,
		EducationMatch:      0.8,
	}, a.Components)
	assert.Equal(t, 1.0, a.KeywordDensity)
	assert.Equal(t, 1.0, a.Recency)

	// 100 x (0.30 + 0.25 + 0.15 + 0.10x0.7 + 0.10x0.8 + 0.05 + 0.05)
	assert.InDelta(t, 95.0, a.OverallScore, 1e-9)
	// 1 / (1 + e^(-10 x (0.95 - 0.6)))
	assert.InDelta(t, 1/(1+math.Exp(-3.5)), a.InterviewProbability, 1e-12)
	assert.InDelta(t, 0.970688, a.InterviewProbability, 1e-6)
	// interview x 0.25 x (1 + 0.9 - 0.7)
	assert.InDelta(t, 0.291206, a.OfferProbability, 1e-6)

	assert.Empty(t, a.CriticalGaps)
	assert.Empty(t, a.MinorGaps)
	assert.Equal(t, []string{StrengthSkills, StrengthExperience, StrengthSeniority}, a.Strengths)
	assert.Equal(t, 1.0, a.SkillOverlap)
	assert.Equal(t, 0, a.SeniorityGap)
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, a.MatchedRequiredSkills)
}

func TestAssess_NoSkillRequirements(t *testing.T) {
	a := Assess(seniorPythonProfile(), &types.JobRequirements{Title: "Generalist"}, fixedNow)

	assert.Equal(t, 0.8, a.Components.SkillDepth)
	assert.Equal(t, neutralOverlap, a.SkillOverlap)
}

func TestAssess_ScoresStayInRange(t *testing.T) {
	profiles := []*types.Profile{
		{},
		seniorPythonProfile(),
		{Skills: []string{"Go"}, TotalExperienceYears: 40, SeniorityLevel: types.SeniorityExecutive, HighestEducationLevel: 5},
	}
	jobs := []*types.JobRequirements{
		{},
		{RequiredSkills: []string{"Rust", "Go"}, MinExperienceYears: 20, SeniorityLevel: "entry", EducationLevel: 5, Industry: "finance"},
		{PreferredSkills: []string{"Go"}, MaxExperienceYears: 2, Description: "Go Go Go"},
	}

	for _, profile := range profiles {
		for _, job := range jobs {
			a := Assess(profile, job, fixedNow)
			for name, v := range a.Values() {
				assert.GreaterOrEqual(t, v, 0.0, name)
				assert.LessOrEqual(t, v, 1.0, name)
			}
			assert.GreaterOrEqual(t, a.OverallScore, 0.0)
			assert.LessOrEqual(t, a.OverallScore, 100.0)
			assert.GreaterOrEqual(t, a.InterviewProbability, 0.0)
			assert.LessOrEqual(t, a.InterviewProbability, 1.0)
			assert.GreaterOrEqual(t, a.OfferProbability, 0.0)
			assert.LessOrEqual(t, a.OfferProbability, a.InterviewProbability)
		}
	}
}

func TestAssess_Deterministic(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"Python"}, Description: "python data"}
	first := Assess(seniorPythonProfile(), job, fixedNow)
	second := Assess(seniorPythonProfile(), job, fixedNow)
	assert.Equal(t, first, second)
}

func TestInterviewProbability_Penalties(t *testing.T) {
	base := Calibrate(0.6)
	require.InDelta(t, 0.5, base, 1e-12)

	tests := []struct {
		name       string
		components types.ComponentScores
		expected   float64
	}{
		{"no penalty", types.ComponentScores{SkillDepth: 0.5, ExperienceRelevance: 0.5}, 0.5},
		{"weak skills", types.ComponentScores{SkillDepth: 0.49, ExperienceRelevance: 0.9}, 0.4},
		{"weak experience", types.ComponentScores{SkillDepth: 0.9, ExperienceRelevance: 0.2}, 0.45},
		{"both compose", types.ComponentScores{SkillDepth: 0.1, ExperienceRelevance: 0.1}, 0.36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, InterviewProbability(60, tt.components), 1e-12)
		})
	}
}

func TestOfferProbability(t *testing.T) {
	c := types.ComponentScores{SkillDepth: 0.7, ExperienceRelevance: 0.7, SeniorityMatch: 0.7, IndustryFit: 0.7, EducationMatch: 0.7}
	assert.InDelta(t, 0.2, OfferProbability(0.8, c), 1e-12)

	zero := types.ComponentScores{}
	assert.InDelta(t, 0.8*0.25*0.3, OfferProbability(0.8, zero), 1e-12)
}

func TestGaps(t *testing.T) {
	profile := &types.Profile{Skills: []string{"Go"}, TotalExperienceYears: 2}
	job := &types.JobRequirements{
		RequiredSkills:     []string{"Go", "Rust", "Kafka"},
		PreferredSkills:    []string{"Go", "Terraform"},
		MinExperienceYears: 5,
	}

	critical, minor := Gaps(profile, job)

	assert.Equal(t, []string{
		"Missing required skill: Rust",
		"Missing required skill: Kafka",
		"Needs 3.0 more years of experience (has 2.0, requires 5.0)",
	}, critical)
	assert.Equal(t, []string{"Missing preferred skill: Terraform"}, minor)
}

func TestGaps_CappedWithDeficitReplacingLast(t *testing.T) {
	profile := &types.Profile{}
	job := &types.JobRequirements{
		RequiredSkills:     []string{"A1", "A2", "A3", "A4", "A5", "A6"},
		PreferredSkills:    []string{"B1", "B2", "B3", "B4", "B5", "B6", "B7"},
		MinExperienceYears: 1,
	}

	critical, minor := Gaps(profile, job)

	require.Len(t, critical, MaxListEntries)
	assert.Equal(t, "Missing required skill: A4", critical[3])
	assert.Contains(t, critical[4], "more years of experience")
	assert.Len(t, minor, MaxListEntries)
}

func TestStrengths(t *testing.T) {
	all := types.ComponentScores{SkillDepth: 0.9, ExperienceRelevance: 1, SeniorityMatch: 1, IndustryFit: 1, EducationMatch: 1}
	assert.Len(t, Strengths(all), 5)

	none := types.ComponentScores{SkillDepth: 0.2}
	assert.Equal(t, []string{StrengthPotential}, Strengths(none))
}

func TestProfileCompleteness(t *testing.T) {
	assert.Equal(t, 0.0, ProfileCompleteness(&types.Profile{}))
	assert.InDelta(t, 0.5, ProfileCompleteness(seniorPythonProfile()), 1e-9)

	full := seniorPythonProfile()
	full.Education = []types.EducationEntry{{Level: 3}}
	full.Summary = "Engineer"
	full.Certifications = []string{"CKA"}
	assert.InDelta(t, 1.0, ProfileCompleteness(full), 1e-9)
}

func TestLocationAndCompanySize(t *testing.T) {
	assert.True(t, LocationMatches("Berlin, Germany", "Berlin"))
	assert.True(t, LocationMatches("Lisbon", "Remote (EU)"))
	assert.False(t, LocationMatches("Lisbon", "Berlin"))
	assert.False(t, LocationMatches("", "Berlin"))

	assert.True(t, CompanySizeMatches("Startup", "startup"))
	assert.False(t, CompanySizeMatches("", ""))
	assert.False(t, CompanySizeMatches("enterprise", "startup"))
}
