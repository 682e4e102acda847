package ranking

import (
	"testing"
	"time"

	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestComputeSkillDepthScore(t *testing.T) {
	profile := &types.Profile{
		Skills:               []string{"Python", "AWS"},
		Experience:           []types.ExperienceEntry{{Title: "Engineer", Description: "Python on AWS"}},
		TotalExperienceYears: 6,
	}

	tests := []struct {
		name     string
		job      *types.JobRequirements
		expected float64
	}{
		{"no skills listed", &types.JobRequirements{}, 0.8},
		{"required only", &types.JobRequirements{RequiredSkills: []string{"Python", "Go"}}, 0.5},
		{"preferred only", &types.JobRequirements{PreferredSkills: []string{"AWS"}}, 1.0},
		{
			"blended 70/30",
			&types.JobRequirements{RequiredSkills: []string{"Python"}, PreferredSkills: []string{"Go"}},
			0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, computeSkillDepthScore(profile, tt.job), 1e-9)
		})
	}
}

func TestComputeSkillDepthScore_Monotonic(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"Python", "Docker"}, PreferredSkills: []string{"AWS"}}
	profile := &types.Profile{
		Skills:               []string{"Python"},
		Experience:           []types.ExperienceEntry{{Description: "Python and Docker services"}},
		TotalExperienceYears: 2,
	}
	before := computeSkillDepthScore(profile, job)

	profile.Skills = append(profile.Skills, "Docker")
	after := computeSkillDepthScore(profile, job)

	assert.GreaterOrEqual(t, after, before)
}

func TestComputeExperienceRelevance(t *testing.T) {
	tests := []struct {
		name     string
		years    float64
		min, max float64
		expected float64
	}{
		{"inside window", 7, 5, 10, 1.0},
		{"at minimum", 5, 5, 10, 1.0},
		{"two years short", 3, 5, 10, 0.7},
		{"far below clamps to zero", 0, 10, 0, 0},
		{"five years over", 15, 5, 10, 0.75},
		{"far over clamps to floor", 30, 5, 10, 0.6},
		{"no upper bound", 40, 5, 0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobRequirements{MinExperienceYears: tt.min, MaxExperienceYears: tt.max}
			assert.InDelta(t, tt.expected, computeExperienceRelevance(tt.years, job), 1e-9)
		})
	}
}

func TestComputeSeniorityMatch(t *testing.T) {
	tests := []struct {
		candidate types.SeniorityLevel
		required  string
		expected  float64
	}{
		{types.SenioritySenior, "senior", 1.0},
		{types.SenioritySenior, "Lead", 0.8},
		{types.SenioritySenior, "entry", 0.5},
		{types.SeniorityExecutive, "junior", 0.3},
		{types.SenioritySenior, "", 0.7},
		{"", "senior", 0.7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, computeSeniorityMatch(tt.candidate, tt.required),
			"%s vs %s", tt.candidate, tt.required)
	}
}

func TestSeniorityGap_Signed(t *testing.T) {
	gap, ok := seniorityGap(types.SeniorityEntry, "senior")
	assert.True(t, ok)
	assert.Equal(t, -2, gap)

	_, ok = seniorityGap(types.SeniorityEntry, "astronaut")
	assert.False(t, ok)
}

func TestComputeIndustryFit(t *testing.T) {
	assert.Equal(t, 0.7, computeIndustryFit([]string{"finance"}, ""))
	assert.Equal(t, 1.0, computeIndustryFit([]string{"finance", "technology"}, "Technology"))
	assert.Equal(t, 0.6, computeIndustryFit([]string{"finance"}, "healthcare"))
	assert.Equal(t, 0.5, computeIndustryFit(nil, "healthcare"))
}

func TestComputeEducationMatch(t *testing.T) {
	assert.Equal(t, 0.8, computeEducationMatch(types.DegreeBachelor, 0))
	assert.Equal(t, 1.0, computeEducationMatch(types.DegreeMaster, types.DegreeBachelor))
	assert.InDelta(t, 0.8, computeEducationMatch(types.DegreeBachelor, types.DegreeMaster), 1e-9)
	assert.InDelta(t, 0.4, computeEducationMatch(types.DegreeAssociate, types.DegreePhD), 1e-9)
	assert.InDelta(t, 0.3, computeEducationMatch(types.DegreeNone, types.DegreePhD), 1e-9)
}

func TestComputeKeywordDensity(t *testing.T) {
	profile := &types.Profile{
		Summary: "Backend engineer.",
		Experience: []types.ExperienceEntry{
			{Description: "Built Kafka pipelines"},
			{Description: "Wrote Go services"},
			{Description: "Ran Postgres"},
			{Description: "Managed Kubernetes"},
		},
	}

	// tokens: backend, engineer, kafka, go, kubernetes -> kubernetes only appears in the fourth role
	density := computeKeywordDensity(profile, "Backend engineer: Kafka, Go, Kubernetes!")
	assert.InDelta(t, 0.8, density, 1e-9)

	assert.Equal(t, 0.0, computeKeywordDensity(profile, ""))
	assert.Equal(t, 0.0, computeKeywordDensity(&types.Profile{}, "anything at all"))
}

func TestComputeRecency(t *testing.T) {
	tests := []struct {
		endYear  int
		expected float64
	}{
		{2025, 1.0},
		{2024, 0.9},
		{2023, 0.7},
		{2019, 0.5},
	}
	for _, tt := range tests {
		experience := []types.ExperienceEntry{{EndYear: tt.endYear}}
		assert.Equal(t, tt.expected, computeRecency(experience, fixedNow), "end year %d", tt.endYear)
	}
	assert.Equal(t, 0.5, computeRecency(nil, fixedNow))
}

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightSkillDepth + WeightExperienceRelevance + WeightSeniorityMatch + WeightIndustryFit +
		WeightEducationMatch + WeightKeywordDensity + WeightRecency
	assert.InDelta(t, 1.0, sum, 1e-12)
}
