package parsing

import (
	"testing"

	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSkillDepth(t *testing.T) {
	profile := fixedParser().ParseProfile(types.ProfileSources{Resume: sampleResume})

	depth := SkillDepth(profile, []string{"Python", "Java", "Rust", "Scala"})

	assert.Equal(t, map[string]float64{
		"Python": DepthRecentExperienced, // recent role, 10 years total
		"Java":   DepthRecentExperienced, // second most recent role counts as recent
		"Rust":   DepthSeasoned,          // listed only
		"Scala":  0,
	}, depth)
}

func TestSkillDepth_Levels(t *testing.T) {
	recentRole := []types.ExperienceEntry{{Title: "Engineer", Description: "Go and Python services"}}

	tests := []struct {
		name     string
		profile  *types.Profile
		expected float64
	}{
		{
			name:     "recent and experienced",
			profile:  &types.Profile{Skills: []string{"Python"}, Experience: recentRole, TotalExperienceYears: 5},
			expected: DepthRecentExperienced,
		},
		{
			name:     "recent but junior",
			profile:  &types.Profile{Skills: []string{"Python"}, Experience: recentRole, TotalExperienceYears: 4.9},
			expected: DepthRecent,
		},
		{
			name:     "not recent, seasoned",
			profile:  &types.Profile{Skills: []string{"Python"}, TotalExperienceYears: 3},
			expected: DepthSeasoned,
		},
		{
			name:     "listed only",
			profile:  &types.Profile{Skills: []string{"Python"}, TotalExperienceYears: 2.9},
			expected: DepthListed,
		},
		{
			name: "third role does not count as recent",
			profile: &types.Profile{
				Skills: []string{"Python"},
				Experience: []types.ExperienceEntry{
					{Title: "Manager"}, {Title: "Lead"}, {Description: "Python"},
				},
				TotalExperienceYears: 1,
			},
			expected: DepthListed,
		},
		{
			name:     "absent",
			profile:  &types.Profile{Skills: []string{"Java"}, Experience: recentRole, TotalExperienceYears: 10},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SkillDepth(tt.profile, []string{"python"})["python"])
		})
	}
}

func TestSkillDepth_NilProfile(t *testing.T) {
	assert.Equal(t, map[string]float64{"Go": 0}, SkillDepth(nil, []string{"Go"}))
}

func TestSkillDepth_ExactTermInRecentRole(t *testing.T) {
	profile := &types.Profile{
		Skills:               []string{"Go"},
		TotalExperienceYears: 10,
		Experience: []types.ExperienceEntry{
			{Title: "Growth Lead", Description: "Owned go to market planning"},
		},
	}
	assert.Equal(t, DepthSeasoned, SkillDepth(profile, []string{"Go"})["Go"])

	profile.Experience[0].Description = "Built golang services"
	assert.Equal(t, DepthRecentExperienced, SkillDepth(profile, []string{"Go"})["Go"])
}
