package parsing

import (
	"github.com/jonathan/interview-odds/internal/skills"
	"github.com/jonathan/interview-odds/internal/types"
)

// Depth levels distinguishing demonstrated skills from merely listed ones.
const (
	DepthRecentExperienced = 1.0
	DepthRecent            = 0.8
	DepthSeasoned          = 0.6
	DepthListed            = 0.4
)

const (
	recentRoles      = 2
	experiencedYears = 5.0
	seasonedYears    = 3.0
)

// SkillDepth scores how strongly the profile demonstrates each skill. A skill absent from the profile
// scores 0. A listed skill scores higher when one of the two most recent roles mentions it and with
// more total experience.
func SkillDepth(profile *types.Profile, required []string) map[string]float64 {
	depth := make(map[string]float64, len(required))
	if profile == nil {
		for _, skill := range required {
			depth[skill] = 0
		}
		return depth
	}

	for _, skill := range required {
		if !skills.Contains(profile.Skills, skill) {
			depth[skill] = 0
			continue
		}

		recent := false
		for _, entry := range profile.Experience[:min(len(profile.Experience), recentRoles)] {
			if skills.Mentions(entry.Title+" "+entry.Description, skill) {
				recent = true
				break
			}
		}

		switch {
		case recent && profile.TotalExperienceYears >= experiencedYears:
			depth[skill] = DepthRecentExperienced
		case recent:
			depth[skill] = DepthRecent
		case profile.TotalExperienceYears >= seasonedYears:
			depth[skill] = DepthSeasoned
		default:
			depth[skill] = DepthListed
		}
	}
	return depth
}
