package types

import "sort"

// Tier is one subscription tier and its decision threshold.
type Tier struct {
	Name      string   `json:"name"`
	Threshold float64  `json:"threshold"`
	Review    bool     `json:"review"` // matches just below threshold are routed to human review
	Features  []string `json:"features,omitempty"`
}

// TierTable maps tier names to tiers.
type TierTable map[string]Tier

// Subscription tier names.
const (
	TierFreemium     = "freemium"
	TierStarter      = "starter"
	TierBasic        = "basic"
	TierProfessional = "professional"
	TierPremium      = "premium"
	TierElite        = "elite"
)

// ReviewFloor is the lowest interview probability eligible for human review.
const ReviewFloor = 0.50

// DefaultTiers returns the six standard subscription tiers.
func DefaultTiers() TierTable {
	return TierTable{
		TierFreemium: {
			Name:      TierFreemium,
			Threshold: 0.80,
			Features:  []string{"Top matches only", "Basic match score"},
		},
		TierStarter: {
			Name:      TierStarter,
			Threshold: 0.70,
			Features:  []string{"Strong matches", "Skill gap summary"},
		},
		TierBasic: {
			Name:      TierBasic,
			Threshold: 0.65,
			Features:  []string{"Good matches", "Skill gap analysis", "Match explanations"},
		},
		TierProfessional: {
			Name:      TierProfessional,
			Threshold: 0.60,
			Features:  []string{"Broader matching", "Detailed explanations", "Application tips"},
		},
		TierPremium: {
			Name:      TierPremium,
			Threshold: 0.55,
			Review:    true,
			Features:  []string{"Extended matching", "Human review of borderline matches", "Priority explanations"},
		},
		TierElite: {
			Name:      TierElite,
			Threshold: 0.55,
			Review:    true,
			Features:  []string{"Full matching", "Human review of borderline matches", "Dedicated career guidance"},
		},
	}
}

// Lookup returns the tier with the given name.
func (t TierTable) Lookup(name string) (Tier, bool) {
	tier, ok := t[name]
	return tier, ok
}

// Names returns the tier names sorted by descending threshold, then name.
func (t TierTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ti, tj := t[names[i]], t[names[j]]
		if ti.Threshold != tj.Threshold {
			return ti.Threshold > tj.Threshold
		}
		return names[i] < names[j]
	})
	return names
}
