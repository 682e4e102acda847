package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		input string
		want  Outcome
		ok    bool
		score float64
	}{
		{"rejected", OutcomeRejected, true, 0.0},
		{"interview", OutcomeInterview, true, 0.5},
		{"offer", OutcomeOffer, true, 1.0},
		{"accepted", OutcomeAccepted, true, 1.0},
		{"declined", OutcomeDeclined, true, 1.0},
		{"Offer", "", false, 0},
		{"ghosted", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseOutcome(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.score, got.Score())
			}
		})
	}
}

func TestFeedbackRequest_Validate(t *testing.T) {
	rating := 4
	valid := FeedbackRequest{MatchID: uuid.New(), Outcome: "offer", UserRating: &rating}
	require.NoError(t, valid.Validate())

	badRating := 6
	tests := []struct {
		name string
		req  FeedbackRequest
	}{
		{"missing match", FeedbackRequest{Outcome: "offer"}},
		{"unknown outcome", FeedbackRequest{MatchID: uuid.New(), Outcome: "ghosted"}},
		{"rating out of range", FeedbackRequest{MatchID: uuid.New(), Outcome: "offer", UserRating: &badRating}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestTrainingDataPoint_Features(t *testing.T) {
	p := TrainingDataPoint{
		SkillOverlap:    0.75,
		ExperienceYears: 7,
		SeniorityGap:    -1,
		IndustryMatch:   true,
		EducationLevel:  3,
	}
	features := p.Features()

	assert.Len(t, features, len(FeatureNames))
	for _, name := range FeatureNames {
		assert.Contains(t, features, name)
	}
	assert.Equal(t, 0.75, features[FeatureSkillOverlap])
	assert.Equal(t, -1.0, features[FeatureSeniorityGap])
	assert.Equal(t, 1.0, features[FeatureIndustryMatch])
	assert.Equal(t, 0.0, features[FeatureLocationMatch])
}

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers()
	require.Len(t, tiers, 6)

	expected := map[string]float64{
		TierFreemium:     0.80,
		TierStarter:      0.70,
		TierBasic:        0.65,
		TierProfessional: 0.60,
		TierPremium:      0.55,
		TierElite:        0.55,
	}
	for name, threshold := range expected {
		tier, ok := tiers.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, threshold, tier.Threshold, name)
		assert.NotEmpty(t, tier.Features, name)
	}

	premium, _ := tiers.Lookup(TierPremium)
	elite, _ := tiers.Lookup(TierElite)
	basic, _ := tiers.Lookup(TierBasic)
	assert.True(t, premium.Review)
	assert.True(t, elite.Review)
	assert.False(t, basic.Review)

	_, ok := tiers.Lookup("platinum")
	assert.False(t, ok)

	assert.Equal(t,
		[]string{TierFreemium, TierStarter, TierBasic, TierProfessional, TierElite, TierPremium},
		tiers.Names())
}

func TestSeniorityLevel_Rank(t *testing.T) {
	assert.Equal(t, 0, SeniorityEntry.Rank())
	assert.Equal(t, 4, SeniorityExecutive.Rank())
	assert.Equal(t, -1, SeniorityLevel("intern").Rank())
}

func TestMatchResult_Actionable(t *testing.T) {
	assert.True(t, (&MatchResult{ThresholdMet: true}).Actionable())
	assert.True(t, (&MatchResult{RequiresHumanReview: true}).Actionable())
	assert.False(t, (&MatchResult{}).Actionable())
}

func TestScoreRequest_ValidateNestedJob(t *testing.T) {
	req := ScoreRequest{UserID: "u1", SubscriptionTier: TierBasic, Job: &JobRequirements{Title: "Engineer"}}
	require.NoError(t, req.Validate())

	req.Job = &JobRequirements{Title: "Engineer", EducationLevel: 7}
	assert.Error(t, req.Validate())

	req.Job = nil
	assert.Error(t, req.Validate())
}
