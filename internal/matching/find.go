package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/interview-odds/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FindMatches scores the candidate against every job and returns the actionable results (threshold
// met or routed to review) ordered by interview probability, highest first. A job that fails to
// score is logged and skipped. topK <= 0 returns every actionable result.
func (m *Matcher) FindMatches(
	ctx context.Context,
	userID string,
	jobs []*types.JobRequirements,
	sources types.ProfileSources,
	tierName string,
	topK int,
) ([]*types.MatchResult, error) {
	tier, err := m.lookupTier(tierName)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, &ValidationError{Field: "user_id", Message: "user id is required"}
	}

	profile := m.parser.ParseProfile(sources)
	results := make([]*types.MatchResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(m.maxConcurrency)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := m.scoreJob(ctx, userID, job, profile, tier)
			if err != nil {
				m.logger.Warn("skipping job that failed to score",
					zap.Int("index", i),
					zap.String("job_id", jobID(job)),
					zap.Error(err))
				return nil
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("matching canceled: %w", err)
	}

	actionable := make([]*types.MatchResult, 0, len(results))
	for _, result := range results {
		if result != nil && result.Actionable() {
			actionable = append(actionable, result)
		}
	}
	sort.SliceStable(actionable, func(i, j int) bool {
		return actionable[i].InterviewProbability > actionable[j].InterviewProbability
	})
	if topK > 0 && len(actionable) > topK {
		actionable = actionable[:topK]
	}

	m.logger.Info("found matches",
		zap.String("user_id", userID),
		zap.Int("jobs", len(jobs)),
		zap.Int("actionable", len(actionable)))
	return actionable, nil
}

func (m *Matcher) scoreJob(
	ctx context.Context,
	userID string,
	job *types.JobRequirements,
	profile *types.Profile,
	tier types.Tier,
) (*types.MatchResult, error) {
	if job == nil {
		return nil, &ValidationError{Field: "job", Message: "job requirements are required"}
	}
	if err := job.Validate(); err != nil {
		return nil, fromValidator(err)
	}
	return m.score(ctx, userID, job, profile, tier)
}

func jobID(job *types.JobRequirements) string {
	if job == nil {
		return ""
	}
	return job.ID
}
