package main

import (
	"fmt"

	"github.com/jonathan/interview-odds/internal/schemas"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Estimate interview odds for one job",
	Long:  "Parses the candidate sources, scores them against a job requirements JSON file and prints the match result.",
	RunE:  runScore,
}

var (
	scoreJob     string
	scoreUserID  string
	scoreTier    string
	scoreOutput  string
	scoreExplain bool
	scoreLearned bool
	scoreSources sourceFlags
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job requirements JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreUserID, "user-id", "u", "cli", "User the match is recorded for")
	scoreCmd.Flags().StringVarP(&scoreTier, "tier", "t", types.TierBasic, "Subscription tier")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().BoolVar(&scoreExplain, "explain", false, "Also generate the explanation")
	scoreCmd.Flags().BoolVar(&scoreLearned, "learned", false, "Annotate with the estimator trained on stored feedback")
	scoreSources.register(scoreCmd)

	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

// scoreOutputDoc is the score command's output when --explain is set.
type scoreOutputDoc struct {
	Match       *types.MatchResult      `json:"match"`
	Explanation *types.MatchExplanation `json:"explanation,omitempty"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var job types.JobRequirements
	if err := readJSON(scoreJob, schemas.JobRequirements, &job); err != nil {
		return err
	}
	sources, err := scoreSources.load()
	if err != nil {
		return err
	}
	if sources.IsEmpty() {
		return fmt.Errorf("at least one of --resume, --cover-letter or --social is required")
	}

	a, err := newApp(ctx, appOptions{learned: scoreLearned})
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.matcher.CalculateProbability(ctx, &types.ScoreRequest{
		UserID:           scoreUserID,
		Job:              &job,
		Sources:          sources,
		SubscriptionTier: scoreTier,
	})
	if err != nil {
		return fmt.Errorf("failed to score match: %w", err)
	}
	if verbose {
		a.printer.PrintMatchResult(result)
	}

	if !scoreExplain {
		return writeOutput(scoreOutput, result)
	}

	explanation, err := a.matcher.ExplainMatch(ctx, result.ID)
	if err != nil {
		return fmt.Errorf("failed to explain match: %w", err)
	}
	if verbose {
		a.printer.PrintMatchExplanation(explanation)
	}
	return writeOutput(scoreOutput, scoreOutputDoc{Match: result, Explanation: explanation})
}
