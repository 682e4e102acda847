package main

import (
	"fmt"

	"github.com/jonathan/interview-odds/internal/schemas"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Rank a list of jobs by interview odds",
	Long:  "Scores the candidate against every job in a JSON array and prints the actionable matches for the tier, best first.",
	RunE:  runFind,
}

var (
	findJobs    string
	findUserID  string
	findTier    string
	findTopK    int
	findOutput  string
	findLearned bool
	findSources sourceFlags
)

func init() {
	findCmd.Flags().StringVarP(&findJobs, "jobs", "j", "", "Path to JSON array of job requirements (required)")
	findCmd.Flags().StringVarP(&findUserID, "user-id", "u", "cli", "User the matches are recorded for")
	findCmd.Flags().StringVarP(&findTier, "tier", "t", types.TierBasic, "Subscription tier")
	findCmd.Flags().IntVarP(&findTopK, "top-k", "k", 0, "Maximum matches to return (default from config)")
	findCmd.Flags().StringVarP(&findOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	findCmd.Flags().BoolVar(&findLearned, "learned", false, "Annotate with the estimator trained on stored feedback")
	findSources.register(findCmd)

	if err := findCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var jobs []*types.JobRequirements
	if err := readJSON(findJobs, schemas.Jobs, &jobs); err != nil {
		return err
	}
	sources, err := findSources.load()
	if err != nil {
		return err
	}

	a, err := newApp(ctx, appOptions{learned: findLearned})
	if err != nil {
		return err
	}
	defer a.Close()

	topK := findTopK
	if topK <= 0 {
		topK = a.cfg.Matching.TopK
	}

	results, err := a.matcher.FindMatches(ctx, findUserID, jobs, sources, findTier, topK)
	if err != nil {
		return fmt.Errorf("failed to find matches: %w", err)
	}
	if verbose {
		for _, result := range results {
			a.printer.PrintMatchResult(result)
		}
	}
	return writeOutput(findOutput, results)
}
