package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain a stored match",
	RunE:  runExplain,
}

var (
	explainMatchID string
	explainOutput  string
)

func init() {
	explainCmd.Flags().StringVarP(&explainMatchID, "match-id", "m", "", "Match ID (required)")
	explainCmd.Flags().StringVarP(&explainOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := explainCmd.MarkFlagRequired("match-id"); err != nil {
		panic(fmt.Sprintf("failed to mark match-id flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	matchID, err := uuid.Parse(explainMatchID)
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", explainMatchID, err)
	}

	a, err := newApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireDurable("explain"); err != nil {
		return err
	}

	explanation, err := a.matcher.ExplainMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if verbose {
		a.printer.PrintMatchExplanation(explanation)
	}
	return writeOutput(explainOutput, explanation)
}
