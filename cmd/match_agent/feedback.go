package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/schemas"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record the outcome of an application",
	Long: "Records a reported outcome (" + outcomeList() + ") for a stored match and appends the " +
		"corresponding training point. Pass flags, or a feedback JSON document with --file.",
	RunE: runFeedback,
}

var (
	feedbackFile       string
	feedbackMatchID    string
	feedbackOutcome    string
	feedbackAppliedAt  string
	feedbackResponseAt string
	feedbackRounds     int
	feedbackRating     int
	feedbackNotes      string
	feedbackOutput     string
)

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackFile, "file", "f", "", "Path to feedback request JSON file")
	feedbackCmd.Flags().StringVarP(&feedbackMatchID, "match-id", "m", "", "Match ID")
	feedbackCmd.Flags().StringVar(&feedbackOutcome, "outcome", "", "Outcome: "+outcomeList())
	feedbackCmd.Flags().StringVar(&feedbackAppliedAt, "applied-at", "", "Application time (RFC3339)")
	feedbackCmd.Flags().StringVar(&feedbackResponseAt, "response-at", "", "Response time (RFC3339)")
	feedbackCmd.Flags().IntVar(&feedbackRounds, "rounds", -1, "Interview rounds")
	feedbackCmd.Flags().IntVar(&feedbackRating, "rating", 0, "User rating 1-5")
	feedbackCmd.Flags().StringVar(&feedbackNotes, "notes", "", "Free-text notes")
	feedbackCmd.Flags().StringVarP(&feedbackOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(feedbackCmd)
}

func outcomeList() string {
	names := make([]string, 0, len(types.Outcomes))
	for _, o := range types.Outcomes {
		names = append(names, string(o))
	}
	return strings.Join(names, ", ")
}

// feedbackRequest builds the request from --file or from individual flags.
func feedbackRequest() (*types.FeedbackRequest, error) {
	if feedbackFile != "" {
		var req types.FeedbackRequest
		if err := readJSON(feedbackFile, schemas.FeedbackRequest, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	matchID, err := uuid.Parse(feedbackMatchID)
	if err != nil {
		return nil, fmt.Errorf("invalid match id %q: %w", feedbackMatchID, err)
	}
	if _, ok := types.ParseOutcome(feedbackOutcome); !ok {
		return nil, fmt.Errorf("invalid outcome %q: must be one of %s", feedbackOutcome, outcomeList())
	}

	req := &types.FeedbackRequest{
		MatchID: matchID,
		Outcome: feedbackOutcome,
		Notes:   feedbackNotes,
	}
	if req.AppliedAt, err = parseTimeFlag("applied-at", feedbackAppliedAt); err != nil {
		return nil, err
	}
	if req.ResponseAt, err = parseTimeFlag("response-at", feedbackResponseAt); err != nil {
		return nil, err
	}
	if feedbackRounds >= 0 {
		rounds := feedbackRounds
		req.InterviewRounds = &rounds
	}
	if feedbackRating != 0 {
		rating := feedbackRating
		req.UserRating = &rating
	}
	return req, nil
}

func parseTimeFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return &t, nil
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req, err := feedbackRequest()
	if err != nil {
		return err
	}

	a, err := newApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireDurable("feedback"); err != nil {
		return err
	}

	feedback, err := a.matcher.RecordFeedback(ctx, req)
	if err != nil {
		return err
	}
	return writeOutput(feedbackOutput, feedback)
}
