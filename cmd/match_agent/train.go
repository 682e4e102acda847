package main

import (
	"fmt"

	"github.com/jonathan/interview-odds/internal/schemas"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the learned estimator and report its metrics",
	Long: "Trains the ensemble on a training points JSON file, or on the feedback recorded in the database, " +
		"and prints the evaluation metrics of the held-out split.",
	RunE: runTrain,
}

var (
	trainPoints      string
	trainOutput      string
	trainIncremental bool
)

func init() {
	trainCmd.Flags().StringVarP(&trainPoints, "points", "p", "", "Path to training points JSON array (default: stored feedback)")
	trainCmd.Flags().StringVarP(&trainOutput, "out", "o", "", "Path to output metrics JSON file (default stdout)")
	trainCmd.Flags().BoolVar(&trainIncremental, "incremental", false, "Run as an incremental update on the supplied batch")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	var points []types.TrainingDataPoint
	if trainPoints != "" {
		if err := readJSON(trainPoints, schemas.TrainingPoints, &points); err != nil {
			return err
		}
	} else {
		if err := a.requireDurable("train without --points"); err != nil {
			return err
		}
		if points, err = a.store.ListTrainingPoints(ctx); err != nil {
			return err
		}
	}

	a.logger.Info("training", zap.Int("points", len(points)), zap.Bool("incremental", trainIncremental))
	train := a.learner.Train
	if trainIncremental {
		train = a.learner.IncrementalUpdate
	}
	metrics, err := train(ctx, points)
	if err != nil {
		return fmt.Errorf("failed to train: %w", err)
	}
	a.logger.Debug("training history",
		zap.Int("runs", len(a.learner.History())),
		zap.Bool("retrain_due", a.learner.ShouldRetrain(a.cfg.Learning.MinNewSamples, a.cfg.Learning.MaxDaysSinceTraining)))
	if verbose {
		a.printer.PrintTrainingMetrics(metrics)
	}
	return writeOutput(trainOutput, metrics)
}
