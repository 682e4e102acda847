// Package main provides the match_agent CLI: interview-odds scoring, explanations, outcome feedback and training.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Interview odds estimator",
	Long: "match_agent estimates the probability that a job application leads to an interview or offer, " +
		"explains the estimate, records reported outcomes and retrains the learned estimator from them.",
	SilenceUsage: true,
}

var (
	configPath string
	debugLog   bool
	jsonLog    bool
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML, JSON or TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "JSON log format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
