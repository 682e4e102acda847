package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/interview-odds/internal/parsing"
	"github.com/jonathan/interview-odds/internal/schemas"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/spf13/cobra"
)

// sourceFlags are the candidate source files shared by score and find.
type sourceFlags struct {
	resume      string
	coverLetter string
	social      string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.resume, "resume", "r", "", "Path to resume text or HTML")
	cmd.Flags().StringVar(&f.coverLetter, "cover-letter", "", "Path to cover letter text")
	cmd.Flags().StringVar(&f.social, "social", "", "Path to social profile JSON")
}

func (f *sourceFlags) load() (types.ProfileSources, error) {
	var sources types.ProfileSources
	if f.resume != "" {
		content, err := os.ReadFile(f.resume)
		if err != nil {
			return sources, fmt.Errorf("failed to read resume file %s: %w", f.resume, err)
		}
		sources.Resume = string(content)
	}
	if f.coverLetter != "" {
		content, err := os.ReadFile(f.coverLetter)
		if err != nil {
			return sources, fmt.Errorf("failed to read cover letter file %s: %w", f.coverLetter, err)
		}
		sources.CoverLetter = string(content)
	}
	if f.social != "" {
		content, err := readValidated(f.social, schemas.SocialProfile)
		if err != nil {
			return sources, err
		}
		profile, err := parsing.DecodeSocialProfile(content)
		if err != nil {
			return sources, err
		}
		sources.Social = profile
	}
	return sources, nil
}

// readValidated reads a JSON document and checks it against the named schema.
func readValidated(path, schema string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.Validate(schema, content); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return content, nil
}

func readJSON(path, schema string, v any) error {
	content, err := readValidated(path, schema)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeOutput writes v as indented JSON to path, or to stdout when path is empty.
func writeOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	jsonOutput = append(jsonOutput, '\n')

	if path == "" {
		_, err := os.Stdout.Write(jsonOutput)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
