// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-odds/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow items under a heading.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintProfile outputs a human-readable summary of a parsed candidate profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	seniority := string(profile.SeniorityLevel)
	if seniority == "" {
		seniority = "unknown"
	}
	sb.WriteString(fmt.Sprintf("Experience: %.1f years (%s)\n", profile.TotalExperienceYears, seniority))
	sb.WriteString(fmt.Sprintf("Education:  tier %d\n", profile.HighestEducationLevel))
	if len(profile.Industries) > 0 {
		sb.WriteString(fmt.Sprintf("Industries: %s\n", strings.Join(profile.Industries, ", ")))
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", profile.Skills)

	roles := make([]string, 0, len(profile.Experience))
	for _, entry := range profile.Experience {
		roles = append(roles, fmt.Sprintf("%s, %s (%d-%d)", entry.Title, entry.Company, entry.StartYear, entry.EndYear))
	}
	writeList(&sb, "Roles", roles)
	writeList(&sb, "Certifications", profile.Certifications)

	p.printBox("PARSED CANDIDATE PROFILE", sb.String())
}

// PrintMatchResult outputs the scores and decision of a match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:     %s\n", result.ID))
	if result.JobID != "" {
		sb.WriteString(fmt.Sprintf("Job:       %s\n", result.JobID))
	}
	sb.WriteString(fmt.Sprintf("Interview: %.1f%%\n", result.InterviewProbability*100))
	sb.WriteString(fmt.Sprintf("Offer:     %.1f%%\n", result.OfferProbability*100))
	sb.WriteString(fmt.Sprintf("Score:     %.1f / 100\n", result.OverallScore))
	if learned, ok := result.Metadata[types.MetaLearnedProbability].(float64); ok {
		sb.WriteString(fmt.Sprintf("Learned:   %.1f%%\n", learned*100))
	}

	decision := "below threshold"
	switch {
	case result.ThresholdMet:
		decision = "threshold met"
	case result.RequiresHumanReview:
		decision = "human review"
	}
	sb.WriteString(fmt.Sprintf("Tier:      %s (%s)\n\n", result.SubscriptionTier, decision))

	c := result.Components
	sb.WriteString("Components:\n")
	sb.WriteString(fmt.Sprintf("  %-22s %.2f\n", types.ComponentSkillDepth, c.SkillDepth))
	sb.WriteString(fmt.Sprintf("  %-22s %.2f\n", types.ComponentExperienceRelevance, c.ExperienceRelevance))
	sb.WriteString(fmt.Sprintf("  %-22s %.2f\n", types.ComponentSeniorityMatch, c.SeniorityMatch))
	sb.WriteString(fmt.Sprintf("  %-22s %.2f\n", types.ComponentIndustryFit, c.IndustryFit))
	sb.WriteString(fmt.Sprintf("  %-22s %.2f\n", types.ComponentEducationMatch, c.EducationMatch))
	sb.WriteString("\n")

	writeList(&sb, "Strengths", result.Strengths)
	writeList(&sb, "Critical gaps", result.CriticalGaps)
	writeList(&sb, "Minor gaps", result.MinorGaps)

	p.printBox("MATCH RESULT", sb.String())
}

// PrintMatchExplanation outputs a generated explanation.
func (p *Printer) PrintMatchExplanation(explanation *types.MatchExplanation) {
	if explanation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(explanation.Summary + "\n\n")
	for _, c := range explanation.Components {
		sb.WriteString(fmt.Sprintf("%s: %s (%.2f)\n", c.Component, c.Rating, c.Score))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Reasoning (%s):\n", explanation.ReasoningSource))
	for _, line := range wrap(explanation.DetailedReasoning, boxWidth-6) {
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("\n")
	writeList(&sb, "Recommendations", explanation.Recommendations)
	writeList(&sb, "Application tips", explanation.ApplicationTips)
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", explanation.Confidence*100))

	p.printBox("MATCH EXPLANATION", sb.String())
}

// PrintTrainingMetrics outputs the evaluation of a training run.
func (p *Printer) PrintTrainingMetrics(metrics *types.TrainingMetrics) {
	if metrics == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Samples:     %d train / %d validation\n", metrics.TrainingSamples, metrics.ValidationSamples))
	sb.WriteString(fmt.Sprintf("Accuracy:    %.3f\n", metrics.Accuracy))
	sb.WriteString(fmt.Sprintf("Precision:   %.3f\n", metrics.Precision))
	sb.WriteString(fmt.Sprintf("Recall:      %.3f\n", metrics.Recall))
	sb.WriteString(fmt.Sprintf("F1:          %.3f\n", metrics.F1))
	sb.WriteString(fmt.Sprintf("AUC:         %.3f\n", metrics.AUC))
	sb.WriteString(fmt.Sprintf("Brier:       %.3f\n", metrics.BrierScore))
	sb.WriteString(fmt.Sprintf("Calibration: %.3f\n\n", metrics.CalibrationError))

	importances := make([]string, 0, len(metrics.FeatureImportance))
	for _, fi := range metrics.FeatureImportance {
		importances = append(importances, fmt.Sprintf("%s %.3f", fi.Feature, fi.Importance))
	}
	writeList(&sb, "Top features", importances)

	p.printBox("TRAINING METRICS", sb.String())
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
