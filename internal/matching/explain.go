package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/logger"
	"github.com/jonathan/interview-odds/internal/prompts"
	"github.com/jonathan/interview-odds/internal/ranking"
	"github.com/jonathan/interview-odds/internal/types"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// Confidence blends profile completeness with how consistent the component scores are.
const (
	confidenceCompletenessWeight = 0.6
	confidenceConsistencyWeight  = 0.4
	maxComponentVariance         = 0.3
)

// Probability and component rating buckets, highest first.
var ratingBuckets = []struct {
	floor float64
	label string
}{
	{0.80, "Excellent"},
	{0.70, "Strong"},
	{0.60, "Good"},
	{0.50, "Moderate"},
}

func rating(value float64) string {
	for _, bucket := range ratingBuckets {
		if value >= bucket.floor {
			return bucket.label
		}
	}
	return "Weak"
}

// ExplainMatch produces the narrative explanation of a stored match. Cached explanations are
// returned as is. The detailed reasoning comes from the completion provider when one is configured
// and answers in time, otherwise from deterministic rules.
func (m *Matcher) ExplainMatch(ctx context.Context, matchID uuid.UUID) (*types.MatchExplanation, error) {
	if m.cache != nil {
		cached, err := m.cache.Get(ctx, matchID)
		if err != nil {
			m.logger.Warn("explanation cache read failed",
				zap.String("match_id", matchID.String()),
				zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	match, md, err := m.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	explanation := &types.MatchExplanation{
		MatchID:         match.ID,
		Summary:         summarize(match, md),
		Components:      analyzeComponents(match.Components),
		Recommendations: recommendations(match),
		ApplicationTips: applicationTips(match),
		Confidence:      explanationConfidence(md.ProfileCompleteness, match.Components),
		GeneratedAt:     m.now().UTC(),
	}
	explanation.DetailedReasoning, explanation.ReasoningSource = m.reasoning(ctx, match, md)

	if m.cache != nil {
		if err := m.cache.Set(ctx, explanation); err != nil {
			m.logger.Warn("explanation cache write failed",
				zap.String("match_id", matchID.String()),
				zap.Error(err))
		}
	}
	return explanation, nil
}

func summarize(match *types.MatchResult, md *matchMetadata) string {
	title := md.JobTitle
	if title == "" {
		title = "this role"
	}
	data := map[string]string{
		"Rating":               rating(match.InterviewProbability),
		"JobTitle":             title,
		"InterviewProbability": percent(match.InterviewProbability),
	}
	summary, err := prompts.Render(prompts.ExplanationFile, prompts.MatchSummary, data)
	if err != nil {
		return fmt.Sprintf("%s match for %s: %s estimated interview probability.",
			data["Rating"], data["JobTitle"], data["InterviewProbability"])
	}
	return summary
}

func percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// componentText holds the analysis sentences of one component for high, middling and low scores.
type componentText struct {
	name string
	high string
	mid  string
	low  string
}

var componentTexts = []componentText{
	{
		name: types.ComponentSkillDepth,
		high: "Your skills cover the role's requirements and are backed by recent hands-on use.",
		mid:  "You have most of the listed skills, but several are not demonstrated in recent roles.",
		low:  "Important required skills are missing or only listed without recent use.",
	},
	{
		name: types.ComponentExperienceRelevance,
		high: "Your years of experience fit the range the role asks for.",
		mid:  "Your experience is close to the requested range.",
		low:  "Your experience falls well short of what the role asks for.",
	},
	{
		name: types.ComponentSeniorityMatch,
		high: "Your seniority lines up with the level of the role.",
		mid:  "Your seniority is one step away from the level of the role.",
		low:  "Your seniority differs noticeably from the level of the role.",
	},
	{
		name: types.ComponentIndustryFit,
		high: "You have worked in the same industry.",
		mid:  "Your industry background is adjacent rather than identical.",
		low:  "Your background shows little overlap with the role's industry.",
	},
	{
		name: types.ComponentEducationMatch,
		high: "Your education meets the stated requirement.",
		mid:  "Your education is close to the stated requirement.",
		low:  "Your education is below the stated requirement.",
	},
}

func componentValue(c types.ComponentScores, name string) float64 {
	switch name {
	case types.ComponentSkillDepth:
		return c.SkillDepth
	case types.ComponentExperienceRelevance:
		return c.ExperienceRelevance
	case types.ComponentSeniorityMatch:
		return c.SeniorityMatch
	case types.ComponentIndustryFit:
		return c.IndustryFit
	case types.ComponentEducationMatch:
		return c.EducationMatch
	default:
		return 0
	}
}

func analyzeComponents(c types.ComponentScores) []types.ComponentAnalysis {
	analyses := make([]types.ComponentAnalysis, 0, len(componentTexts))
	for _, text := range componentTexts {
		score := componentValue(c, text.name)
		analysis := text.low
		switch {
		case score >= 0.8:
			analysis = text.high
		case score >= 0.5:
			analysis = text.mid
		}
		analyses = append(analyses, types.ComponentAnalysis{
			Component: text.name,
			Score:     score,
			Rating:    rating(score),
			Analysis:  analysis,
		})
	}
	return analyses
}

// reasoning returns the detailed paragraph and where it came from.
func (m *Matcher) reasoning(ctx context.Context, match *types.MatchResult, md *matchMetadata) (string, string) {
	if m.completer == nil {
		return ruleReasoning(match), types.ReasoningSourceRules
	}

	prompt, err := prompts.Render(prompts.ExplanationFile, prompts.MatchReasoning, reasoningData(match, md))
	if err != nil {
		m.logger.Warn("failed to build reasoning prompt", zap.Error(err))
		return ruleReasoning(match), types.ReasoningSourceRules
	}

	completionCtx, cancel := context.WithTimeout(ctx, m.completionTimeout)
	defer cancel()

	text, err := m.completer.Complete(completionCtx, prompt, m.temperature)
	if err == nil && strings.TrimSpace(text) == "" {
		err = fmt.Errorf("empty completion")
	}
	if err != nil {
		m.logger.Warn("completion provider unavailable, using rule-based reasoning",
			zap.String("match_id", match.ID.String()),
			zap.String("prompt", logger.TruncateForLog(prompt, 120)),
			zap.Error(err))
		return ruleReasoning(match), types.ReasoningSourceRules
	}
	return strings.TrimSpace(text), types.ReasoningSourceProvider
}

func reasoningData(match *types.MatchResult, md *matchMetadata) map[string]string {
	var components strings.Builder
	for _, text := range componentTexts {
		fmt.Fprintf(&components, "- %s: %.2f\n", text.name, componentValue(match.Components, text.name))
	}
	extras := make([]string, 0, len(md.ComponentScores))
	for name := range md.ComponentScores {
		if name == types.ComponentKeywordDensity || name == types.ComponentRecency {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		fmt.Fprintf(&components, "- %s: %.2f\n", name, md.ComponentScores[name])
	}

	company := md.JobCompany
	if company == "" {
		company = "an unnamed company"
	}
	title := md.JobTitle
	if title == "" {
		title = "Unspecified role"
	}
	return map[string]string{
		"JobTitle":             title,
		"Company":              company,
		"InterviewProbability": percent(match.InterviewProbability),
		"OverallScore":         fmt.Sprintf("%.1f", match.OverallScore),
		"Components":           strings.TrimRight(components.String(), "\n"),
		"Strengths":            bulletList(match.Strengths),
		"CriticalGaps":         bulletList(match.CriticalGaps),
		"MinorGaps":            bulletList(match.MinorGaps),
	}
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- none"
	}
	return "- " + strings.Join(items, "\n- ")
}

// ruleReasoning assembles the detailed paragraph from the component thresholds alone.
func ruleReasoning(match *types.MatchResult) string {
	sentences := []string{
		fmt.Sprintf("Your estimated interview probability is %s, a %s match with an overall score of %.0f out of 100.",
			percent(match.InterviewProbability), strings.ToLower(rating(match.InterviewProbability)), match.OverallScore),
	}

	var strong, weak []string
	for _, text := range componentTexts {
		score := componentValue(match.Components, text.name)
		switch {
		case score >= 0.8:
			strong = append(strong, text.high)
		case score < 0.5:
			weak = append(weak, text.low)
		}
	}
	sentences = append(sentences, strong...)
	sentences = append(sentences, weak...)

	if len(match.CriticalGaps) > 0 {
		sentences = append(sentences, fmt.Sprintf("The most important gap to address: %s.",
			strings.TrimSuffix(match.CriticalGaps[0], ".")))
	}
	if match.RequiresHumanReview {
		sentences = append(sentences, "This match sits just below your tier's threshold and will be reviewed before it is surfaced.")
	}
	return strings.Join(sentences, " ")
}

// recommendations suggests improvements for the weakest components.
func recommendations(match *types.MatchResult) []string {
	c := match.Components
	var recs []string

	if missing := missingSkills(match.CriticalGaps); c.SkillDepth < 0.6 && len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Build hands-on experience with %s and show it in a recent role or project.",
			strings.Join(missing, ", ")))
	} else if c.SkillDepth < 0.6 {
		recs = append(recs, "Describe how you used the listed skills in your most recent roles, not just that you have them.")
	}
	if c.ExperienceRelevance < 0.6 {
		recs = append(recs, "Highlight projects, freelance work or responsibilities that add to your relevant experience.")
	}
	if c.SeniorityMatch < 0.6 {
		recs = append(recs, "Consider roles closer to your current seniority, or show scope and ownership that match this level.")
	}
	if c.IndustryFit < 0.6 {
		recs = append(recs, "Connect your past work to the problems of this industry in your summary.")
	}
	if c.EducationMatch < 0.6 {
		recs = append(recs, "Add relevant certifications or coursework to offset the education requirement.")
	}
	if len(match.MinorGaps) > 0 && len(recs) < ranking.MaxListEntries {
		recs = append(recs, fmt.Sprintf("Picking up %s would strengthen the application further.",
			strings.Join(missingSkills(match.MinorGaps), ", ")))
	}
	if len(recs) == 0 {
		recs = append(recs, "Your profile aligns well with this role. Keep it current and apply.")
	}
	return capList(recs)
}

// applicationTips gives application advice keyed off the strongest and weakest signals.
func applicationTips(match *types.MatchResult) []string {
	var tips []string
	if match.InterviewProbability >= 0.7 {
		tips = append(tips, "Apply soon: strong matches are worth prioritizing.")
	}

	best := strongestComponent(match.Components)
	if componentValue(match.Components, best) >= 0.8 {
		tips = append(tips, fmt.Sprintf("Lead with your %s in the first lines of your resume and cover letter.",
			strings.ReplaceAll(best, "_", " ")))
	}
	if len(match.CriticalGaps) > 0 {
		tips = append(tips, "Address your main gap directly in the cover letter and show how you are closing it.")
	}
	if match.Components.SkillDepth < 0.8 {
		tips = append(tips, "Mirror the posting's skill names in your resume where they truthfully apply.")
	}
	tips = append(tips, "Quantify outcomes in your recent roles with numbers where you can.")
	return capList(tips)
}

func strongestComponent(c types.ComponentScores) string {
	best := componentTexts[0].name
	for _, text := range componentTexts[1:] {
		if componentValue(c, text.name) > componentValue(c, best) {
			best = text.name
		}
	}
	return best
}

// missingSkills extracts skill names from gap messages of the form "Missing ... skill: X".
func missingSkills(gaps []string) []string {
	var names []string
	for _, gap := range gaps {
		if idx := strings.Index(gap, "skill: "); idx >= 0 {
			names = append(names, strings.TrimSpace(gap[idx+len("skill: "):]))
		}
	}
	return names
}

func capList(items []string) []string {
	if len(items) > ranking.MaxListEntries {
		return items[:ranking.MaxListEntries]
	}
	return items
}

// explanationConfidence is 0.6 x completeness plus 0.4 x the consistency of the five component scores.
func explanationConfidence(completeness float64, c types.ComponentScores) float64 {
	_, variance := stat.PopMeanVariance(c.Values(), nil)
	consistency := 1 - math.Min(variance, maxComponentVariance)/maxComponentVariance
	confidence := confidenceCompletenessWeight*completeness + confidenceConsistencyWeight*consistency
	return math.Max(0, math.Min(1, confidence))
}
