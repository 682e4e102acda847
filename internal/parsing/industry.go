package parsing

import (
	"regexp"
	"sort"

	"github.com/jonathan/interview-odds/internal/types"
)

var industryKeywords = map[string]*regexp.Regexp{
	"technology":         regexp.MustCompile(`(?i)\b(?:software|saas|tech|technology|cloud|platform|internet|startup)\b`),
	"finance":            regexp.MustCompile(`(?i)\b(?:bank|banking|fintech|finance|financial|trading|investment|insurance|payments)\b`),
	"healthcare":         regexp.MustCompile(`(?i)\b(?:health|healthcare|hospital|medical|clinical|pharma|pharmaceutical|biotech)\b`),
	"education":          regexp.MustCompile(`(?i)\b(?:education|edtech|academic|teaching|e-learning)\b`),
	"retail":             regexp.MustCompile(`(?i)\b(?:retail|e-commerce|ecommerce|marketplace|consumer goods)\b`),
	"consulting":         regexp.MustCompile(`(?i)\b(?:consulting|consultancy|advisory)\b`),
	"government":         regexp.MustCompile(`(?i)\b(?:government|public sector|federal|municipal|defense)\b`),
	"media":              regexp.MustCompile(`(?i)\b(?:media|publishing|entertainment|gaming|news|streaming)\b`),
	"manufacturing":      regexp.MustCompile(`(?i)\b(?:manufacturing|automotive|industrial|factory)\b`),
	"telecommunications": regexp.MustCompile(`(?i)\b(?:telecom|telecommunications|wireless)\b`),
}

// inferIndustries collects the industries mentioned by any experience entry, sorted.
func inferIndustries(experience []types.ExperienceEntry) []string {
	found := make(map[string]struct{})
	for _, entry := range experience {
		text := entry.Title + " " + entry.Company + " " + entry.Description
		for industry, pattern := range industryKeywords {
			if pattern.MatchString(text) {
				found[industry] = struct{}{}
			}
		}
	}

	industries := make([]string, 0, len(found))
	for industry := range found {
		industries = append(industries, industry)
	}
	sort.Strings(industries)
	return industries
}

// IndustryOf returns the industry an arbitrary text (a job description, for instance) points at.
// The result is empty when no industry keyword is recognized.
func IndustryOf(text string) []string {
	return inferIndustries([]types.ExperienceEntry{{Description: text}})
}
