package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-odds/internal/types"
)

// seniorityKeywords are checked from the highest level down.
var seniorityKeywords = []struct {
	level   types.SeniorityLevel
	pattern *regexp.Regexp
}{
	{types.SeniorityExecutive, regexp.MustCompile(`(?i)\b(?:chief|cto|ceo|cfo|coo|cio|vp|vice president|director|head of|president)\b`)},
	{types.SeniorityLead, regexp.MustCompile(`(?i)\b(?:lead|principal|staff|manager|architect)\b`)},
	{types.SenioritySenior, regexp.MustCompile(`(?i)\b(?:senior|sr)\b`)},
	{types.SeniorityMid, regexp.MustCompile(`(?i)\b(?:mid|mid-level|intermediate)\b`)},
	{types.SeniorityEntry, regexp.MustCompile(`(?i)\b(?:junior|jr|intern|internship|entry|entry-level|graduate|trainee|apprentice)\b`)},
}

// seniorityTitleWindow is the number of most recent titles consulted.
const seniorityTitleWindow = 2

// inferSeniority derives a level from the most recent titles, falling back to total years of experience.
func inferSeniority(experience []types.ExperienceEntry, totalYears float64) types.SeniorityLevel {
	for _, s := range seniorityKeywords {
		for _, entry := range experience[:min(len(experience), seniorityTitleWindow)] {
			if s.pattern.MatchString(entry.Title) {
				return s.level
			}
		}
	}
	return SeniorityFromYears(totalYears)
}

// SeniorityFromYears maps total years of experience onto the seniority ladder.
// The ladder never infers lead or executive; those come from titles only.
func SeniorityFromYears(years float64) types.SeniorityLevel {
	switch {
	case years >= 10:
		return types.SenioritySenior
	case years >= 2:
		return types.SeniorityMid
	default:
		return types.SeniorityEntry
	}
}

// ParseSeniority maps a seniority label ("Senior", "junior", "VP") onto the ladder.
// An unrecognized label yields the empty level.
func ParseSeniority(label string) types.SeniorityLevel {
	level := types.SeniorityLevel(strings.ToLower(strings.TrimSpace(label)))
	if level.Rank() >= 0 {
		return level
	}
	for _, s := range seniorityKeywords {
		if s.pattern.MatchString(label) {
			return s.level
		}
	}
	return ""
}
