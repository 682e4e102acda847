package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/interview-odds/internal/types"
)

// degreePatterns are checked from the highest tier down; the first tier that matches a line wins.
var degreePatterns = []struct {
	level   int
	pattern *regexp.Regexp
}{
	{types.DegreePhD, regexp.MustCompile(`(?i)\bph\.?\s?d\b|\bdoctorate\b|\bdoctor of\b`)},
	{types.DegreeMaster, regexp.MustCompile(`(?i)\bmaster|\bmba\b|\bm\.s\.|\bmsc\b|\bm\.sc\b|\bm\.eng\b|\bm\.a\.`)},
	{types.DegreeBachelor, regexp.MustCompile(`(?i)\bbachelor|\bb\.s\.|\bbsc\b|\bb\.sc\b|\bb\.a\.|\bb\.eng\b|\bbeng\b`)},
	{types.DegreeAssociate, regexp.MustCompile(`(?i)\bassociate`)},
	{types.DegreeDiploma, regexp.MustCompile(`(?i)\bhigh school\b|\bdiploma\b|\bged\b`)},
}

var (
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	schoolPattern = regexp.MustCompile(`(?i)\b(?:university|college|institute|school|academy|polytechnic)\b`)
	fieldPattern  = regexp.MustCompile(`(?i)\b(?:in|of)\s+([A-Za-z][A-Za-z&/ ]*[A-Za-z])`)
	segmentSplit  = regexp.MustCompile(`\s*[,|•·]\s*|\s+[-–—]\s+`)
)

// yearWindow is how far (in characters) around a degree keyword a graduation year is looked for.
const yearWindow = 100

// DegreeLevel classifies free text into a degree tier (0 when nothing is recognized).
func DegreeLevel(text string) int {
	for _, d := range degreePatterns {
		if d.pattern.MatchString(text) {
			return d.level
		}
	}
	return types.DegreeNone
}

// extractEducation scans the education section for degree keywords.
func extractEducation(lines []string) []types.EducationEntry {
	section, ok := findSection(lines, sectionEducation)
	if !ok {
		return nil
	}
	text := strings.Join(section, "\n")

	var entries []types.EducationEntry
	offset := 0
	for i, line := range section {
		lineStart := offset
		offset += len(line) + 1

		level, loc := degreeMatch(line)
		if level == types.DegreeNone {
			continue
		}

		entry := types.EducationEntry{
			Level: level,
			Field: fieldOfStudy(line[loc[0]:]),
		}

		at := lineStart + loc[0]
		from := max(0, at-yearWindow)
		to := min(len(text), at+yearWindow)
		if year := yearPattern.FindString(text[from:to]); year != "" {
			entry.Year, _ = strconv.Atoi(year)
		}

		entry.School = schoolIn(line)
		if entry.School == "" && i+1 < len(section) {
			entry.School = schoolIn(section[i+1])
		}
		if entry.School == "" && i > 0 {
			entry.School = schoolIn(section[i-1])
		}

		entries = append(entries, entry)
	}
	return entries
}

func degreeMatch(line string) (int, []int) {
	for _, d := range degreePatterns {
		if loc := d.pattern.FindStringIndex(line); loc != nil {
			return d.level, loc
		}
	}
	return types.DegreeNone, nil
}

// schoolIn returns the segment of line naming an institution.
func schoolIn(line string) string {
	for _, segment := range segmentSplit.Split(line, -1) {
		if schoolPattern.MatchString(segment) {
			return strings.TrimSpace(yearPattern.ReplaceAllString(segment, ""))
		}
	}
	return ""
}

// fieldOfStudy takes the subject following "in", falling back to "of" ("Bachelor of Arts").
func fieldOfStudy(text string) string {
	text = segmentSplit.Split(text, 2)[0]
	if idx := strings.Index(strings.ToLower(text), " in "); idx >= 0 {
		text = text[idx:]
	}
	m := fieldPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	field := strings.TrimSpace(m[1])
	if schoolPattern.MatchString(field) {
		return ""
	}
	return field
}
