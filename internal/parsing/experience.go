package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/interview-odds/internal/ingestion"
	"github.com/jonathan/interview-odds/internal/types"
)

// maxExperienceEntries caps the entries taken from a single source.
const maxExperienceEntries = 5

var (
	yearRange         = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|now)\b`)
	headerSeparators  = regexp.MustCompile(`\s+(?:at|@)\s+|\s*[|•·]\s*|\s+[-–—]\s+|,\s*`)
	headerTrimCutset  = " \t|,-–—()[]:"
	maxHeaderLines    = 2
	openEndedKeywords = map[string]bool{"present": true, "current": true, "now": true}
)

// extractExperience locates the experience section and pairs each year range with the lines that follow it.
// A bare range followed directly by bullets takes its title and company from the lines just above it.
func extractExperience(lines []string, currentYear int) []types.ExperienceEntry {
	section, ok := findSection(lines, sectionExperience)
	if !ok {
		return nil
	}

	type rangeLine struct {
		index       int
		headerStart int
		start, end  int
		rest        string
		header      []string
	}

	var ranges []rangeLine
	for i, line := range section {
		loc := yearRange.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		start, _ := strconv.Atoi(line[loc[2]:loc[3]])
		endText := strings.ToLower(line[loc[4]:loc[5]])
		end := currentYear
		if !openEndedKeywords[endText] {
			end, _ = strconv.Atoi(endText)
		}
		rest := strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
		ranges = append(ranges, rangeLine{
			index:       i,
			headerStart: i,
			start:       start,
			end:         end,
			rest:        strings.Trim(rest, headerTrimCutset),
		})
	}

	floor := 0
	for n := range ranges {
		r := &ranges[n]
		if r.rest == "" && isBullet(section, r.index+1) {
			r.header, r.headerStart = precedingHeader(section, floor, r.index)
		}
		floor = r.index + 1
		switch {
		case r.rest == "" && len(r.header) == 0:
			floor = skipHeaderLines(section, floor, maxHeaderLines)
		case r.rest != "" && !isBullet(section, floor):
			floor = skipHeaderLines(section, floor, 1)
		}
	}

	entries := make([]types.ExperienceEntry, 0, min(len(ranges), maxExperienceEntries))
	for n, r := range ranges {
		if len(entries) == maxExperienceEntries {
			break
		}

		stop := len(section)
		if n+1 < len(ranges) {
			stop = ranges[n+1].headerStart
		}
		var following []string
		for _, line := range section[r.index+1 : stop] {
			if strings.TrimSpace(line) != "" {
				following = append(following, ingestion.StripBullet(line))
			}
		}

		entry := types.ExperienceEntry{
			StartYear:      r.start,
			EndYear:        r.end,
			DurationMonths: durationMonths(r.start, r.end),
		}

		switch {
		case len(r.header) == 1:
			entry.Title, entry.Company = splitHeader(r.header[0])
		case len(r.header) > 1:
			entry.Title, entry.Company = r.header[0], r.header[1]
		case r.rest != "":
			entry.Title, entry.Company = splitHeader(r.rest)
			if entry.Company == "" && len(following) > 0 && !isBullet(section, r.index+1) {
				entry.Company = following[0]
				following = following[1:]
			}
		default:
			header := following[:min(len(following), maxHeaderLines)]
			if len(header) > 0 {
				entry.Title = header[0]
			}
			if len(header) > 1 {
				entry.Company = header[1]
			}
			following = following[len(header):]
		}
		entry.Description = strings.Join(following, " ")

		entries = append(entries, entry)
	}

	return entries
}

// splitHeader splits a single-line "Title at Company" or "Title | Company" header.
func splitHeader(header string) (string, string) {
	parts := headerSeparators.Split(header, 2)
	title := strings.Trim(parts[0], headerTrimCutset)
	if len(parts) == 1 {
		return title, ""
	}
	return title, strings.Trim(parts[1], headerTrimCutset)
}

// precedingHeader collects up to maxHeaderLines plain lines directly above index, not reaching below floor.
// It returns them in document order with the index of the first one.
func precedingHeader(lines []string, floor, index int) ([]string, int) {
	var header []string
	start := index
	for i := index - 1; i >= floor && len(header) < maxHeaderLines; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || ingestion.StripBullet(line) != line {
			break
		}
		header = append([]string{line}, header...)
		start = i
	}
	return header, start
}

// skipHeaderLines returns the index just past the first n non-blank lines at or after from.
func skipHeaderLines(lines []string, from, n int) int {
	seen := 0
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		seen++
		if seen == n {
			return i + 1
		}
	}
	return len(lines)
}

// isBullet reports whether the first non-blank line at or after index is a bullet.
func isBullet(lines []string, index int) bool {
	for _, line := range lines[min(index, len(lines)):] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return ingestion.StripBullet(trimmed) != trimmed
	}
	return false
}

func durationMonths(start, end int) int {
	if start <= 0 || end < start {
		return 0
	}
	return (end - start) * 12
}
