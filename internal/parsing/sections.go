package parsing

import (
	"regexp"
	"strings"
)

// section kinds recognized in resume text
const (
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionSkills         = "skills"
	sectionCertifications = "certifications"
	sectionSummary        = "summary"
	sectionProjects       = "projects"
)

var headingLine = regexp.MustCompile(`^\s*(?:#+\s*)?([A-Za-z][A-Za-z &/]*?)\s*:?\s*$`)

var sectionHeadings = map[string]string{
	"experience":                sectionExperience,
	"work experience":           sectionExperience,
	"professional experience":   sectionExperience,
	"relevant experience":       sectionExperience,
	"employment":                sectionExperience,
	"employment history":        sectionExperience,
	"work history":              sectionExperience,
	"education":                 sectionEducation,
	"academic background":       sectionEducation,
	"education & training":      sectionEducation,
	"education and training":    sectionEducation,
	"skills":                    sectionSkills,
	"technical skills":          sectionSkills,
	"core competencies":         sectionSkills,
	"skills & tools":            sectionSkills,
	"certifications":            sectionCertifications,
	"certification":             sectionCertifications,
	"certificates":              sectionCertifications,
	"licenses & certifications": sectionCertifications,
	"summary":                   sectionSummary,
	"professional summary":      sectionSummary,
	"profile":                   sectionSummary,
	"about":                     sectionSummary,
	"about me":                  sectionSummary,
	"objective":                 sectionSummary,
	"projects":                  sectionProjects,
}

// headingKind returns the section kind of line if it is a recognized heading.
func headingKind(line string) (string, bool) {
	m := headingLine.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	kind, ok := sectionHeadings[strings.ToLower(strings.TrimSpace(m[1]))]
	return kind, ok
}

// findSection returns the lines following the first heading of the given kind, up to the next
// recognized heading or the end of text. The boolean is false if no such heading exists.
func findSection(lines []string, kind string) ([]string, bool) {
	start := -1
	for i, line := range lines {
		if k, ok := headingKind(line); ok && k == kind {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if _, ok := headingKind(lines[i]); ok {
			end = i
			break
		}
	}
	return lines[start:end], true
}

// paragraphs splits text into blank-line separated paragraphs with inner lines joined by spaces.
func paragraphs(lines []string) []string {
	var result []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			result = append(result, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	return result
}
