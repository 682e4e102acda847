// Package parsing turns resume text, cover letters and social-profile records into a merged candidate profile.
package parsing

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/interview-odds/internal/ingestion"
	"github.com/jonathan/interview-odds/internal/skills"
	"github.com/jonathan/interview-odds/internal/types"
)

var (
	locationLine = regexp.MustCompile(`(?im)^\s*(?:location|based in|address)\s*:\s*(.+?)\s*$`)
	salutation   = regexp.MustCompile(`(?i)^(?:dear|hello|hi|to whom)\b`)
	closing      = regexp.MustCompile(`(?i)^(?:sincerely|best regards|regards|kind regards|thank you|thanks|yours)\b`)
)

// HeuristicParser extracts profiles with keyword vocabularies and layout patterns. It never fails:
// malformed or missing sections produce empty fields.
type HeuristicParser struct {
	// Now resolves open-ended ranges ("Present") to a calendar year. Defaults to time.Now.
	Now func() time.Time
}

// NewHeuristicParser creates a parser using the wall clock.
func NewHeuristicParser() *HeuristicParser {
	return &HeuristicParser{Now: time.Now}
}

func (p *HeuristicParser) now() time.Time {
	if p == nil || p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// ParseProfile parses every supplied source independently, merges the partial profiles and
// derives the aggregate fields. With no sources, an empty profile is returned.
func (p *HeuristicParser) ParseProfile(sources types.ProfileSources) *types.Profile {
	profile := emptyProfile()
	if sources.IsEmpty() {
		return profile
	}

	if strings.TrimSpace(sources.Resume) != "" {
		merge(profile, p.parseText(sources.Resume, false))
	}
	if strings.TrimSpace(sources.CoverLetter) != "" {
		merge(profile, p.parseText(sources.CoverLetter, true))
	}
	if sources.Social != nil {
		merge(profile, p.parseSocial(sources.Social))
	}

	finish(profile)
	return profile
}

func emptyProfile() *types.Profile {
	return &types.Profile{
		Skills:          []string{},
		SkillCategories: map[string][]string{},
		Experience:      []types.ExperienceEntry{},
		Industries:      []string{},
		Education:       []types.EducationEntry{},
		Certifications:  []string{},
	}
}

// parseText extracts a partial profile from free text.
func (p *HeuristicParser) parseText(raw string, coverLetter bool) *types.Profile {
	text := ingestion.CleanText(raw)
	lines := strings.Split(text, "\n")

	profile := &types.Profile{
		Experience:     extractExperience(lines, p.now().Year()),
		Education:      extractEducation(lines),
		Certifications: skills.ExtractCertifications(text),
	}
	profile.Skills, _ = skills.Extract(text)

	if m := locationLine.FindStringSubmatch(text); m != nil {
		profile.Location = m[1]
	}

	if section, ok := findSection(lines, sectionSummary); ok {
		profile.Summary = strings.Join(paragraphs(section), " ")
	} else if coverLetter {
		profile.Summary = coverLetterOpening(lines)
	}

	return profile
}

// coverLetterOpening returns the first body paragraph of a cover letter.
func coverLetterOpening(lines []string) string {
	for _, paragraph := range paragraphs(lines) {
		if salutation.MatchString(paragraph) && len(paragraph) < 80 {
			continue
		}
		if closing.MatchString(paragraph) {
			break
		}
		return paragraph
	}
	return ""
}

// merge folds src into dst. Lists are concatenated and deduplicated, the longer summary wins,
// and scalar attributes are only filled when dst has none.
func merge(dst, src *types.Profile) {
	dst.Skills = skills.Dedupe(append(dst.Skills, src.Skills...))
	dst.Certifications = skills.Dedupe(append(dst.Certifications, src.Certifications...))

	for _, entry := range src.Experience {
		if !containsExperience(dst.Experience, entry) {
			dst.Experience = append(dst.Experience, entry)
		}
	}
	for _, entry := range src.Education {
		if !containsEducation(dst.Education, entry) {
			dst.Education = append(dst.Education, entry)
		}
	}

	if len(src.Summary) > len(dst.Summary) {
		dst.Summary = src.Summary
	}
	if dst.Location == "" {
		dst.Location = src.Location
	}
	if dst.PreferredCompanySize == "" {
		dst.PreferredCompanySize = src.PreferredCompanySize
	}
}

func containsExperience(entries []types.ExperienceEntry, entry types.ExperienceEntry) bool {
	for _, existing := range entries {
		if strings.EqualFold(existing.Title, entry.Title) &&
			strings.EqualFold(existing.Company, entry.Company) &&
			existing.StartYear == entry.StartYear &&
			existing.EndYear == entry.EndYear {
			return true
		}
	}
	return false
}

func containsEducation(entries []types.EducationEntry, entry types.EducationEntry) bool {
	for _, existing := range entries {
		if existing.Level == entry.Level &&
			strings.EqualFold(existing.School, entry.School) &&
			existing.Year == entry.Year {
			return true
		}
	}
	return false
}

// finish orders experience by recency and computes the derived fields from the merged lists.
func finish(profile *types.Profile) {
	sort.SliceStable(profile.Experience, func(i, j int) bool {
		a, b := profile.Experience[i], profile.Experience[j]
		if a.EndYear != b.EndYear {
			return a.EndYear > b.EndYear
		}
		return a.StartYear > b.StartYear
	})

	months := 0
	for _, entry := range profile.Experience {
		months += entry.DurationMonths
	}
	profile.TotalExperienceYears = float64(months) / 12

	profile.SeniorityLevel = inferSeniority(profile.Experience, profile.TotalExperienceYears)
	profile.Industries = inferIndustries(profile.Experience)
	profile.SkillCategories = skills.Categorize(profile.Skills)

	profile.HighestEducationLevel = types.DegreeNone
	for _, entry := range profile.Education {
		profile.HighestEducationLevel = max(profile.HighestEducationLevel, entry.Level)
	}
}
