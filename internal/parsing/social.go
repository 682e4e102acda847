package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/interview-odds/internal/skills"
	"github.com/jonathan/interview-odds/internal/types"
)

// DecodeSocialProfile decodes a structured social-profile export.
func DecodeSocialProfile(data []byte) (*types.SocialProfile, error) {
	var social types.SocialProfile
	if err := json.Unmarshal(data, &social); err != nil {
		return nil, &ParseError{Message: "failed to decode social profile", Cause: err}
	}
	return &social, nil
}

// parseSocial converts a structured social-profile record into a partial profile.
func (p *HeuristicParser) parseSocial(social *types.SocialProfile) *types.Profile {
	currentYear := p.now().Year()
	profile := &types.Profile{
		Location:             strings.TrimSpace(social.Location),
		PreferredCompanySize: strings.TrimSpace(social.PreferredCompanySize),
		Summary:              strings.TrimSpace(social.Summary),
	}
	if profile.Summary == "" {
		profile.Summary = strings.TrimSpace(social.Headline)
	}

	freeText := []string{social.Headline, social.Summary}
	for _, position := range social.Positions {
		end := position.EndYear
		if position.Current || end == 0 {
			end = currentYear
		}
		profile.Experience = append(profile.Experience, types.ExperienceEntry{
			Title:          strings.TrimSpace(position.Title),
			Company:        strings.TrimSpace(position.Company),
			StartYear:      position.StartYear,
			EndYear:        end,
			DurationMonths: durationMonths(position.StartYear, end),
			Description:    strings.TrimSpace(position.Description),
		})
		freeText = append(freeText, position.Title, position.Description)
	}

	for _, edu := range social.Education {
		profile.Education = append(profile.Education, types.EducationEntry{
			Level:  DegreeLevel(edu.Degree),
			School: strings.TrimSpace(edu.School),
			Year:   edu.Year,
			Field:  strings.TrimSpace(edu.Field),
		})
	}

	listed := make([]string, 0, len(social.Skills))
	for _, skill := range social.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			listed = append(listed, skills.NormalizeSkillName(skill))
		}
	}
	extracted, _ := skills.Extract(strings.Join(freeText, "\n"))
	profile.Skills = skills.Dedupe(append(listed, extracted...))

	certs := make([]string, 0, len(social.Certifications))
	for _, cert := range social.Certifications {
		if recognized := skills.ExtractCertifications(cert); len(recognized) > 0 {
			certs = append(certs, recognized...)
		} else if cert = strings.TrimSpace(cert); cert != "" {
			certs = append(certs, cert)
		}
	}
	profile.Certifications = skills.Dedupe(certs)

	return profile
}
