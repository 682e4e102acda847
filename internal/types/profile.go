package types

// SeniorityLevel is a position on the candidate/job seniority ladder.
type SeniorityLevel string

// Seniority ladder, lowest first.
const (
	SeniorityEntry     SeniorityLevel = "entry"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityLead      SeniorityLevel = "lead"
	SeniorityExecutive SeniorityLevel = "executive"
)

// SeniorityLadder lists the seniority levels in ascending order.
var SeniorityLadder = []SeniorityLevel{
	SeniorityEntry,
	SeniorityMid,
	SenioritySenior,
	SeniorityLead,
	SeniorityExecutive,
}

// Rank returns the position of the level on the ladder, or -1 if the level is not recognized.
func (s SeniorityLevel) Rank() int {
	for i, level := range SeniorityLadder {
		if level == s {
			return i
		}
	}
	return -1
}

// Degree tiers used for education records and requirements.
const (
	DegreeNone      = 0
	DegreeDiploma   = 1
	DegreeAssociate = 2
	DegreeBachelor  = 3
	DegreeMaster    = 4
	DegreePhD       = 5
)

// Profile is the structured view of a candidate derived from resume, cover letter and social profile text.
// It is recomputed per request and never treated as authoritative.
type Profile struct {
	Skills                []string            `json:"skills"`
	SkillCategories       map[string][]string `json:"skill_categories"`
	Experience            []ExperienceEntry   `json:"experience"`
	TotalExperienceYears  float64             `json:"total_experience_years"`
	SeniorityLevel        SeniorityLevel      `json:"seniority_level,omitempty"`
	Industries            []string            `json:"industries"`
	Education             []EducationEntry    `json:"education"`
	HighestEducationLevel int                 `json:"highest_education_level"`
	Certifications        []string            `json:"certifications"`
	Summary               string              `json:"summary,omitempty"`
	Location              string              `json:"location,omitempty"`
	PreferredCompanySize  string              `json:"preferred_company_size,omitempty"`
}

// ExperienceEntry is a single employment record.
type ExperienceEntry struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	StartYear      int    `json:"start_year"`
	EndYear        int    `json:"end_year"`
	DurationMonths int    `json:"duration_months"`
	Description    string `json:"description,omitempty"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Level  int    `json:"level"` // degree tier 1-5
	School string `json:"school,omitempty"`
	Year   int    `json:"year,omitempty"`
	Field  string `json:"field,omitempty"`
}

// ProfileSources bundles the optional inputs a profile is parsed from.
type ProfileSources struct {
	Resume      string         `json:"resume,omitempty"`
	CoverLetter string         `json:"cover_letter,omitempty"`
	Social      *SocialProfile `json:"social_profile,omitempty"`
}

// IsEmpty reports whether no source was supplied.
func (s ProfileSources) IsEmpty() bool {
	return s.Resume == "" && s.CoverLetter == "" && s.Social == nil
}

// SocialProfile is a structured professional-network profile record.
type SocialProfile struct {
	Headline             string            `json:"headline,omitempty"`
	Summary              string            `json:"summary,omitempty"`
	Skills               []string          `json:"skills,omitempty"`
	Positions            []SocialPosition  `json:"positions,omitempty"`
	Education            []SocialEducation `json:"education,omitempty"`
	Certifications       []string          `json:"certifications,omitempty"`
	Location             string            `json:"location,omitempty"`
	PreferredCompanySize string            `json:"preferred_company_size,omitempty"`
}

// SocialPosition is a position listed on a social profile. EndYear 0 or Current means ongoing.
type SocialPosition struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	StartYear   int    `json:"start_year,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// SocialEducation is an education record listed on a social profile.
type SocialEducation struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
	Year   int    `json:"year,omitempty"`
}
