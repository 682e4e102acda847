// Package types provides type definitions for structured data used throughout the match engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// JobRequirements describes a job posting as supplied by the caller. It is read-only to the engine.
type JobRequirements struct {
	ID                 string   `json:"id,omitempty"`
	Title              string   `json:"title" validate:"required"`
	Company            string   `json:"company,omitempty"`
	Description        string   `json:"description,omitempty"`
	RequiredSkills     []string `json:"required_skills,omitempty"`
	PreferredSkills    []string `json:"preferred_skills,omitempty"`
	MinExperienceYears float64  `json:"min_experience_years,omitempty" validate:"gte=0"`
	MaxExperienceYears float64  `json:"max_experience_years,omitempty" validate:"gte=0"` // 0 means no upper bound
	SeniorityLevel     string   `json:"seniority_level,omitempty"`
	Industry           string   `json:"industry,omitempty"`
	EducationLevel     int      `json:"education_level,omitempty" validate:"gte=0,lte=5"` // degree tier, 0 = unspecified
	Location           string   `json:"location,omitempty"`
	CompanySize        string   `json:"company_size,omitempty"`
}

// HasSkillRequirements reports whether the job lists any required or preferred skills.
func (j *JobRequirements) HasSkillRequirements() bool {
	return len(j.RequiredSkills) > 0 || len(j.PreferredSkills) > 0
}

// Validate validates the JobRequirements using the validator.
func (j *JobRequirements) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
