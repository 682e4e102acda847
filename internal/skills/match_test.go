package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	text := "Built services in Python and golang, deployed with Docker on AWS. Some JavaScript."

	names, categories := Extract(text)

	assert.Equal(t, []string{"AWS", "Docker", "Go", "JavaScript", "Python"}, names)
	assert.Contains(t, categories[CategoryProgramming], "Python")
	assert.Contains(t, categories[CategoryCloud], "AWS")
	// JavaScript belongs to more than one category
	assert.Contains(t, categories[CategoryProgramming], "JavaScript")
	assert.Contains(t, categories[CategoryWeb], "JavaScript")
}

func TestExtract_WholeWordOnly(t *testing.T) {
	names, _ := Extract("We are going to javascripting the rusty pipeline")
	assert.NotContains(t, names, "Go")
	assert.NotContains(t, names, "JavaScript")
	assert.NotContains(t, names, "Rust")
}

func TestExtract_ExactTermIsCaseSensitive(t *testing.T) {
	names, _ := Extract("let's go ship it")
	assert.NotContains(t, names, "Go")

	names, _ = Extract("Services written in Go")
	assert.Contains(t, names, "Go")
}

func TestExtract_SymbolSkills(t *testing.T) {
	names, _ := Extract("Game engines in C++ and tools in C#.")
	assert.Contains(t, names, "C++")
	assert.Contains(t, names, "C#")
}

func TestExtract_Empty(t *testing.T) {
	names, categories := Extract("   ")
	assert.Empty(t, names)
	assert.Empty(t, categories)
}

func TestMentions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		skill    string
		expected bool
	}{
		{"case-insensitive", "deployed PYTHON workers", "python", true},
		{"alias accepted", "ran workloads on k8s", "Kubernetes", true},
		{"exact term matches its own casing", "wrote Go services", "Go", true},
		{"exact term ignores other casing", "go to market plans", "Go", false},
		{"exact term requested in lower case", "go to market plans", "go", false},
		{"alias of exact term ignores case", "GOLANG tooling", "Go", true},
		{"substring rejected", "javascript front end", "Java", false},
		{"unknown skill whole word", "modeled in Haskell daily", "haskell", true},
		{"empty skill", "anything", "", false},
		{"empty text", "", "Python", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mentions(tt.text, tt.skill))
		})
	}
}

func TestCategorize(t *testing.T) {
	categories := Categorize([]string{"Python", "PostgreSQL", "Unknown Thing"})
	assert.Equal(t, []string{"Python"}, categories[CategoryProgramming])
	assert.Contains(t, categories[CategoryDatabases], "PostgreSQL")
	for _, names := range categories {
		assert.NotContains(t, names, "Unknown Thing")
	}
}

func TestExtractCertifications(t *testing.T) {
	certs := ExtractCertifications("Holds the CKA and AWS Certified Solutions Architect credentials")
	assert.ElementsMatch(t, []string{"Certified Kubernetes Administrator", "AWS Certified Solutions Architect"}, certs)
	assert.Empty(t, ExtractCertifications(""))
}
