package skills

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Golang to Go", "Golang", "Go"},
		{"go lang to Go", "go lang", "Go"},
		{"JS to JavaScript", "js", "JavaScript"},
		{"TS to TypeScript", "ts", "TypeScript"},
		{"K8s to Kubernetes", "k8s", "Kubernetes"},
		{"reactjs to React", "reactjs", "React"},
		{"nodejs to Node.js", "nodejs", "Node.js"},
		{"postgres to PostgreSQL", "postgres", "PostgreSQL"},
		{"vocabulary alias", "amazon web services", "AWS"},
		{"vocabulary casing", "PYTHON", "Python"},
		{"unknown lower-case word is capitalized", "haskell", "Haskell"},
		{"non-ASCII first letter is capitalized", "ñandu", "Ñandu"},
		{"accented first letter is capitalized", "élixir", "Élixir"},
		{"hyphenated word is capitalized", "über-cache", "Über-cache"},
		{"unknown multi-word stays as-is", "distributed systems", "distributed systems"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSkillName(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestDedupe(t *testing.T) {
	result := Dedupe([]string{"python", "Go", "Python", "golang", "", "AWS", "aws"})
	assert.Equal(t, []string{"Python", "Go", "AWS"}, result)
}

func TestDedupe_NonASCII(t *testing.T) {
	result := Dedupe([]string{"ñandu", "Ñandu", "élixir"})
	assert.Equal(t, []string{"Ñandu", "Élixir"}, result)
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

func TestContains(t *testing.T) {
	names := []string{"Python", "Kubernetes"}
	assert.True(t, Contains(names, "python"))
	assert.True(t, Contains(names, "k8s"))
	assert.False(t, Contains(names, "Java"))
	assert.False(t, Contains(names, ""))
}
