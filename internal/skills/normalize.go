package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"sklearn":    "scikit-learn",
}

// canonicalNames maps lower-cased vocabulary names and aliases to canonical names.
var canonicalNames = buildCanonicalNames()

func buildCanonicalNames() map[string]string {
	names := make(map[string]string)
	for _, terms := range Vocabulary {
		for _, term := range terms {
			names[strings.ToLower(term.Name)] = term.Name
			for _, alias := range term.Aliases {
				names[strings.ToLower(alias)] = term.Name
			}
		}
	}
	return names
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}
	if canonical, ok := canonicalNames[lower]; ok {
		return canonical
	}

	// Unknown skills keep their spelling; casing is only adjusted for single lower-case words
	if normalized == lower && !strings.Contains(normalized, " ") {
		r, size := utf8.DecodeRuneInString(normalized)
		return string(unicode.ToUpper(r)) + normalized[size:]
	}

	return normalized
}

// Dedupe normalizes names and removes case-insensitive duplicates, keeping first occurrence order.
func Dedupe(names []string) []string {
	result := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := NormalizeSkillName(name)
		if normalized == "" {
			continue
		}
		key := strings.ToLower(normalized)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, normalized)
	}
	return result
}

// Contains reports whether names holds skill, compared case-insensitively after normalization.
func Contains(names []string, skill string) bool {
	target := strings.ToLower(NormalizeSkillName(skill))
	if target == "" {
		return false
	}
	for _, name := range names {
		if strings.ToLower(NormalizeSkillName(name)) == target {
			return true
		}
	}
	return false
}
