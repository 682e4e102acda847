// Package skills provides the curated skill vocabularies and matching helpers used by the profile parser and matcher.
package skills

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

var (
	patternCache   = make(map[string]*regexp.Regexp)
	patternCacheMu sync.RWMutex
)

// wordPattern compiles a whole-word pattern for phrase. Word boundaries are defined explicitly
// because \b does not treat symbols such as "+" or "#" (C++, C#) as word characters.
func wordPattern(phrase string, exact bool) *regexp.Regexp {
	key := phrase
	if !exact {
		key = "(?i)" + phrase
	}

	patternCacheMu.RLock()
	re, ok := patternCache[key]
	patternCacheMu.RUnlock()
	if ok {
		return re
	}

	expr := `(?:^|[^\w+#])` + regexp.QuoteMeta(phrase) + `(?:$|[^\w+#])`
	if !exact {
		expr = "(?i)" + expr
	}
	re = regexp.MustCompile(expr)

	patternCacheMu.Lock()
	patternCache[key] = re
	patternCacheMu.Unlock()
	return re
}

// matchesTerm reports whether text mentions the term or any of its aliases as a whole word.
func matchesTerm(text string, term Term) bool {
	if wordPattern(term.Name, term.Exact).MatchString(text) {
		return true
	}
	for _, alias := range term.Aliases {
		if wordPattern(alias, false).MatchString(text) {
			return true
		}
	}
	return false
}

// Mentions reports whether text mentions skill as a whole word. Vocabulary aliases of the skill are
// also accepted. Matching ignores case except for the canonical name of an exact term such as "Go".
func Mentions(text, skill string) bool {
	skill = strings.TrimSpace(skill)
	if text == "" || skill == "" {
		return false
	}
	if term, ok := lookupTerm(skill); ok {
		return matchesTerm(text, term)
	}
	return wordPattern(skill, false).MatchString(text)
}

func lookupTerm(skill string) (Term, bool) {
	canonical := NormalizeSkillName(skill)
	for _, terms := range Vocabulary {
		for _, term := range terms {
			if strings.EqualFold(term.Name, canonical) {
				return term, true
			}
		}
	}
	return Term{}, false
}

// Extract scans text against every category vocabulary and returns the canonical skill names found,
// together with the category membership of each. Skills are returned sorted.
func Extract(text string) ([]string, map[string][]string) {
	categories := make(map[string][]string)
	found := make(map[string]struct{})
	if strings.TrimSpace(text) == "" {
		return []string{}, categories
	}

	for category, terms := range Vocabulary {
		for _, term := range terms {
			if matchesTerm(text, term) {
				categories[category] = append(categories[category], term.Name)
				found[term.Name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	for category := range categories {
		categories[category] = Dedupe(categories[category])
		sort.Strings(categories[category])
	}
	return names, categories
}

// Categorize returns the category membership of the given skills according to the vocabulary.
// Skills outside the vocabulary are omitted.
func Categorize(names []string) map[string][]string {
	categories := make(map[string][]string)
	for category, terms := range Vocabulary {
		for _, term := range terms {
			if Contains(names, term.Name) {
				categories[category] = append(categories[category], term.Name)
			}
		}
	}
	for category := range categories {
		categories[category] = Dedupe(categories[category])
		sort.Strings(categories[category])
	}
	return categories
}

// ExtractCertifications returns the recognized certification names mentioned in text.
func ExtractCertifications(text string) []string {
	found := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return found
	}
	for _, term := range Certifications {
		if matchesTerm(text, term) {
			found = append(found, term.Name)
		}
	}
	return found
}
