// Package prompts holds the embedded prompt templates used to narrate match explanations.
//
// Templates live in JSON files mapping a key to a template string. Placeholders take the
// form {{.Name}} and are filled by Render.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// Explanation prompts.
const (
	ExplanationFile = "explanation.json"
	MatchReasoning  = "match-reasoning"
	MatchSummary    = "match-summary"
)

var placeholder = regexp.MustCompile(`\{\{\.([A-Za-z][A-Za-z0-9_]*)\}\}`)

// parsed files by name; values are map[string]string
var files sync.Map

// Get returns the template stored under key in filename.
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for templates that must exist at startup.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Placeholders returns the distinct placeholder names of a template, sorted.
func Placeholders(template string) []string {
	seen := make(map[string]struct{})
	for _, m := range placeholder.FindAllStringSubmatch(template, -1) {
		seen[m[1]] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format substitutes every {{.Name}} with data[Name]. Placeholders without a value are left as is.
func Format(template string, data map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		if value, ok := data[name]; ok {
			return value
		}
		return match
	})
}

// Render fills the template under key and fails if any placeholder has no value.
func Render(filename, key string, data map[string]string) (string, error) {
	template, err := Get(filename, key)
	if err != nil {
		return "", err
	}

	var missing []string
	for _, name := range Placeholders(template) {
		if _, ok := data[name]; !ok {
			missing = append(missing, "{{."+name+"}}")
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("prompt %s/%s has unfilled placeholders: %s", filename, key, strings.Join(missing, ", "))
	}
	return Format(template, data), nil
}

// Keys returns the template keys of a file, sorted.
func Keys(filename string) ([]string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func loadFile(filename string) (map[string]string, error) {
	if cached, ok := files.Load(filename); ok {
		return cached.(map[string]string), nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	actual, _ := files.LoadOrStore(filename, templates)
	return actual.(map[string]string), nil
}
