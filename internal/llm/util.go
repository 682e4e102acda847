package llm

import (
	"regexp"
	"strings"
)

var blankRun = regexp.MustCompile(`\n{3,}`)

// CleanCompletion strips markdown code fences and wrapping quotes that models add around plain prose,
// and collapses runs of blank lines.
func CleanCompletion(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	return blankRun.ReplaceAllString(text, "\n\n")
}
