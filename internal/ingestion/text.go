// Package ingestion normalizes free-text sources (resume, cover letter, job descriptions) before parsing.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving line structure.
// HTML input is reduced to its visible text first.
func CleanText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	if LooksLikeHTML(content) {
		if text, err := HTMLToText(content); err == nil {
			content = text
		}
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses interior runs of whitespace.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return multiSpace.ReplaceAllString(trimmed, " ")
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// StripBullet removes a leading bullet marker from a line.
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	if !isBulletLine(trimmed) {
		return trimmed
	}
	_, rest, _ := strings.Cut(trimmed, " ")
	return strings.TrimSpace(rest)
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	return excessiveBlanks.ReplaceAllString(content, "\n\n")
}

// Tokens lower-cases text and splits it on whitespace, trimming punctuation around each token.
// Empty tokens are dropped.
func Tokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimFunc(field, isTokenPunct)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// TokenSet returns the distinct tokens of text.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range Tokens(text) {
		set[token] = struct{}{}
	}
	return set
}

func isTokenPunct(r rune) bool {
	switch r {
	case '+', '#':
		return false
	}
	return strings.ContainsRune(".,;:!?()[]{}\"'`*|/\\<>-–—", r)
}
