package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCompletion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "  The candidate is a strong fit.  ", "The candidate is a strong fit."},
		{"generic code block", "```\nStrong fit.\n```", "Strong fit."},
		{"code block with language", "```text\nStrong fit.\n```", "Strong fit."},
		{"code block without newline", "```Strong fit.```", "Strong fit."},
		{"wrapping quotes", `"Strong fit."`, "Strong fit."},
		{"blank line runs collapse", "One.\n\n\n\nTwo.", "One.\n\nTwo."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanCompletion(tt.input))
		})
	}
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	_, err := extractTextFromResponse(nil)
	assert.Error(t, err)
}
