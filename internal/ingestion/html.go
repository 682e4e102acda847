package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTag = regexp.MustCompile(`(?i)<\s*(html|body|div|p|br|ul|ol|li|h[1-6]|span|section|strong|em|table)\b[^>]*>`)

// blockElements are rendered on their own lines so section headings survive extraction.
var blockElements = "p, div, li, br, h1, h2, h3, h4, h5, h6, section, tr"

// LooksLikeHTML reports whether content appears to contain HTML markup.
func LooksLikeHTML(content string) bool {
	return htmlTag.MatchString(content)
}

// HTMLToText extracts the visible text of an HTML document, one block element per line.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.BeforeHtml("\n")
		s.AfterHtml("\n")
	})

	return strings.TrimSpace(doc.Text()), nil
}
