package source

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespace = regexp.MustCompile(`\s+`)

// CleanHTML strips markup from a feed description, returning collapsed plain
// text. Input without tags passes through with only whitespace normalized.
func CleanHTML(raw string) string {
	text := raw
	if strings.Contains(raw, "<") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			text = doc.Text()
		}
	}
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
