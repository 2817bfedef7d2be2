package feed

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sanitize removes script and style elements, including their full
// text content, from rendered markup. Other markup passes through
// untouched. Feed readers never execute code, so shipping it only
// bloats the documents.
func Sanitize(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parse markup: %w", err)
	}

	doc.Find("script, style").Remove()

	return serialize(doc)
}
