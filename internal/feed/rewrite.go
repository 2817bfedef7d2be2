package feed

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rewriteTargets enumerates hyperlink and embedded-resource attributes
// that may carry relative references.
var rewriteTargets = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"img[src]", "src"},
	{"source[src]", "src"},
	{"iframe[src]", "src"},
	{"embed[src]", "src"},
	{"audio[src]", "src"},
	{"video[src]", "src"},
	{"video[poster]", "poster"},
}

// RewriteLinks makes relative references absolute. Fragment links of
// the form "/#section" resolve against the post's canonical URL,
// root-relative paths against the site base URL. Everything else is
// left untouched.
func RewriteLinks(markup, baseURL, canonicalURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parse markup: %w", err)
	}

	for _, target := range rewriteTargets {
		attr := target.attr
		doc.Find(target.selector).Each(func(_ int, sel *goquery.Selection) {
			value, ok := sel.Attr(attr)
			if !ok {
				return
			}
			sel.SetAttr(attr, rewriteRef(value, baseURL, canonicalURL))
		})
	}

	return serialize(doc)
}

func rewriteRef(ref, baseURL, canonicalURL string) string {
	switch {
	case strings.HasPrefix(ref, "/#"):
		return canonicalURL + strings.TrimPrefix(ref, "/")
	case strings.HasPrefix(ref, "//"):
		// protocol-relative, already absolute
		return ref
	case strings.HasPrefix(ref, "/"):
		return baseURL + ref
	default:
		return ref
	}
}

// serialize returns the inner HTML of the implicit body element the
// parser wraps fragments in.
func serialize(doc *goquery.Document) (string, error) {
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serialize markup: %w", err)
	}
	return out, nil
}
