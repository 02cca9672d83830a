// Package goquery provides a CSS-selector based implementation of
// biascope.ContentExtractor. It is the structural fallback for pages
// where article-oriented extraction finds too little text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/awalczyk/biascope"
)

// DefaultSelectors returns the ordered list of main-content selectors.
// The order encodes preference: semantic elements first, then the
// container classes and IDs common on news sites.
func DefaultSelectors() []string {
	return []string{
		"article",
		"main",
		"[role=main]",
		".content",
		"#content",
		".article-body",
		".story-body",
	}
}

// strippedTags are removed before any text is read. They never carry
// article content and routinely dwarf it.
const strippedTags = "script, style, nav, header, footer, meta, noscript"

// Ensure ContentExtractor implements biascope.ContentExtractor at compile time.
var _ biascope.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor pulls main-content text out of HTML by trying an
// ordered list of CSS selectors, falling back to the full page text.
type ContentExtractor struct {
	selectors []string
}

// NewContentExtractor creates a ContentExtractor with the given selector
// chain. An empty chain uses DefaultSelectors.
func NewContentExtractor(selectors ...string) *ContentExtractor {
	if len(selectors) == 0 {
		selectors = DefaultSelectors()
	}
	return &ContentExtractor{selectors: selectors}
}

// ExtractContent returns the text of the first selector whose content
// exceeds biascope.MinSelectorLen, or the page's full visible text when
// no selector matches. Unparseable HTML yields an empty string.
func (e *ContentExtractor) ExtractContent(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find(strippedTags).Remove()

	for _, selector := range e.selectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		text := biascope.CollapseWhitespace(sel.First().Text())
		if len(text) > biascope.MinSelectorLen {
			return text
		}
	}

	return biascope.CollapseWhitespace(doc.Text())
}
