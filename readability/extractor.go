package readability

import (
	"strings"

	"github.com/awalczyk/biascope"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements biascope.ArticleExtractor at compile time.
var _ biascope.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the article body from HTML.
// It runs as the second article pass when trafilatura comes up short.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article body as plain text.
func (e *Extractor) Extract(rawHTML string) (*biascope.Article, error) {
	if rawHTML == "" {
		return nil, biascope.Errorf(biascope.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &biascope.Article{
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}
