package trafilatura

import (
	"strings"

	"github.com/awalczyk/biascope"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements biascope.ArticleExtractor at compile time.
var _ biascope.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the article body from HTML.
// It is the primary article pass of the extraction chain.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &biascope.Article{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
