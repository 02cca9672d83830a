package biascope

import "context"

// Extraction thresholds. These values are part of the extraction contract:
// an article pass succeeds above MinArticleLen, a selector pass above
// MinSelectorLen, and all returned text is capped at MaxTextLen.
const (
	MinArticleLen  = 100
	MinSelectorLen = 200
	MaxTextLen     = 5000
)

// Article holds the output of an article-oriented extraction pass.
type Article struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the article body as plain text, boilerplate removed.
	Text string
}

// ArticleExtractor isolates the likely article body from raw HTML.
type ArticleExtractor interface {
	Extract(html string) (*Article, error)
}

// ContentExtractor pulls main-content text out of HTML using structural
// heuristics, falling back to the page's full visible text. It returns
// whatever it finds; judging adequacy is the caller's job.
type ContentExtractor interface {
	ExtractContent(html string) string
}

// TextExtractor produces plain text for analysis from a URL.
//
// It fails soft: ordinary failures come back as a human-readable
// explanatory string, so downstream stages always have text to work with.
type TextExtractor interface {
	ExtractText(ctx context.Context, url string) string
}
