package mock

import (
	"context"

	"github.com/awalczyk/biascope"
)

var _ biascope.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of biascope.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string) (*biascope.Article, error)
}

func (e *ArticleExtractor) Extract(html string) (*biascope.Article, error) {
	return e.ExtractFn(html)
}

var _ biascope.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of biascope.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string) string
}

func (e *ContentExtractor) ExtractContent(html string) string {
	return e.ExtractContentFn(html)
}

var _ biascope.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of biascope.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, url string) string
}

func (e *TextExtractor) ExtractText(ctx context.Context, url string) string {
	return e.ExtractTextFn(ctx, url)
}
