// Package extract composes fetchers and extractors into the ordered
// fallback chain that turns a URL into analyzable plain text.
package extract

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/awalczyk/biascope"
)

// Fixed messages returned by the chain in place of errors. The chain
// fails soft: callers always receive a string they can show or analyze.
const (
	MsgDownloadLink = "This link points to a downloadable file, not an article."
	MsgNotFound     = "Could not extract text: the page was not found (404)."
	MsgForbidden    = "Could not extract text: access to the page was forbidden (403). The site may be blocking automated readers."
	MsgFailed       = "Could not extract text from this URL. The article may be paywalled or blocked."
)

// downloadExtensions are URL path suffixes that identify non-article
// downloads. Rejected before any network call.
var downloadExtensions = map[string]bool{
	".pdf":  true,
	".zip":  true,
	".exe":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".ppt":  true,
	".pptx": true,
}

// Ensure Chain implements biascope.TextExtractor at compile time.
var _ biascope.TextExtractor = (*Chain)(nil)

// Chain is the ordered extraction fallback chain. Each stage runs once;
// adequacy is judged by length thresholds and the first adequate result
// wins. There are no retries.
type Chain struct {
	// Plain fetches pages without browser imitation. Used for the
	// article-oriented passes.
	Plain biascope.Fetcher

	// Browser fetches pages with browser-like headers. Used for the
	// selector fallback when the plain pass comes up short.
	Browser biascope.Fetcher

	// Articles are tried in order against the plain-fetched HTML.
	Articles []biascope.ArticleExtractor

	// Content is the structural selector fallback.
	Content biascope.ContentExtractor

	// Limiter, if set, bounds the request rate per domain.
	Limiter biascope.DomainLimiter
}

// ExtractText runs the fallback chain for the URL. It never returns an
// error; every failure path produces one of the fixed messages above.
func (c *Chain) ExtractText(ctx context.Context, rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return MsgFailed
	}

	if downloadExtensions[strings.ToLower(path.Ext(u.Path))] {
		return MsgDownloadLink
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			return MsgFailed
		}
	}

	var fetchErr error

	// Article passes over the plain-fetched page.
	html, err := c.Plain.Fetch(ctx, rawURL)
	if err != nil {
		fetchErr = err
	} else {
		for _, extractor := range c.Articles {
			article, err := extractor.Extract(html)
			if err != nil {
				continue
			}
			text := biascope.CollapseWhitespace(article.Text)
			if len(text) > biascope.MinArticleLen {
				return biascope.Truncate(text, biascope.MaxTextLen)
			}
		}
	}

	// Structural fallback over a browser-imitating refetch.
	html, err = c.Browser.Fetch(ctx, rawURL)
	if err != nil {
		fetchErr = err
	} else {
		text := c.Content.ExtractContent(html)
		if len(text) > biascope.MinArticleLen {
			return biascope.Truncate(text, biascope.MaxTextLen)
		}
	}

	switch biascope.ErrorCode(fetchErr) {
	case biascope.ENOTFOUND:
		return MsgNotFound
	case biascope.EUNAUTHORIZED:
		return MsgForbidden
	}

	return MsgFailed
}
