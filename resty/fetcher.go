// Package resty provides a browser-imitating implementation of
// biascope.Fetcher. It sends a desktop User-Agent and a Referer with
// every request, which gets past the cruder anti-scraping checks that
// block the plain fetcher.
package resty

import (
	"context"
	"time"

	"github.com/awalczyk/biascope"
	bshttp "github.com/awalczyk/biascope/http"
	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout bounds the fallback fetch. Kept consistent with
// http.DefaultFetchTimeout.
const DefaultFetchTimeout = 10 * time.Second

// Browser-like request headers.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://www.google.com/"
)

// Ensure Fetcher implements biascope.Fetcher at compile time.
var _ biascope.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content using browser-like headers.
type Fetcher struct {
	client  *resty.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new browser-imitating Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Referer", referer).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", biascope.Errorf(biascope.EUNAVAILABLE, "fetch %s: %v", url, err)
	}

	if err := bshttp.StatusError(resp.StatusCode(), url); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Close releases client resources.
func (f *Fetcher) Close() error {
	return nil
}
