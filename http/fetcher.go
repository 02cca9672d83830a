// Package http provides the HTTP-based implementations of biascope.Fetcher
// and the JSON API server.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/awalczyk/biascope"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements biascope.Fetcher at compile time.
var _ biascope.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests
// without any browser imitation. It is the first-pass fetcher of the
// extraction chain; blocked or unusual sites go through resty.Fetcher.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", biascope.Errorf(biascope.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", biascope.Errorf(biascope.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := StatusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	// Decode non-UTF-8 pages; extractors downstream expect UTF-8.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", biascope.Errorf(biascope.EUNAVAILABLE, "read %s: %v", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", biascope.Errorf(biascope.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the plain fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// StatusError maps a non-2xx HTTP status to a domain error.
// Returns nil for 2xx statuses.
func StatusError(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return biascope.Errorf(biascope.ENOTFOUND, "HTTP 404 for %s", url)
	case status == http.StatusForbidden || status == http.StatusUnauthorized:
		return biascope.Errorf(biascope.EUNAUTHORIZED, "HTTP %d for %s", status, url)
	default:
		return biascope.Errorf(biascope.EUNAVAILABLE, "HTTP %d for %s", status, url)
	}
}
