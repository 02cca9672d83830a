package biascope

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations differ in how closely they imitate a browser.
type Fetcher interface {
	// Fetch returns the response body for the URL. Non-2xx statuses
	// surface as domain errors: 404 maps to ENOTFOUND, 401/403 to
	// EUNAUTHORIZED, anything else to EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases client resources.
	Close() error
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
