// Package biascope provides a web backend for political bias analysis of
// news articles. It accepts a URL, extracts the article text, scores it
// with an external analyzer, and keeps a per-user history of results.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, exec/).
package biascope
