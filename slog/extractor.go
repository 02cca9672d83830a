package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczyk/biascope"
)

// Ensure LoggingExtractor implements biascope.TextExtractor.
var _ biascope.TextExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TextExtractor with per-URL logging.
type LoggingExtractor struct {
	next   biascope.TextExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next biascope.TextExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) ExtractText(ctx context.Context, url string) string {
	begin := time.Now()
	text := e.next.ExtractText(ctx, url)
	e.logger.Info("text extraction",
		"url", url,
		"chars", len(text),
		"duration", time.Since(begin),
	)
	return text
}
