// Package slog provides logging decorators for biascope services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczyk/biascope"
)

// Ensure LoggingAnalyzer implements biascope.Analyzer.
var _ biascope.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-run logging.
type LoggingAnalyzer struct {
	next   biascope.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next biascope.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, kind biascope.AnalyzerKind, text string, model string) (*biascope.AnalysisResult, error) {
	begin := time.Now()
	result, err := a.next.Analyze(ctx, kind, text, model)
	if err != nil {
		a.logger.Error("analysis failed",
			"kind", string(kind),
			"duration", time.Since(begin),
			"error", biascope.ErrorMessage(err),
		)
		return nil, err
	}
	a.logger.Info("analysis complete",
		"kind", string(kind),
		"duration", time.Since(begin),
		"left", result.Left,
		"right", result.Right,
	)
	return result, nil
}
