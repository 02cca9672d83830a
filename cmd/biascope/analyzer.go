package main

import (
	"context"

	"github.com/awalczyk/biascope"
)

var _ biascope.Analyzer = (*kindRouter)(nil)

// kindRouter dispatches analysis calls to per-kind analyzers, with a
// default route for everything else. It lets the gemini engine serve
// some kinds while the subprocess engine serves the rest.
type kindRouter struct {
	routes   map[biascope.AnalyzerKind]biascope.Analyzer
	fallback biascope.Analyzer
}

func (r *kindRouter) Analyze(ctx context.Context, kind biascope.AnalyzerKind, text string, model string) (*biascope.AnalysisResult, error) {
	if a, ok := r.routes[kind]; ok {
		return a.Analyze(ctx, kind, text, model)
	}
	return r.fallback.Analyze(ctx, kind, text, model)
}
