package mock

import (
	"context"

	"github.com/awalczyk/biascope"
)

var _ biascope.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of biascope.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, kind biascope.AnalyzerKind, text string, model string) (*biascope.AnalysisResult, error)
}

func (a *Analyzer) Analyze(ctx context.Context, kind biascope.AnalyzerKind, text string, model string) (*biascope.AnalysisResult, error) {
	return a.AnalyzeFn(ctx, kind, text, model)
}
