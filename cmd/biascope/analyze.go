package main

import (
	"encoding/json"
	"fmt"

	"github.com/awalczyk/biascope"
)

// Run executes the analyze command: one extraction, one analysis, the
// result printed as JSON.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	kind, err := biascope.ParseAnalyzerKind(c.Kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", biascope.ErrorMessage(err))
		return err
	}

	text := deps.Extractor.ExtractText(deps.Ctx, c.URL)

	result, err := deps.Analyzer.Analyze(deps.Ctx, kind, text, c.Model)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", biascope.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
