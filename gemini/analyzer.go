// Package gemini provides an LLM-backed implementation of
// biascope.Analyzer using Google Gemini. It serves the same contract as
// the subprocess analyzers: text in, a scored JSON object out.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/awalczyk/biascope"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Ensure Analyzer implements biascope.Analyzer at compile time.
var _ biascope.Analyzer = (*Analyzer)(nil)

// Analyzer scores text for political bias using the Gemini API.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer. An empty model selects the default.
func NewAnalyzer(client *genai.Client, model string) *Analyzer {
	if model == "" {
		model = defaultModel
	}
	return &Analyzer{client: client, model: model}
}

// Analyze scores the given text. A non-empty model argument overrides the
// analyzer's configured model for this call.
func (a *Analyzer) Analyze(ctx context.Context, kind biascope.AnalyzerKind, text string, model string) (*biascope.AnalysisResult, error) {
	if text == "" {
		return nil, biascope.Errorf(biascope.EINVALID, "text required")
	}

	m := a.model
	if model != "" {
		m = model
	}

	result, err := a.client.Models.GenerateContent(ctx, m,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, biascope.Errorf(biascope.EINTERNAL, "gemini returned nil result")
	}

	return ParseResponse(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You analyze news text for political bias. Respond with a single JSON object with fields: left (0-100), right (0-100), message (one-line summary), explanation (short justification). left and right express how strongly the text leans each way.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the article text.
func BuildUserPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "%s\n", text)
	sb.WriteString("</article>\n\n")
	sb.WriteString("Score this article's political bias.")
	return sb.String()
}

// ParseResponse parses model output as the analyzer JSON object and
// normalizes it. A markdown code fence around the object is tolerated.
func ParseResponse(s string) (*biascope.AnalysisResult, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var raw biascope.RawResult
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, biascope.Errorf(biascope.EINVALID, "gemini produced malformed output: %v", err)
	}
	return raw.Normalize(), nil
}
