package biascope

import (
	"context"
	"time"
)

// AnalyzerKind identifies a bias-scoring strategy.
type AnalyzerKind string

// Supported analyzer kinds.
const (
	KindLexicon     AnalyzerKind = "lexicon"
	KindTransformer AnalyzerKind = "transformer"
	KindLLM         AnalyzerKind = "llm"
)

// ParseAnalyzerKind validates a raw analyzer kind string.
// Returns EINVALID if the kind is not one of the supported set.
func ParseAnalyzerKind(s string) (AnalyzerKind, error) {
	switch AnalyzerKind(s) {
	case KindLexicon, KindTransformer, KindLLM:
		return AnalyzerKind(s), nil
	}
	return "", Errorf(EINVALID, "unknown analyzer kind %q", s)
}

// AnalysisRequest describes one analysis call.
type AnalysisRequest struct {
	URL  string       `json:"url"`
	Kind AnalyzerKind `json:"analyzer_type"`

	// Model selects a specific model for the transformer kind.
	// Ignored by the other kinds.
	Model string `json:"model,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *AnalysisRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "url required")
	}
	if _, err := ParseAnalyzerKind(string(r.Kind)); err != nil {
		return err
	}
	return nil
}

// Defaults applied when an analyzer omits fields from its output.
const (
	DefaultScore   = 50.0
	DefaultMessage = "Analysis complete"
)

// AnalysisResult is the normalized output of one analyzer run.
// Left and Right are percentages in [0,100].
type AnalysisResult struct {
	Left        float64 `json:"left"`
	Right       float64 `json:"right"`
	Message     string  `json:"message"`
	Explanation string  `json:"explanation"`
}

// RawResult is an analyzer's output before normalization. Pointer fields
// distinguish absent values from zeroes in the analyzer's JSON.
type RawResult struct {
	Left        *float64 `json:"left"`
	Right       *float64 `json:"right"`
	Message     string   `json:"message"`
	Explanation string   `json:"explanation"`
}

// Normalize converts a raw analyzer output into an AnalysisResult.
// Absent scores default to DefaultScore, an absent message to
// DefaultMessage, and an absent explanation to the message.
func (r *RawResult) Normalize() *AnalysisResult {
	res := &AnalysisResult{Left: DefaultScore, Right: DefaultScore}
	if r.Left != nil {
		res.Left = *r.Left
	}
	if r.Right != nil {
		res.Right = *r.Right
	}
	res.Message = r.Message
	if res.Message == "" {
		res.Message = DefaultMessage
	}
	res.Explanation = r.Explanation
	if res.Explanation == "" {
		res.Explanation = res.Message
	}
	return res
}

// Analyzer scores text for political bias.
type Analyzer interface {
	// Analyze scores the given text using the named strategy. The model
	// argument is only meaningful for the transformer kind and may be empty.
	Analyze(ctx context.Context, kind AnalyzerKind, text string, model string) (*AnalysisResult, error)
}

// HistoryRecord is a persisted log entry of one completed analysis.
// Records are created once per successful analysis and never updated.
type HistoryRecord struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	URL      string         `json:"url"`
	Kind     AnalyzerKind   `json:"analyzer_type"`
	Model    string         `json:"model,omitempty"`
	Result   AnalysisResult `json:"result"`

	// Text is the analyzed text. Transient: persistence stores only
	// its hash.
	Text string `json:"-"`

	// TextHash is a hash of the analyzed text, recorded so identical
	// inputs can be recognized after the fact.
	TextHash string `json:"textHash"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *HistoryRecord) Validate() error {
	if r.Username == "" {
		return Errorf(EINVALID, "history record username required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "history record URL required")
	}
	if _, err := ParseAnalyzerKind(string(r.Kind)); err != nil {
		return err
	}
	return nil
}

// HistoryFilter represents a filter for FindRecordsByUser.
type HistoryFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService records completed analyses.
type HistoryService interface {
	// CreateRecord appends a new history record.
	CreateRecord(ctx context.Context, rec *HistoryRecord) error

	// FindRecordsByUser retrieves a user's records, newest first.
	FindRecordsByUser(ctx context.Context, username string, filter HistoryFilter) ([]*HistoryRecord, error)
}
