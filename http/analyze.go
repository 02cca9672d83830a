package http

import (
	"fmt"
	"net/http"

	"github.com/awalczyk/biascope"
)

// analyzeResponse is the success body of POST /analyze.
type analyzeResponse struct {
	Results        *biascope.AnalysisResult `json:"results"`
	ConsoleMessage string                   `json:"console_message"`
}

// handleAnalyze runs the full pipeline: extract text from the URL, score
// it, persist a history record, and return the result. Extraction fails
// soft, so its messages flow into the analyzer like any other text;
// analyzer failures short-circuit with no partial persistence.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	session, err := s.currentSession(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	var req biascope.AnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.Error(w, r, err)
		return
	}

	text := s.Extractor.ExtractText(r.Context(), req.URL)

	result, err := s.Analyzer.Analyze(r.Context(), req.Kind, text, req.Model)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	rec := &biascope.HistoryRecord{
		Username: session.Username,
		URL:      req.URL,
		Kind:     req.Kind,
		Model:    req.Model,
		Result:   *result,
		Text:     text,
	}
	if err := s.History.CreateRecord(r.Context(), rec); err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, analyzeResponse{
		Results:        result,
		ConsoleMessage: fmt.Sprintf("Successfully analyzed article from %s", req.URL),
	})
}

// handleHistory returns the caller's analysis history, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	session, err := s.currentSession(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	recs, err := s.History.FindRecordsByUser(r.Context(), session.Username, biascope.HistoryFilter{})
	if err != nil {
		s.Error(w, r, err)
		return
	}

	if recs == nil {
		recs = []*biascope.HistoryRecord{}
	}
	s.writeJSON(w, http.StatusOK, recs)
}
