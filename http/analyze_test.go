package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/awalczyk/biascope"
	"github.com/awalczyk/biascope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("runs the pipeline and records history", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()
		s.Extractor = &mock.TextExtractor{
			ExtractTextFn: func(ctx context.Context, url string) string {
				assert.Equal(t, "http://example.com/article", url)
				return "the article text"
			},
		}
		s.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, kind biascope.AnalyzerKind, text, model string) (*biascope.AnalysisResult, error) {
				assert.Equal(t, biascope.KindLexicon, kind)
				assert.Equal(t, "the article text", text)
				assert.Empty(t, model)
				return &biascope.AnalysisResult{Left: 60, Right: 40, Message: "ok", Explanation: "ok"}, nil
			},
		}

		var recorded []*biascope.HistoryRecord
		s.History = &mock.HistoryService{
			CreateRecordFn: func(ctx context.Context, rec *biascope.HistoryRecord) error {
				recorded = append(recorded, rec)
				return nil
			},
		}

		resp, body := doJSON(t, http.MethodPost, ts.URL+"/analyze",
			map[string]string{"url": "http://example.com/article", "analyzer_type": "lexicon"}, "tok")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Successfully analyzed article from http://example.com/article", body["console_message"])
		results, ok := body["results"].(map[string]any)
		require.True(t, ok, "results missing from response")
		assert.Equal(t, 60.0, results["left"])
		assert.Equal(t, 40.0, results["right"])
		assert.Equal(t, "ok", results["message"])
		assert.Equal(t, "ok", results["explanation"])

		require.Len(t, recorded, 1)
		rec := recorded[0]
		assert.Equal(t, "alice", rec.Username)
		assert.Equal(t, "http://example.com/article", rec.URL)
		assert.Equal(t, biascope.KindLexicon, rec.Kind)
		assert.Equal(t, "the article text", rec.Text)
		assert.Equal(t, 60.0, rec.Result.Left)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()
		s.History = &mock.HistoryService{
			CreateRecordFn: func(ctx context.Context, rec *biascope.HistoryRecord) error {
				t.Error("unauthenticated request must not be recorded")
				return nil
			},
		}

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/analyze",
			map[string]string{"url": "http://example.com/article", "analyzer_type": "lexicon"}, "")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a missing url", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/analyze",
			map[string]string{"analyzer_type": "lexicon"}, "tok")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects an unknown analyzer", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/analyze",
			map[string]string{"url": "http://example.com/article", "analyzer_type": "tarot"}, "tok")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("analyzer failure persists nothing", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()
		s.Extractor = &mock.TextExtractor{
			ExtractTextFn: func(ctx context.Context, url string) string { return "text" },
		}
		s.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, kind biascope.AnalyzerKind, text, model string) (*biascope.AnalysisResult, error) {
				return nil, biascope.Errorf(biascope.ENOTFOUND, "analyzer program not found: bias-analyzer-lexicon")
			},
		}
		s.History = &mock.HistoryService{
			CreateRecordFn: func(ctx context.Context, rec *biascope.HistoryRecord) error {
				t.Error("failed analysis must not be recorded")
				return nil
			},
		}

		resp, body := doJSON(t, http.MethodPost, ts.URL+"/analyze",
			map[string]string{"url": "http://example.com/article", "analyzer_type": "lexicon"}, "tok")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "analyzer program not found: bias-analyzer-lexicon", body["error"])
	})
}

func TestHistory(t *testing.T) {
	t.Parallel()

	t.Run("returns the caller's records", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()
		s.History = &mock.HistoryService{
			FindRecordsByUserFn: func(ctx context.Context, username string, filter biascope.HistoryFilter) ([]*biascope.HistoryRecord, error) {
				assert.Equal(t, "alice", username)
				return []*biascope.HistoryRecord{
					{ID: "r2", Username: "alice", URL: "http://example.com/b"},
					{ID: "r1", Username: "alice", URL: "http://example.com/a"},
				}, nil
			},
		}

		req, err := http.NewRequest(http.MethodGet, ts.URL+"/history", nil)
		require.NoError(t, err)
		req.AddCookie(sessionCookie("tok"))

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var recs []*biascope.HistoryRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
		require.Len(t, recs, 2)
		assert.Equal(t, "http://example.com/b", recs[0].URL)
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()
		s.History = &mock.HistoryService{
			FindRecordsByUserFn: func(ctx context.Context, username string, filter biascope.HistoryFilter) ([]*biascope.HistoryRecord, error) {
				return nil, nil
			},
		}

		req, err := http.NewRequest(http.MethodGet, ts.URL+"/history", nil)
		require.NoError(t, err)
		req.AddCookie(sessionCookie("tok"))

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()

		s, ts := newTestServer(t)
		s.Sessions = aliceSessions()

		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/history", nil, "")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
