package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/awalczyk/biascope"
	bsexec "github.com/awalczyk/biascope/exec"
	"github.com/awalczyk/biascope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses the registry file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "analyzers.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
timeout_seconds: 30
analyzers:
  lexicon:
    command: lexicon-scorer
    args: ["--quiet"]
  transformer:
    command: transformer-scorer
    model_flag: --model
  llm:
    engine: gemini
    model: gemini-2.5-pro
`), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, config.Timeout())

		registry := config.ProgramRegistry()
		require.Len(t, registry, 2)
		assert.Equal(t, bsexec.Program{Command: "lexicon-scorer", Args: []string{"--quiet"}}, registry[biascope.KindLexicon])
		assert.Equal(t, "--model", registry[biascope.KindTransformer].ModelFlag)

		kinds := config.GeminiKinds()
		require.Len(t, kinds, 1)
		assert.Equal(t, "gemini-2.5-pro", kinds[biascope.KindLLM])
	})

	t.Run("missing file yields the defaults", func(t *testing.T) {
		t.Parallel()

		config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		registry := config.ProgramRegistry()
		assert.Equal(t, "bias-analyzer-lexicon", registry[biascope.KindLexicon].Command)
		assert.Equal(t, "--model", registry[biascope.KindTransformer].ModelFlag)
		assert.Equal(t, "bias-analyzer-bert", registry[biascope.KindLLM].Command)
		assert.Equal(t, bsexec.DefaultTimeout, config.Timeout())
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "analyzers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("analyzers: ["), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "analyzers.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
analyzers:
  astrology:
    command: star-scorer
`), 0o644))

		_, err := LoadConfig(path)
		assert.Equal(t, biascope.EINVALID, biascope.ErrorCode(err))
	})

	t.Run("rejects a program entry without a command", func(t *testing.T) {
		t.Parallel()

		config := &Config{Analyzers: map[string]AnalyzerConfig{"lexicon": {}}}
		err := config.Validate()
		assert.Equal(t, biascope.EINVALID, biascope.ErrorCode(err))
	})

	t.Run("rejects an unknown engine", func(t *testing.T) {
		t.Parallel()

		config := &Config{Analyzers: map[string]AnalyzerConfig{"lexicon": {Engine: "carrier-pigeon"}}}
		err := config.Validate()
		assert.Equal(t, biascope.EINVALID, biascope.ErrorCode(err))
	})
}

func TestKindRouter(t *testing.T) {
	t.Parallel()

	llm := &mock.Analyzer{
		AnalyzeFn: func(ctx context.Context, kind biascope.AnalyzerKind, text, model string) (*biascope.AnalysisResult, error) {
			return &biascope.AnalysisResult{Message: "routed"}, nil
		},
	}
	rest := &mock.Analyzer{
		AnalyzeFn: func(ctx context.Context, kind biascope.AnalyzerKind, text, model string) (*biascope.AnalysisResult, error) {
			return &biascope.AnalysisResult{Message: "fallback"}, nil
		},
	}

	router := &kindRouter{
		routes:   map[biascope.AnalyzerKind]biascope.Analyzer{biascope.KindLLM: llm},
		fallback: rest,
	}

	res, err := router.Analyze(context.Background(), biascope.KindLLM, "text", "")
	require.NoError(t, err)
	assert.Equal(t, "routed", res.Message)

	res, err = router.Analyze(context.Background(), biascope.KindLexicon, "text", "")
	require.NoError(t, err)
	assert.Equal(t, "fallback", res.Message)
}
