package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/awalczyk/biascope"
	"github.com/awalczyk/biascope/extract"
	"github.com/awalczyk/biascope/mock"
	"github.com/stretchr/testify/assert"
)

// failFetcher fails the test if any network call is made.
func failFetcher(t *testing.T) *mock.Fetcher {
	t.Helper()
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			t.Fatalf("unexpected fetch of %s", url)
			return "", nil
		},
	}
}

// errFetcher always fails with the given error.
func errFetcher(err error) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", err
		},
	}
}

// okFetcher always returns the given HTML.
func okFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return html, nil
		},
	}
}

func articleExtractor(text string) *mock.ArticleExtractor {
	return &mock.ArticleExtractor{
		ExtractFn: func(html string) (*biascope.Article, error) {
			return &biascope.Article{Text: text}, nil
		},
	}
}

func TestChain_DownloadLinks(t *testing.T) {
	t.Parallel()

	chain := &extract.Chain{
		Plain:   failFetcher(t),
		Browser: failFetcher(t),
	}

	for _, url := range []string{
		"http://example.com/report.pdf",
		"http://example.com/archive.ZIP",
		"http://example.com/setup.exe",
		"http://example.com/sheet.xlsx",
		"http://example.com/deck.pptx?utm=1",
	} {
		got := chain.ExtractText(context.Background(), url)
		assert.Equal(t, extract.MsgDownloadLink, got, url)
	}
}

func TestChain_ArticlePass(t *testing.T) {
	t.Parallel()

	t.Run("returns article text above the threshold", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("politics and policy ", 20)
		chain := &extract.Chain{
			Plain:    okFetcher("<html>irrelevant</html>"),
			Browser:  failFetcher(t),
			Articles: []biascope.ArticleExtractor{articleExtractor(body)},
		}

		got := chain.ExtractText(context.Background(), "http://example.com/article")
		assert.Equal(t, strings.TrimSpace(body), got)
	})

	t.Run("truncates long articles", func(t *testing.T) {
		t.Parallel()

		chain := &extract.Chain{
			Plain:    okFetcher("<html></html>"),
			Browser:  failFetcher(t),
			Articles: []biascope.ArticleExtractor{articleExtractor(strings.Repeat("a", 20000))},
		}

		got := chain.ExtractText(context.Background(), "http://example.com/article")
		assert.Len(t, got, biascope.MaxTextLen)
	})

	t.Run("tries the next extractor when the first comes up short", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("substantial article body ", 10)
		chain := &extract.Chain{
			Plain:   okFetcher("<html></html>"),
			Browser: failFetcher(t),
			Articles: []biascope.ArticleExtractor{
				articleExtractor("too short"),
				articleExtractor(long),
			},
		}

		got := chain.ExtractText(context.Background(), "http://example.com/article")
		assert.Equal(t, strings.TrimSpace(long), got)
	})
}

func TestChain_SelectorFallback(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("main content text ", 20)
	chain := &extract.Chain{
		Plain:    errFetcher(biascope.Errorf(biascope.EUNAVAILABLE, "connection refused")),
		Browser:  okFetcher("<html>page</html>"),
		Content:  &mock.ContentExtractor{ExtractContentFn: func(html string) string { return strings.TrimSpace(long) }},
		Articles: nil,
	}

	got := chain.ExtractText(context.Background(), "http://example.com/article")
	assert.Equal(t, strings.TrimSpace(long), got)
}

func TestChain_ErrorMessages(t *testing.T) {
	t.Parallel()

	t.Run("404 yields the not-found message", func(t *testing.T) {
		t.Parallel()

		notFound := biascope.Errorf(biascope.ENOTFOUND, "HTTP 404")
		chain := &extract.Chain{
			Plain:   errFetcher(notFound),
			Browser: errFetcher(notFound),
		}

		got := chain.ExtractText(context.Background(), "http://example.com/missing")
		assert.Equal(t, extract.MsgNotFound, got)
	})

	t.Run("403 yields the forbidden message", func(t *testing.T) {
		t.Parallel()

		forbidden := biascope.Errorf(biascope.EUNAUTHORIZED, "HTTP 403")
		chain := &extract.Chain{
			Plain:   errFetcher(forbidden),
			Browser: errFetcher(forbidden),
		}

		got := chain.ExtractText(context.Background(), "http://example.com/blocked")
		assert.Equal(t, extract.MsgForbidden, got)
	})

	t.Run("everything failing yields the generic message", func(t *testing.T) {
		t.Parallel()

		chain := &extract.Chain{
			Plain:   okFetcher("<html></html>"),
			Browser: okFetcher("<html></html>"),
			Content: &mock.ContentExtractor{ExtractContentFn: func(html string) string { return "thin" }},
		}

		got := chain.ExtractText(context.Background(), "http://example.com/paywalled")
		assert.Equal(t, extract.MsgFailed, got)
	})
}

func TestChain_RespectsLimiter(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	chain := &extract.Chain{
		Plain:   failFetcher(t),
		Browser: failFetcher(t),
		Limiter: extract.NewDomainLimiter(0.001),
	}

	// With the context already canceled the limiter wait fails and the
	// chain reports the generic message without fetching.
	got := chain.ExtractText(canceled, "http://example.com/article")
	assert.Equal(t, extract.MsgFailed, got)
}
