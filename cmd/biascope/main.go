package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/awalczyk/biascope"
	"github.com/awalczyk/biascope/bcrypt"
	bsexec "github.com/awalczyk/biascope/exec"
	"github.com/awalczyk/biascope/extract"
	"github.com/awalczyk/biascope/gemini"
	"github.com/awalczyk/biascope/goquery"
	bshttp "github.com/awalczyk/biascope/http"
	"github.com/awalczyk/biascope/readability"
	"github.com/awalczyk/biascope/resty"
	bsslog "github.com/awalczyk/biascope/slog"
	"github.com/awalczyk/biascope/sqlite"
	"github.com/awalczyk/biascope/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). ":memory:" selects the
	// in-memory store.
	DBPath string

	// Analyzer registry config path. Set before calling Run().
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	UserService    biascope.UserService
	HistoryService biascope.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("biascope"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'biascope --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BIASCOPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire storage services into dependencies
	m.UserService = sqlite.NewUserService(m.DB)
	m.HistoryService = sqlite.NewHistoryService(m.DB)
	deps.DB = m.DB
	deps.Users = m.UserService
	deps.Sessions = sqlite.NewSessionService(m.DB)
	deps.History = m.HistoryService
	deps.Hasher = bcrypt.NewHasher()

	// Wire the extraction chain
	plain := bshttp.NewFetcher()
	defer plain.Close()
	browser := resty.NewFetcher()
	defer browser.Close()

	chain := &extract.Chain{
		Plain:    plain,
		Browser:  browser,
		Articles: []biascope.ArticleExtractor{trafilatura.NewExtractor(), readability.NewExtractor()},
		Content:  goquery.NewContentExtractor(),
		Limiter:  extract.NewDomainLimiter(1.0),
	}
	deps.Extractor = bsslog.NewLoggingExtractor(chain, logger)

	// Wire the analyzer from the registry config
	config, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}

	analyzer, err := buildAnalyzer(ctx, config, stderr)
	if err != nil {
		return err
	}
	deps.Analyzer = bsslog.NewLoggingAnalyzer(analyzer, logger)

	return kongCtx.Run(deps)
}

// buildAnalyzer assembles the analyzer from the registry config: a
// subprocess analyzer for program-engine kinds, a Gemini analyzer for
// gemini-engine kinds.
func buildAnalyzer(ctx context.Context, config *Config, stderr io.Writer) (biascope.Analyzer, error) {
	var programs biascope.Analyzer = bsexec.NewAnalyzer(
		config.ProgramRegistry(),
		bsexec.WithTimeout(config.Timeout()),
	)

	geminiKinds := config.GeminiKinds()
	if len(geminiKinds) == 0 {
		return programs, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set but the analyzer config uses the gemini engine")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	routes := map[biascope.AnalyzerKind]biascope.Analyzer{}
	for kind, model := range geminiKinds {
		routes[kind] = gemini.NewAnalyzer(client, model)
	}

	return &kindRouter{routes: routes, fallback: programs}, nil
}

func defaultDBPath() string {
	if path := os.Getenv("BIASCOPE_DB"); path != "" {
		return path
	}
	return "biascope.db"
}

func defaultConfigPath() string {
	if path := os.Getenv("BIASCOPE_ANALYZERS"); path != "" {
		return path
	}
	return "analyzers.yaml"
}
