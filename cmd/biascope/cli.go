package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/awalczyk/biascope"
	"github.com/awalczyk/biascope/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB        *sqlite.DB
	Users     biascope.UserService
	Sessions  biascope.SessionService
	History   biascope.HistoryService
	Hasher    biascope.PasswordHasher
	Extractor biascope.TextExtractor
	Analyzer  biascope.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the API server"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a single URL from the command line"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Bind address"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL   string `arg:"" help:"Article URL"`
	Kind  string `name:"analyzer" default:"lexicon" help:"Analyzer kind (lexicon, transformer, llm)"`
	Model string `help:"Model name, passed to kinds that accept one"`
}
