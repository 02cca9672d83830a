package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	bshttp "github.com/awalczyk/biascope/http"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := bshttp.NewServer(deps.Logger)
	srv.Addr = c.Addr
	srv.Users = deps.Users
	srv.Sessions = deps.Sessions
	srv.History = deps.History
	srv.Hasher = deps.Hasher
	srv.Extractor = deps.Extractor
	srv.Analyzer = deps.Analyzer

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
