package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/httpserver"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

var (
	flagHTTPAddr    string
	flagSessionTTL  time.Duration
	flagMaxSessions int
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the JSON API",
	Long: `Serve puzzles over HTTP. Sessions are kept in memory; finished
puzzles are recorded in the progress database.

Examples:
  bee api
  bee api --http :9000
  curl -X POST localhost:8080/api/games -d '{"difficulty":"easy"}'`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
	apiCmd.Flags().DurationVar(&flagSessionTTL, "session-ttl", time.Hour, "Drop games idle for longer than this")
	apiCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 10000, "Maximum number of games kept in memory")
}

func runAPI(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, "bee-api")

	srvCfg := httpserver.Config{
		Bee:         cfg,
		Logger:      logger,
		Seed:        flagSeed,
		SessionTTL:  flagSessionTTL,
		MaxSessions: flagMaxSessions,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database, results will not be saved", "error", err)
	} else {
		defer store.Close()
		srvCfg.Results = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting puzzle API on %s\n", flagHTTPAddr)
	if err := httpserver.New(srvCfg).ListenAndServe(ctx, flagHTTPAddr); err != nil {
		fail("server: %v", err)
	}
}
