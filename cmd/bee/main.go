// bee is a Spelling-Bee style word puzzle for the terminal.
//
// Usage:
//
//	bee list                 - List puzzle packs
//	bee play [letters]       - Play a puzzle
//	bee menu                 - Pick a difficulty interactively
//	bee serve                - Start SSH server for remote play
//	bee api                  - Start the JSON API
//	bee progress [difficulty] - Show finished and unfinished puzzles
//	bee reset <letters>      - Forget saved guesses for a puzzle
//	bee solve <letters>      - Print a solution from a word list
//	bee generate             - Build puzzle packs from a word list
//	bee config               - Print the configuration in use
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible puzzles and hints
//	--db <path>          - Set database path (default: ~/.bee/bee.db)
//	--config <path>      - Use a custom YAML config
//	--log-level <level>  - debug, info, warn or error
//
// BEE_DB, BEE_CONFIG and BEE_LOG_LEVEL (also read from a .env file) set the
// flag defaults.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/core"

	// Import bundled packs to register them
	_ "github.com/vovakirdan/tui-bee/internal/puzzle/packs"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bee",
	Short: "Spelling Bee - find words in seven letters",
	Long: `Spelling Bee is a word puzzle for your terminal.

Make words of four or more letters from the seven in the hive. Every word
must use the center letter and letters may repeat. A pangram uses all seven.

Available commands:
  list      - Show puzzle packs
  play      - Play a puzzle directly
  menu      - Interactive difficulty picker
  serve     - Start SSH server for remote play
  api       - Start the JSON API
  progress  - View finished and unfinished puzzles
  reset     - Forget saved guesses for a puzzle
  solve     - Print the words of a letter set
  generate  - Build puzzle packs from a word list
  config    - Print the configuration in use

Examples:
  bee list
  bee play --difficulty medium
  bee play taceors
  bee menu
  bee serve --ssh :2222
  bee progress hard`,
}

func init() {
	// Best effort: a missing .env file is normal.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("BEE_DB", "~/.bee/bee.db"), "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("BEE_CONFIG"), "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("BEE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(generateCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadConfig reads the YAML config and applies a --difficulty override.
func loadConfig(difficulty string) (config.BeeConfig, error) {
	cfg, err := config.LoadBee(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset, ok := config.ParsePreset(difficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", difficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig builds the session config from flags, the terminal and cfg.
func runtimeConfig(cfg config.BeeConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	rc.Difficulty = string(cfg.Difficulty)
	rc.StatsEvery = time.Duration(cfg.Stats.TickSeconds) * time.Second
	return rc
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger returns a logger writing to ~/.bee/bee.log, since the TUI owns
// the terminal. Falls back to discarding logs.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".bee")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "bee.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "bee"), func() { f.Close() }
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
