package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
	"github.com/vovakirdan/tui-bee/internal/platform/tui"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

var (
	flagDifficulty string
	flagPuzzles    string
)

var playCmd = &cobra.Command{
	Use:   "play [letters]",
	Short: "Play a puzzle",
	Long: `Start a puzzle. Without letters a random puzzle of the chosen
difficulty is picked. Progress is saved and restored per letter set.

Controls:
  Enter    - Submit word
  Esc      - Clear input
  Tab      - Shuffle letters
  Ctrl+T   - Hint
  Ctrl+S   - Toggle stats
  Ctrl+X   - Reveal all words (press twice)
  Ctrl+C   - Quit

Examples:
  bee play
  bee play --difficulty hard
  bee play taceors
  bee play --puzzles ./my-puzzles.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Puzzle pack: easy, medium, hard")
	playCmd.Flags().StringVar(&flagPuzzles, "puzzles", "", "Load puzzles from a JSON or YAML file instead of a bundled pack")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	rc := runtimeConfig(cfg)
	if len(args) == 1 {
		rc.Letters = args[0]
	}

	load := func() (*puzzle.Set, error) { return registry.Load(rc.Difficulty) }
	if flagPuzzles != "" {
		path := flagPuzzles
		load = func() (*puzzle.Set, error) { return puzzle.LoadFile(path) }
		rc.Difficulty = ""
	} else if !registry.Exists(rc.Difficulty) {
		fail("unknown difficulty %q\nRun 'bee list' to see available packs.", rc.Difficulty)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	opts := tui.PlayOptions{
		Runtime: rc,
		Config:  cfg,
		Load:    load,
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - progress stays in memory
		opts.Guesses = bee.NewMemoryStore()
	} else {
		opts.Guesses = store
		opts.Results = store
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
