package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/platform/tui"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a difficulty.
Press Esc with an empty input to leave a puzzle and return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab/P        - Progress
  Q            - Quit

Examples:
  bee menu
  bee menu --db ./bee.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fail("%v", err)
	}
	rc := runtimeConfig(cfg)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		store = nil
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsProgress {
			goBack, pErr := tui.RunProgress(store, rc.Difficulty, rc.ScreenW, rc.ScreenH)
			if pErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pErr)
			}
			if goBack {
				continue
			}
			break
		}

		difficulty := menuResult.Difficulty
		opts := tui.PlayOptions{
			Runtime:  rc,
			Config:   cfg,
			Load:     func() (*puzzle.Set, error) { return registry.Load(difficulty) },
			Logger:   logger,
			Embedded: true,
		}
		opts.Runtime.Difficulty = difficulty
		if store != nil {
			opts.Guesses = store
			opts.Results = store
		}

		if err := tui.Run(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		}

		// A fresh seed for the next puzzle
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		} else {
			rc.Seed++
		}
	}

	if store != nil {
		store.Close()
	}
}
