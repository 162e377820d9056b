package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

var flagResetPlayer string

var resetCmd = &cobra.Command{
	Use:   "reset <letters>",
	Short: "Forget saved guesses for a puzzle",
	Long: `Delete the stored guesses of one letter set so the puzzle starts
over. Finished-puzzle results are kept.

Examples:
  bee reset taceors
  bee reset taceors --player alice   # an SSH user's progress`,
	Args: cobra.ExactArgs(1),
	Run:  runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagResetPlayer, "player", "", "SSH username whose progress to reset")
}

func runReset(_ *cobra.Command, args []string) {
	letters, err := puzzle.Canonical(args[0])
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening progress database: %v", err)
	}
	defer store.Close()

	n, err := store.Namespace(flagResetPlayer).ClearGuesses(letters.Key())
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Removed %d saved words for %s.\n", n, letters.Upper())
}
