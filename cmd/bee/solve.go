package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

var flagWords string

var solveCmd = &cobra.Command{
	Use:   "solve <letters>",
	Short: "Print every word a letter set allows",
	Long: `Find the words of a word list that use only the given letters and
contain the center letter (the first one given), with their points.

Examples:
  bee solve taceors --words /usr/share/dict/words`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagWords, "words", "/usr/share/dict/words", "Word list, one word per line")
}

func runSolve(_ *cobra.Command, args []string) {
	letters, err := puzzle.Canonical(args[0])
	if err != nil {
		fail("%v", err)
	}

	words, err := readWordFile(flagWords)
	if err != nil {
		fail("%v", err)
	}

	matches := puzzle.Matches(letters, words)
	total := 0
	for _, w := range matches {
		s := bee.ScoreWord(w)
		total += s.Points
		mark := ""
		if s.Pangram {
			mark = "  pangram"
		}
		fmt.Printf("%-16s %2d%s\n", w, s.Points, mark)
	}
	fmt.Printf("\n%d words, %d points\n", len(matches), total)
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return puzzle.ReadWords(f)
}
