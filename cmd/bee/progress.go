package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress [difficulty]",
	Short: "Show finished and unfinished puzzles",
	Long: `Display the best finished puzzles for a difficulty, or a summary of
every difficulty, followed by the puzzles with saved guesses.

Examples:
  bee progress
  bee progress hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening progress database: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		difficulty := args[0]
		if !registry.Exists(difficulty) {
			fail("unknown difficulty %q\nRun 'bee list' to see available packs.", difficulty)
		}
		printResults(store, difficulty)
	} else {
		printSummary(store)
	}

	fmt.Println()
	printInProgress(store)
}

func printResults(store *storage.Store, difficulty string) {
	results, err := store.TopResults(difficulty, 10)
	if err != nil {
		fail("retrieving results: %v", err)
	}

	fmt.Printf("Finished puzzles - %s\n\n", difficulty)
	if len(results) == 0 {
		fmt.Println("No puzzles finished yet.")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-9s  %-7s  %-5s  %-8s  %s\n", "Rank", "Letters", "Points", "Words", "Hints", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-9s  %-7s  %-5s  %-8s  %s\n", "----", "-------", "------", "-----", "-----", "----", "----")
	for i, r := range results {
		points := fmt.Sprintf("%d/%d", r.Points, r.MaxPoints)
		if r.Cheated {
			points += "*"
		}
		fmt.Printf("  %-4d  %-7s  %-9s  %-7s  %-5d  %-8s  %s\n",
			i+1,
			strings.ToUpper(r.Letters),
			points,
			fmt.Sprintf("%d/%d", r.Found, r.Total),
			r.Hints,
			time.Duration(r.Duration)*time.Second,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if best, err := store.BestPoints(difficulty); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.AllDifficultyStats()
	if err != nil {
		fail("retrieving results: %v", err)
	}

	fmt.Println("Finished puzzles")
	fmt.Println()
	fmt.Printf("  %-8s  %-9s  %-8s  %-5s  %-9s  %s\n", "Pack", "Completed", "Revealed", "Best", "Avg hints", "Last played")
	fmt.Printf("  %-8s  %-9s  %-8s  %-5s  %-9s  %s\n", "----", "---------", "--------", "----", "---------", "-----------")
	for _, p := range registry.List() {
		s, ok := stats[p.ID]
		if !ok {
			fmt.Printf("  %-8s  %-9d  %-8d  %-5s  %-9s  %s\n", p.ID, 0, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-8s  %-9d  %-8d  %-5d  %-9.1f  %s\n",
			p.ID, s.Completed, s.Cheated, s.BestPoints, s.AvgHints, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printInProgress(store *storage.Store) {
	progress, err := store.Progress("")
	if err != nil {
		fail("retrieving saved guesses: %v", err)
	}

	fmt.Println("Puzzles with saved guesses")
	fmt.Println()
	if len(progress) == 0 {
		fmt.Println("None.")
		return
	}
	for _, p := range progress {
		fmt.Printf("  %-7s  %3d words  %s\n", strings.ToUpper(p.Letters), p.Found, p.LastPlayed.Format("2006-01-02 15:04"))
	}
}
