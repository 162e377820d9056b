package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzle packs",
	Long:  `Shows the bundled puzzle packs and how many puzzles each holds.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No puzzle packs available.")
		return
	}

	fmt.Println("Puzzle packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Puzzles")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-------")

	for _, p := range packs {
		count := "?"
		if set, err := registry.Load(p.ID); err == nil {
			count = fmt.Sprintf("%d", set.Len())
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, p.ID, p.Title, count)
	}

	fmt.Println()
	fmt.Println("Run 'bee play --difficulty <id>' to play.")
}
