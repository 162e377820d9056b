package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

var (
	flagOut    string
	flagFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build puzzle packs from a word list",
	Long: `Find every seven-letter set in a word list, solve it and sort the
puzzles into easy, medium and hard packs using the thresholds in the
generate section of the config.

Examples:
  bee generate --words /usr/share/dict/words --out ./packs
  bee generate --words words.txt --out ./packs --format yaml`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagWords, "words", "/usr/share/dict/words", "Word list, one word per line")
	generateCmd.Flags().StringVar(&flagOut, "out", ".", "Output directory")
	generateCmd.Flags().StringVar(&flagFormat, "format", "json", "Output format: json or yaml")
}

func runGenerate(_ *cobra.Command, _ []string) {
	if flagFormat != "json" && flagFormat != "yaml" {
		fail("unknown format %q (want json or yaml)", flagFormat)
	}

	cfg, err := loadConfig("")
	if err != nil {
		fail("%v", err)
	}

	words, err := readWordFile(flagWords)
	if err != nil {
		fail("%v", err)
	}

	if err := os.MkdirAll(flagOut, 0o755); err != nil {
		fail("creating output directory: %v", err)
	}

	packs := puzzle.Generate(words, config.NewClassifier(cfg.Generate))
	for _, p := range config.Presets() {
		set, ok := packs[p]
		if !ok {
			continue
		}
		path := filepath.Join(flagOut, string(p)+"."+flagFormat)
		if err := puzzle.SaveFile(path, set); err != nil {
			fail("%v", err)
		}
		fmt.Printf("%-6s %5d puzzles  %s\n", p, set.Len(), path)
	}
}
