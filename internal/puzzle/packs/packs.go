// Package packs embeds the bundled puzzle packs and registers them.
package packs

import (
	"embed"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/registry"
)

//go:embed data/*.json
var data embed.FS

var titles = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "Easy",
	config.DifficultyMedium: "Medium",
	config.DifficultyHard:   "Hard",
}

func init() {
	for i, p := range config.Presets() {
		registry.Register(string(p), titles[p], i, loader(p))
	}
}

func loader(p config.DifficultyPreset) registry.Factory {
	return func() (*puzzle.Set, error) {
		return Load(p)
	}
}

// Load parses a bundled pack.
func Load(p config.DifficultyPreset) (*puzzle.Set, error) {
	raw, err := data.ReadFile("data/" + string(p) + ".json")
	if err != nil {
		return nil, err
	}
	s, err := puzzle.Parse(raw, ".json")
	if err != nil {
		return nil, err
	}
	s.Difficulty = string(p)
	return s, nil
}
