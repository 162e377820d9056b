package packs

import (
	"testing"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
	"github.com/vovakirdan/tui-bee/internal/registry"
)

func TestBundledPacksRegistered(t *testing.T) {
	for _, p := range config.Presets() {
		if !registry.Exists(string(p)) {
			t.Errorf("pack %q not registered", p)
		}
	}
}

// Every bundled word must be playable: long enough, spelled from the
// puzzle letters and containing the center.
func TestBundledPacksAreValid(t *testing.T) {
	for _, p := range config.Presets() {
		t.Run(string(p), func(t *testing.T) {
			s, err := Load(p)
			if err != nil {
				t.Fatalf("Load(%s) failed: %v", p, err)
			}
			if s.Len() == 0 {
				t.Fatalf("pack %s is empty", p)
			}
			for _, key := range s.Keys() {
				sol, _ := s.Solution(key)
				words := sol.Words()
				if got := puzzle.Matches(puzzle.Letters(key), words); len(got) != len(words) {
					t.Errorf("%s: %d of %d words do not fit the letters", key, len(words)-len(got), len(words))
				}
				if len(sol.Pangrams()) == 0 {
					t.Errorf("%s has no pangram", key)
				}
			}
		})
	}
}
