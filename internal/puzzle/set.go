package puzzle

import (
	"fmt"
	"sort"
)

// Set is a pack of puzzles: canonical letter keys mapped to their words.
type Set struct {
	Difficulty string
	puzzles    map[string][]string
	keys       []string
}

// NewSet builds a pack from raw data keyed by letter strings.
// Keys are canonicalized; a key that is not a valid letter set is an error.
func NewSet(difficulty string, data map[string][]string) (*Set, error) {
	s := &Set{
		Difficulty: difficulty,
		puzzles:    make(map[string][]string, len(data)),
	}
	for raw, words := range data {
		l, err := Canonical(raw)
		if err != nil {
			return nil, fmt.Errorf("puzzle key %q: %w", raw, err)
		}
		key := string(l)
		s.puzzles[key] = append(s.puzzles[key], words...)
	}
	s.keys = make([]string, 0, len(s.puzzles))
	for k := range s.puzzles {
		s.keys = append(s.keys, k)
	}
	sort.Strings(s.keys)
	return s, nil
}

// Keys returns the canonical puzzle keys in sorted order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of puzzles in the pack.
func (s *Set) Len() int {
	return len(s.keys)
}

// Has reports whether the canonical key exists in the pack.
func (s *Set) Has(key string) bool {
	_, ok := s.puzzles[key]
	return ok
}

// Solution returns the solution for a canonical key.
func (s *Set) Solution(key string) (*Solution, bool) {
	words, ok := s.puzzles[key]
	if !ok {
		return nil, false
	}
	return NewSolution(Letters(key), words), true
}

// Data returns a copy of the raw puzzle map, suitable for encoding.
func (s *Set) Data() map[string][]string {
	out := make(map[string][]string, len(s.puzzles))
	for k, words := range s.puzzles {
		out[k] = append([]string(nil), words...)
	}
	return out
}
