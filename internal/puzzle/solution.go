package puzzle

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Solution is the fixed set of words accepted for one letter set.
// It never changes once built.
type Solution struct {
	letters Letters
	words   []string
	index   map[string]struct{}
}

// NewSolution builds a solution from puzzle data. Words are lowercased and
// deduplicated; empty entries are dropped.
func NewSolution(letters Letters, words []string) *Solution {
	clean := lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, w != ""
	}))
	sort.Strings(clean)

	index := make(map[string]struct{}, len(clean))
	for _, w := range clean {
		index[w] = struct{}{}
	}
	return &Solution{letters: letters.Canonical(), words: clean, index: index}
}

// Letters returns the canonical letter set the solution belongs to.
func (s *Solution) Letters() Letters {
	return s.letters
}

// Has reports whether word is part of the solution.
func (s *Solution) Has(word string) bool {
	_, ok := s.index[word]
	return ok
}

// Words returns the solution words in lexicographic order.
func (s *Solution) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Len returns the number of words in the solution.
func (s *Solution) Len() int {
	return len(s.words)
}

// Pangrams returns the words that use all seven letters.
func (s *Solution) Pangrams() []string {
	return lo.Filter(s.words, func(w string, _ int) bool {
		return DistinctLetters(w) >= Size
	})
}
