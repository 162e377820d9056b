package puzzle

import (
	"sort"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-bee/internal/config"
)

// wordGroup holds the words sharing one set of distinct letters.
type wordGroup struct {
	mask  letterMask
	words []string
}

// Generate builds one pack per difficulty from a word list.
// Every seven-letter group of a pangram becomes a puzzle whose center is its
// alphabetically first letter. Puzzles the classifier does not keep are dropped.
func Generate(words []string, c *config.Classifier) map[config.DifficultyPreset]*Set {
	groups := groupWords(lo.Uniq(words))

	data := make(map[config.DifficultyPreset]map[string][]string)
	for _, p := range config.Presets() {
		data[p] = make(map[string][]string)
	}

	for _, g := range groups {
		if popcount(g.mask) != Size {
			continue
		}
		l := lettersOf(g.mask)
		m := newMatcher(l)

		var solution []string
		for _, other := range groups {
			if m.matches(other.mask) {
				solution = append(solution, other.words...)
			}
		}
		sort.Strings(solution)
		if !c.Keep(solution) {
			continue
		}
		data[c.Classify(solution)][string(l)] = solution
	}

	out := make(map[config.DifficultyPreset]*Set, len(data))
	for p, puzzles := range data {
		// Keys come from lettersOf, so they are always valid.
		s, _ := NewSet(string(p), puzzles)
		out[p] = s
	}
	return out
}

func groupWords(words []string) []wordGroup {
	byMask := make(map[letterMask]*wordGroup)
	for _, w := range words {
		if len(w) < MinWordLength {
			continue
		}
		m := maskOf(w)
		if m&(1<<31) != 0 || popcount(m) > Size {
			continue
		}
		g, ok := byMask[m]
		if !ok {
			g = &wordGroup{mask: m}
			byMask[m] = g
		}
		g.words = append(g.words, w)
	}

	groups := make([]wordGroup, 0, len(byMask))
	for _, g := range byMask {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].mask < groups[j].mask
	})
	return groups
}

// lettersOf lists the letters of a mask in alphabetical order.
func lettersOf(m letterMask) Letters {
	var b []byte
	for c := byte('a'); c <= 'z'; c++ {
		if m&(1<<(c-'a')) != 0 {
			b = append(b, c)
		}
	}
	return Letters(b)
}
