package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// MinWordLength is the shortest word a puzzle accepts.
const MinWordLength = 4

// ReadWords reads a newline-separated word list. Words are lowercased;
// blank lines and entries with characters outside a-z are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" || maskOf(w)&(1<<31) != 0 {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return lo.Uniq(words), nil
}

// Matches returns every word that can be spelled from the letters, contains
// the center letter and is long enough to be played. The result is sorted.
func Matches(l Letters, words []string) []string {
	m := newMatcher(l)
	out := lo.Filter(words, func(w string, _ int) bool {
		return len(w) >= MinWordLength && m.matches(maskOf(w))
	})
	out = lo.Uniq(out)
	sort.Strings(out)
	return out
}
