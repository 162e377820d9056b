// Package puzzle holds the puzzle data model: the seven-letter set with its
// center letter, the fixed solution for a set, and the packs of puzzles the
// game picks from. It also knows how to find and generate solutions from a
// plain word list.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Size is the number of letters in a puzzle.
const Size = 7

// ErrInvalidLetters is returned when a string is not seven distinct a-z letters.
var ErrInvalidLetters = errors.New("puzzle: letters must be 7 distinct a-z letters")

// Letters is a seven-letter set. Index 0 is the center letter; the order of
// the remaining letters is display order only.
type Letters string

// ParseLetters validates s as a letter set, keeping its order.
// Spaces are ignored and upper case is folded.
func ParseLetters(s string) (Letters, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	if len(s) != Size {
		return "", fmt.Errorf("%w: got %q", ErrInvalidLetters, s)
	}
	var seen uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return "", fmt.Errorf("%w: %q is not a letter", ErrInvalidLetters, c)
		}
		bit := uint32(1) << (c - 'a')
		if seen&bit != 0 {
			return "", fmt.Errorf("%w: %q repeats", ErrInvalidLetters, c)
		}
		seen |= bit
	}
	return Letters(s), nil
}

// Canonical parses s and returns its canonical form: center first, the other
// six letters sorted.
func Canonical(s string) (Letters, error) {
	l, err := ParseLetters(s)
	if err != nil {
		return "", err
	}
	return l.Canonical(), nil
}

// Center returns the center letter.
func (l Letters) Center() byte {
	if l == "" {
		return 0
	}
	return l[0]
}

// Canonical returns the letters with the center first and the rest sorted.
func (l Letters) Canonical() Letters {
	if len(l) < 2 {
		return l
	}
	rest := []byte(l[1:])
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return Letters(string(l[0]) + string(rest))
}

// Key returns the canonical string used to look up solutions and progress.
func (l Letters) Key() string {
	return string(l.Canonical())
}

// Contains reports whether c is one of the letters.
func (l Letters) Contains(c byte) bool {
	return strings.IndexByte(string(l), c) >= 0
}

// Upper returns the letters in display case, separated by spaces.
func (l Letters) Upper() string {
	parts := make([]string, len(l))
	for i := range parts {
		parts[i] = strings.ToUpper(string(l[i]))
	}
	return strings.Join(parts, " ")
}

// String implements fmt.Stringer.
func (l Letters) String() string {
	return string(l)
}

// DistinctLetters counts the distinct letters in a word.
func DistinctLetters(word string) int {
	return popcount(maskOf(word))
}
