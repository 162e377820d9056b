package puzzle

import "math/bits"

// letterMask is a bit set of a-z letters.
type letterMask uint32

func maskOf(word string) letterMask {
	var m letterMask
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			// Outside the alphabet: set a bit no letter set can contain.
			m |= 1 << 31
			continue
		}
		m |= 1 << (c - 'a')
	}
	return m
}

func popcount(m letterMask) int {
	return bits.OnesCount32(uint32(m &^ (1 << 31)))
}

// matcher tests whether a word can be spelled from a puzzle.
type matcher struct {
	center letterMask
	all    letterMask
}

func newMatcher(l Letters) matcher {
	return matcher{
		center: maskOf(string(l.Center())),
		all:    maskOf(string(l)),
	}
}

func (m matcher) matches(word letterMask) bool {
	return m.center&word == m.center && m.all&word == word
}
