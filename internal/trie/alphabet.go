package trie

import (
	"fmt"
	"unicode/utf8"
)

// Alphabet maps the symbols legal in a key to child slots.
type Alphabet interface {
	// Size returns the number of symbols, which is the child slot count of every node.
	Size() int
	// Index returns the slot for r, or false if r is not in the alphabet.
	Index(r rune) (int, bool)
}

// Lowercase returns the default alphabet, 'a' through 'z'.
func Lowercase() Alphabet {
	return runeRange{lo: 'a', hi: 'z'}
}

type runeRange struct {
	lo, hi rune
}

func (a runeRange) Size() int {
	return int(a.hi-a.lo) + 1
}

func (a runeRange) Index(r rune) (int, bool) {
	if r < a.lo || r > a.hi {
		return 0, false
	}
	return int(r - a.lo), true
}

type symbolSet struct {
	index map[rune]int
}

func (a symbolSet) Size() int {
	return len(a.index)
}

func (a symbolSet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// NewAlphabet builds an alphabet from an explicit set of symbols. Slots follow
// the order of symbols, which must be valid UTF-8.
func NewAlphabet(symbols string) (Alphabet, error) {
	if !utf8.ValidString(symbols) {
		return nil, fmt.Errorf("alphabet %q is not valid UTF-8", symbols)
	}
	index := make(map[rune]int)
	for _, r := range symbols {
		if _, exists := index[r]; exists {
			return nil, fmt.Errorf("duplicate symbol %q in alphabet", r)
		}
		index[r] = len(index)
	}
	return symbolSet{index: index}, nil
}
