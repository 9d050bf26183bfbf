package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is wrapped by every SymbolError.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrDestroyed is returned by any operation on a trie after Destroy.
	ErrDestroyed = errors.New("trie destroyed")
)

// SymbolError reports a word containing a symbol outside the alphabet.
type SymbolError struct {
	Word   string
	Symbol rune
	// Offset is the byte offset of Symbol in Word.
	Offset int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s %q at offset %d in %q", ErrInvalidSymbol, e.Symbol, e.Offset, e.Word)
}

func (e *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}
