// Package dictionary reads word lists and loads them into a trie.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/ewainberg/lab-10/internal/trie"
)

var (
	// ErrEmpty is returned when a word source holds no words.
	ErrEmpty = errors.New("no words found")
	// ErrOpen wraps a failure to open a dictionary file, as opposed to
	// a failure while reading it.
	ErrOpen = errors.New("failed to open dictionary")
)

// ReadWords splits r on whitespace and returns the words in order. Words
// have no length limit. Bytes that are not valid UTF-8 are kept as they are.
func ReadWords(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var (
		words []string
		word  strings.Builder
	)
	for {
		ch, size, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read words: %w", err)
		}
		switch {
		case ch == utf8.RuneError && size == 1:
			_ = br.UnreadRune()
			b, _ := br.ReadByte()
			word.WriteByte(b)
		case unicode.IsSpace(ch):
			if word.Len() > 0 {
				words = append(words, word.String())
				word.Reset()
			}
		default:
			word.WriteRune(ch)
		}
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}
	return words, nil
}

// ReadFile reads the words of the file at path. Open failures wrap ErrOpen.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Strict stops at the first word the trie rejects. Otherwise rejected
	// words are logged and skipped.
	Strict bool
	Logger *zerolog.Logger
}

// LoadResult summarizes a Load call.
type LoadResult struct {
	Inserted int
	Skipped  int
}

// Load inserts words into t in order.
func Load(t *trie.Trie, words []string, opts LoadOptions) (LoadResult, error) {
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	var res LoadResult
	if len(words) == 0 {
		return res, ErrEmpty
	}
	for i, w := range words {
		if err := t.Insert(w); err != nil {
			if opts.Strict || !errors.Is(err, trie.ErrInvalidSymbol) {
				return res, fmt.Errorf("word %d: %w", i+1, err)
			}
			logger.Warn().Err(err).Int("index", i+1).Msg("Skipping word")
			res.Skipped++
			continue
		}
		res.Inserted++
	}
	logger.Debug().
		Int("inserted", res.Inserted).
		Int("skipped", res.Skipped).
		Int("nodes", t.NodeCount()).
		Msg("Dictionary loaded")
	return res, nil
}
