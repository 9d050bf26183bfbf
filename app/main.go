package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ewainberg/lab-10/internal/config"
	"github.com/ewainberg/lab-10/internal/dictionary"
	"github.com/ewainberg/lab-10/internal/trie"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel()).
		With().Timestamp().Logger()

	os.Exit(run(cfg, os.Stdin, os.Stdout, logger))
}

func run(cfg *config.Config, in io.Reader, out io.Writer, logger zerolog.Logger) int {
	words, err := dictionary.ReadFile(cfg.Dictionary.Path)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.Dictionary.Path).Msg("Failed to read dictionary")
		if !errors.Is(err, dictionary.ErrOpen) {
			fmt.Fprintln(out, "Error in reading the file.")
			return 1
		}
		fmt.Fprintln(out, "Error in opening the file.")
	}
	if len(words) == 0 {
		fmt.Fprintln(out, "No words found in the dictionary file.")
		return 1
	}

	alphabet := trie.Lowercase()
	if cfg.Dictionary.Alphabet != "" {
		alphabet, err = trie.NewAlphabet(cfg.Dictionary.Alphabet)
		if err != nil {
			logger.Error().Err(err).Msg("Invalid alphabet")
			return 1
		}
	}

	t := trie.New(trie.WithAlphabet(alphabet))
	res, err := dictionary.Load(t, words, dictionary.LoadOptions{
		Strict: cfg.Dictionary.Strict,
		Logger: &logger,
	})
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.Dictionary.Path).Msg("Failed to load dictionary")
		return 1
	}
	logger.Info().
		Int("words", res.Inserted).
		Int("skipped", res.Skipped).
		Int("nodes", t.NodeCount()).
		Msg("Dictionary loaded")

	for _, w := range cfg.Query.Words {
		printCount(out, t, w)
	}

	code := 0
	if cfg.Interactive.Enabled {
		s := newSession(t, in, out, logger)
		s.prompt = cfg.Interactive.Prompt
		s.histFile = cfg.Interactive.HistoryFile
		code = s.loop()
	}

	released, err := t.Destroy()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to release trie")
		return 1
	}
	logger.Debug().Int("nodes", released).Msg("Trie released")
	return code
}

func printCount(out io.Writer, t *trie.Trie, word string) {
	n, err := t.Lookup(word)
	if err != nil {
		fmt.Fprintf(out, "\t%s : %s\n", word, err)
		return
	}
	fmt.Fprintf(out, "\t%s : %d\n", word, n)
}
