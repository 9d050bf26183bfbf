package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ewainberg/lab-10/internal/config"
	"github.com/ewainberg/lab-10/internal/trie"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeDictionary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(path string) *config.Config {
	return &config.Config{
		Dictionary: config.DictionaryConfig{Path: path},
		Query:      config.QueryConfig{Words: config.DefaultQueries},
		Interactive: config.InteractiveConfig{
			Prompt: "> ",
		},
		Log: config.LogConfig{Level: "info"},
	}
}

func TestRun_DefaultQueries(t *testing.T) {
	cfg := testConfig(writeDictionary(t, "note\nucf\nno\nnot\nnote\n"))

	var out bytes.Buffer
	code := run(cfg, strings.NewReader(""), &out, zerolog.Nop())
	assert.Equal(t, 0, code)
	assert.Equal(t, "\tnotaword : 0\n\tucf : 1\n\tno : 1\n\tnote : 2\n\tcorg : 0\n", out.String())
}

func TestRun_MissingDictionary(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.txt"))

	var out bytes.Buffer
	code := run(cfg, strings.NewReader(""), &out, zerolog.Nop())
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error in opening the file.\nNo words found in the dictionary file.\n", out.String())
}

func TestRun_UnreadableDictionary(t *testing.T) {
	cfg := testConfig(t.TempDir())

	var out bytes.Buffer
	code := run(cfg, strings.NewReader(""), &out, zerolog.Nop())
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error in reading the file.\n", out.String())
}

func TestRun_LongWord(t *testing.T) {
	// Longer than any scanner token buffer; skipped only for its symbols.
	long := strings.Repeat("A", 2<<20)
	cfg := testConfig(writeDictionary(t, "note "+long+"\nnote\n"))
	cfg.Query.Words = []string{"note", "a"}

	var out bytes.Buffer
	code := run(cfg, strings.NewReader(""), &out, zerolog.Nop())
	assert.Equal(t, 0, code)
	assert.Equal(t, "\tnote : 2\n\ta : 0\n", out.String())

	cfg.Dictionary.Strict = true
	out.Reset()
	assert.Equal(t, 1, run(cfg, strings.NewReader(""), &out, zerolog.Nop()))
	assert.Empty(t, out.String())
}

func TestRun_EmptyDictionary(t *testing.T) {
	cfg := testConfig(writeDictionary(t, "\n\n"))

	var out bytes.Buffer
	code := run(cfg, strings.NewReader(""), &out, zerolog.Nop())
	assert.Equal(t, 1, code)
	assert.Equal(t, "No words found in the dictionary file.\n", out.String())
}

func TestRun_Strict(t *testing.T) {
	cfg := testConfig(writeDictionary(t, "note Note no\n"))
	cfg.Dictionary.Strict = true

	var out bytes.Buffer
	assert.Equal(t, 1, run(cfg, strings.NewReader(""), &out, zerolog.Nop()))
	assert.Empty(t, out.String())

	cfg.Dictionary.Strict = false
	out.Reset()
	cfg.Query.Words = []string{"note", "no"}
	assert.Equal(t, 0, run(cfg, strings.NewReader(""), &out, zerolog.Nop()))
	assert.Equal(t, "\tnote : 1\n\tno : 1\n", out.String())
}

func TestRun_CustomAlphabet(t *testing.T) {
	cfg := testConfig(writeDictionary(t, "don't can't don't\n"))
	cfg.Dictionary.Alphabet = "abcdefghijklmnopqrstuvwxyz'"
	cfg.Query.Words = []string{"don't", "dont"}

	var out bytes.Buffer
	assert.Equal(t, 0, run(cfg, strings.NewReader(""), &out, zerolog.Nop()))
	assert.Equal(t, "\tdon't : 2\n\tdont : 0\n", out.String())

	cfg.Dictionary.Alphabet = "aa"
	assert.Equal(t, 1, run(cfg, strings.NewReader(""), &out, zerolog.Nop()))
}

func TestRun_Interactive(t *testing.T) {
	cfg := testConfig(writeDictionary(t, "note\nucf\nno\nnot\nnote\n"))
	cfg.Query.Words = nil
	cfg.Interactive.Enabled = true

	var out bytes.Buffer
	in := strings.NewReader("note\n\nno corg\nexit 3\nucf\n")
	code := run(cfg, in, &out, zerolog.Nop())
	assert.Equal(t, 3, code)
	assert.Equal(t, "\tnote : 2\n\tno : 1\n\tcorg : 0\n", out.String())
}

func TestPrintCount_InvalidSymbol(t *testing.T) {
	tr := trie.New()
	require.NoError(t, tr.Insert("no"))

	var out bytes.Buffer
	printCount(&out, tr, "No")
	assert.Equal(t, "\tNo : invalid symbol 'N' at offset 0 in \"No\"\n", out.String())
}
