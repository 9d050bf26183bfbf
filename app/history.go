package main

import (
	"bufio"
	"os"
	"strings"
)

// history holds the lines typed in a session. appended marks how many
// entries are already in the history file, so "history -a" only adds new ones.
type history struct {
	entries  []string
	appended int
}

func (h *history) add(line string) {
	h.entries = append(h.entries, line)
}

func (h *history) at(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

func (h *history) len() int {
	return len(h.entries)
}

// load appends the non-empty lines of path.
func (h *history) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	h.appended = len(h.entries)
	return nil
}

// save writes every entry to path, or only the entries not yet written
// when appendOnly is set.
func (h *history) save(path string, appendOnly bool) error {
	flags, from := os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0
	if appendOnly {
		flags, from = os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.appended
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range h.entries[from:] {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	h.appended = len(h.entries)
	return nil
}
