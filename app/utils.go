package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/ewainberg/lab-10/internal/trie"
)

var builtIns = []string{"exit", "history"}

var errInterrupted = errors.New("interrupted")

// session reads queries line by line and answers them from the trie.
type session struct {
	trie     *trie.Trie
	hist     *history
	histFile string
	prompt   string

	reader *bufio.Reader
	out    io.Writer
	log    zerolog.Logger

	// fd is the terminal file descriptor, -1 when input is not a terminal.
	fd int
}

func newSession(t *trie.Trie, in io.Reader, out io.Writer, logger zerolog.Logger) *session {
	s := &session{
		trie:   t,
		hist:   &history{},
		reader: bufio.NewReader(in),
		out:    out,
		log:    logger,
		fd:     -1,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.fd = int(f.Fd())
	}
	return s
}

func (s *session) loop() int {
	if s.histFile != "" {
		if err := s.hist.load(s.histFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("file", s.histFile).Msg("Failed to read history")
		}
	}

	for {
		input, err := s.readLine()
		if err != nil {
			if errors.Is(err, errInterrupted) {
				s.saveHistory()
				return 130
			}
			if !errors.Is(err, io.EOF) {
				s.log.Error().Err(err).Msg("Failed to read input")
			}
			s.saveHistory()
			return 0
		}
		argv := strings.Fields(input)
		if len(argv) == 0 {
			continue
		}
		s.hist.add(strings.TrimSpace(input))

		if code, exit := s.callBuiltin(argv); exit {
			s.saveHistory()
			return code
		}
	}
}

func (s *session) readLine() (string, error) {
	if s.fd >= 0 {
		return s.handleInput(s.prompt)
	}
	line, err := s.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *session) saveHistory() {
	if s.histFile == "" {
		return
	}
	if err := s.hist.save(s.histFile, false); err != nil {
		s.log.Warn().Err(err).Str("file", s.histFile).Msg("Failed to write history")
	}
}

// callBuiltin runs argv and reports whether the session should end.
func (s *session) callBuiltin(argv []string) (int, bool) {
	if !slices.Contains(builtIns, argv[0]) {
		for _, w := range argv {
			printCount(s.out, s.trie, w)
		}
		return 0, false
	}
	switch argv[0] {
	case "exit":
		code := 0
		if len(argv) > 1 {
			argCode, err := strconv.Atoi(argv[1])
			if err == nil {
				code = argCode
			}
		}
		return code, true
	case "history":
		s.historyCommand(argv)
	}
	return 0, false
}

func (s *session) historyCommand(argv []string) {
	out, hist := s.out, s.hist
	if len(argv) > 2 {
		switch argv[1] {
		case "-r":
			if err := hist.load(argv[2]); err != nil && !errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(out, "Error reading history file: %s\n", err)
			}
			return
		case "-w":
			if err := hist.save(argv[2], false); err != nil {
				fmt.Fprintf(out, "Error writing history file: %s\n", err)
			}
			return
		case "-a":
			if err := hist.save(argv[2], true); err != nil {
				fmt.Fprintf(out, "Error opening history file: %s\n", err)
			}
			return
		}
	}
	if len(argv) == 2 && strings.HasPrefix(argv[1], "-") {
		fmt.Fprintf(out, "Usage: history %s <filename>\n", argv[1])
		return
	}

	start := 0
	if len(argv) > 1 {
		if n, err := strconv.Atoi(argv[1]); err == nil && n >= 0 && n < hist.len() {
			start = hist.len() - n
		}
	}
	for i := start; i < hist.len(); i++ {
		if command, exists := hist.at(i); exists {
			fmt.Fprintf(out, "    %d %s\n", i+1, command)
		}
	}
}
