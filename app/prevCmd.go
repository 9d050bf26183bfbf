package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// handleInput reads one line from the terminal in raw mode. Up and down
// arrows walk the session history.
func (s *session) handleInput(prompt string) (string, error) {
	var input strings.Builder
	historyIndex := s.hist.len() // one past the latest entry

	oldState, err := term.MakeRaw(s.fd)
	if err != nil {
		return "", fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(s.fd, oldState)

	fmt.Fprint(s.out, prompt)

	for {
		char, err := s.reader.ReadByte()
		if err != nil {
			return "", err
		}

		switch char {
		case '\n', '\r': // Enter
			fmt.Fprint(s.out, "\r\n")
			return input.String(), nil

		case 127, 8: // Backspace
			if input.Len() > 0 {
				curr := input.String()
				input.Reset()
				input.WriteString(curr[:len(curr)-1])
				fmt.Fprint(s.out, "\b \b")
			}

		case 3: // Ctrl+C
			fmt.Fprint(s.out, "\r\n")
			return "", errInterrupted

		case 4: // Ctrl+D
			if input.Len() == 0 {
				fmt.Fprint(s.out, "\r\n")
				return "", io.EOF
			}

		case 27: // Escape sequence
			var seq [2]byte
			if _, err := io.ReadFull(s.reader, seq[:]); err != nil {
				continue
			}
			if seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A': // Up
				if historyIndex > 0 {
					historyIndex--
					if cmd, ok := s.hist.at(historyIndex); ok {
						input.Reset()
						input.WriteString(cmd)
						s.redrawInput(prompt, cmd)
					}
				}
			case 'B': // Down
				if historyIndex < s.hist.len()-1 {
					historyIndex++
					if cmd, ok := s.hist.at(historyIndex); ok {
						input.Reset()
						input.WriteString(cmd)
						s.redrawInput(prompt, cmd)
					}
				} else {
					historyIndex = s.hist.len()
					input.Reset()
					s.redrawInput(prompt, "")
				}
			}

		default:
			// Printable ASCII characters
			if char >= 32 && char < 127 {
				input.WriteByte(char)
				fmt.Fprintf(s.out, "%c", char)
			}
		}
	}
}

func (s *session) redrawInput(prompt, content string) {
	fmt.Fprint(s.out, "\r\033[K")
	fmt.Fprintf(s.out, "%s%s", prompt, content)
}
