package envutil

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Scanner reads lines from an env file one at a time.
// Unlike bufio.Scanner it has no maximum line length.
type Scanner struct {
	r    *bufio.Reader
	line string
	num  int
	err  error
	done bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at end of input or on
// a read error; check Err afterwards.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
			return false
		}
		// Last line without a terminator
		if line == "" {
			return false
		}
	}
	s.num++
	s.line = trimTerminator(line)
	return true
}

// Line returns the current line without its terminator.
func (s *Scanner) Line() string { return s.line }

// Number returns the 1-based number of the current line.
func (s *Scanner) Number() int { return s.num }

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error { return s.err }

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// IsSkippable reports whether line carries no assignment: it is empty, a
// comment, or starts with a newline marker.
func IsSkippable(line string) bool {
	return line == "" || line[0] == '#' || line[0] == '\n'
}
