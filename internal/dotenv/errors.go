package dotenv

import (
	"errors"
	"fmt"
)

var (
	// ErrFileUnavailable is returned when the env file cannot be opened or read.
	ErrFileUnavailable = errors.New("env file unavailable")
	// ErrMissingDelimiter is returned for a line that contains no '='.
	ErrMissingDelimiter = errors.New("malformed line: expecting '='")
	// ErrEmptyName is returned for a line that starts with '='.
	ErrEmptyName = errors.New("malformed line: empty variable name")
)

// LineError reports a malformed line in an env file.
type LineError struct {
	Path string // file name, or the name given to LoadReader
	Line int    // 1-based line number
	Text string // the offending line
	Err  error  // ErrMissingDelimiter or ErrEmptyName
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
