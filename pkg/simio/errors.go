package simio

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrMalformedLine    = errors.New("malformed line")
	ErrBadCoordinate    = errors.New("bad coordinate")
	ErrBadAreaLabel     = errors.New("bad area label")
	ErrBadNodeID        = errors.New("bad node id")
	ErrUnknownVariant   = errors.New("unknown simulation variant")
	ErrUnknownDirection = errors.New("unknown network direction")
)

// ParseError provides structured error information for a failed parse.
// The whole parse aborts on the first malformed line; partial results are
// never returned.
type ParseError struct {
	File  string // File being parsed
	Line  int    // 1-based line number
	Token string // Offending token (if applicable)
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s:%d: %q: %v", e.File, e.Line, e.Token, e.Cause)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *ParseError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func parseError(file string, line int, token string, cause error) error {
	return &ParseError{File: file, Line: line, Token: token, Cause: cause}
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
