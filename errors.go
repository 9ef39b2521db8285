package aoc

import (
	"errors"
	"fmt"
)

// ParseError reports a malformed input line.
type ParseError struct {
	Line  int    // 1-based; 0 if unknown
	Input string // offending text
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: parsing %q: %v", e.Line, e.Input, e.Err)
	}
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseErrorf returns a *ParseError for input with a formatted cause.
func ParseErrorf(line int, input, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Input: input, Err: fmt.Errorf(format, args...)}
}

// DomainError reports well-formed input that an operation cannot accept.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return e.Op + ": " + e.Msg
}

// DomainErrorf returns a *DomainError for op.
func DomainErrorf(op, format string, args ...any) *DomainError {
	return &DomainError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// IsParseError reports whether err or anything it wraps is a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsDomainError reports whether err or anything it wraps is a *DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
