package fcmat

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the base error for structural parse failures. Every
	// *ParseError unwraps to it, so errors.Is(err, ErrParse) matches
	// any malformed document.
	ErrParse = errors.New("fcmat: parse error")

	// ErrNotFound reports a section or key lookup that found nothing.
	ErrNotFound = errors.New("not found")

	// ErrNotSection reports a key bound to a leaf value where a
	// section was required.
	ErrNotSection = errors.New("not a section")
)

// A ParseError describes the first structural violation found in a
// document. Parsing is fail-fast: one error, then no partial result.
type ParseError struct {
	// Line is the 1-based line number in the original input, counting
	// blank and comment lines. Zero means no line is known.
	Line int

	// Msg describes the violation.
	Msg string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "fcmat: " + e.Msg
	}
	return fmt.Sprintf("fcmat: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrParse }

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
