// Package quote implements the double-quoted value codec used for
// FCMat leaf values.
//
// The textual form of a leaf value is always wrapped in double quotes.
// Inside the quotes only two escape sequences are defined: \" for an
// embedded double quote and \\ for a backslash. Any other backslash
// sequence has no special meaning and is preserved verbatim, so a
// value such as "C:\new" survives a decode/encode cycle unchanged.
package quote

import (
	"errors"
	"strings"
)

var (
	// ErrUnquoted reports a value that does not start with a double quote.
	ErrUnquoted = errors.New("value must be double-quoted")

	// ErrUnterminated reports a quoted value with no closing quote.
	ErrUnterminated = errors.New("unterminated quoted value")

	// ErrTrailing reports content after the closing quote.
	ErrTrailing = errors.New("unexpected content after closing quote")
)

// Quote returns the quoted textual form of s. Embedded double quotes
// and backslashes are escaped so that Unquote(Quote(s)) == s for every
// string.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote decodes the quoted textual form of a leaf value. The input
// must begin with a double quote, end with an unescaped double quote,
// and contain nothing after the terminator.
func Unquote(s string) (string, error) {
	if len(s) == 0 || s[0] != '"' {
		return "", ErrUnquoted
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 1
	for i < len(s) {
		switch c := s[i]; c {
		case '\\':
			if i+1 == len(s) {
				// A lone trailing backslash cannot escape anything,
				// and the closing quote is missing.
				return "", ErrUnterminated
			}
			if next := s[i+1]; next == '"' || next == '\\' {
				b.WriteByte(next)
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			i += 2
		case '"':
			if i != len(s)-1 {
				return "", ErrTrailing
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", ErrUnterminated
}
