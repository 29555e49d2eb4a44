// Package scanner splits raw FCMat input into significant lines.
//
// The scanner owns everything that happens below the line level:
// stripping an optional UTF-8 byte order mark, checking the document
// start marker, dropping blank and comment lines, tolerating CRLF line
// endings, and measuring indentation. It does not interpret line
// content; that is the tree builder's job.
package scanner

import (
	"bytes"
	"fmt"
	"strings"
)

// Marker is the literal required on the first significant line of
// every document.
const Marker = "---"

var bom = []byte{0xEF, 0xBB, 0xBF}

// Line is one significant input line.
type Line struct {
	// Num is the 1-based line number in the original input, counting
	// blank and comment lines, so diagnostics point at real positions.
	Num int

	// Indent is the number of leading spaces.
	Indent int

	// Text is the line content with indentation removed.
	Text string
}

// Error reports a line-level violation with its source position.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func errorf(line int, format string, args ...any) *Error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Scan splits data into significant lines. Blank lines and whole-line
// comments are dropped. The first significant line must be the
// document start marker, which is consumed and not returned. Scan
// fails on the first violation it finds.
func Scan(data []byte) ([]Line, error) {
	data = bytes.TrimPrefix(data, bom)

	var lines []Line
	sawMarker := false
	for i, raw := range strings.Split(string(data), "\n") {
		num := i + 1
		raw = strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		if !sawMarker {
			if raw != Marker {
				return nil, errorf(1, "missing document start marker %q", Marker)
			}
			sawMarker = true
			continue
		}
		indent, err := measureIndent(raw, num)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Num: num, Indent: indent, Text: raw[indent:]})
	}
	if !sawMarker {
		return nil, errorf(1, "missing document start marker %q", Marker)
	}
	return lines, nil
}

// measureIndent counts leading spaces. Tabs anywhere in the leading
// whitespace and odd space counts are structural errors; indentation
// is spaces only, two per nesting level.
func measureIndent(raw string, num int) (int, error) {
	n := 0
	for n < len(raw) && raw[n] == ' ' {
		n++
	}
	if n < len(raw) && raw[n] == '\t' {
		return 0, errorf(num, "tab character in indentation")
	}
	if n%2 != 0 {
		return 0, errorf(num, "indentation of %d spaces is not a multiple of 2", n)
	}
	return n, nil
}
