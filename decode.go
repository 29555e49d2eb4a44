package fcmat

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cadforge/go-fcmat/internal/quote"
	"github.com/cadforge/go-fcmat/internal/scanner"
)

// Decoder reads FCMat documents from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads one FCMat document from its input and returns the
// Material tree it describes. A malformed document yields a
// *ParseError and no partial tree.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (*Material, error) {
	if d.r == nil {
		return nil, fmt.Errorf("fcmat: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// parse runs the line scanner and folds the result into a tree.
func parse(data []byte) (*Material, error) {
	lines, err := scanner.Scan(data)
	if err != nil {
		var se *scanner.Error
		if errors.As(err, &se) {
			return nil, &ParseError{Line: se.Line, Msg: se.Msg}
		}
		return nil, &ParseError{Msg: err.Error()}
	}
	return build(lines)
}

// A frame is one open section on the builder stack, together with the
// indentation at which its header appeared.
type frame struct {
	indent int
	node   *Material
}

// build folds scanned lines into a Material tree. The stack starts
// with a synthetic root frame at indent -2, which makes the root
// behave like any other section: children of a section at indent n
// live at exactly n+2, so document-level entries live at 0 and the
// first content line of a valid document is never indented.
func build(lines []scanner.Line) (*Material, error) {
	root := New()
	stack := []frame{{indent: -2, node: root}}

	for _, ln := range lines {
		// A line deeper than one level below the innermost open
		// section has no parent to attach to. This also rejects
		// nesting under a leaf, since leaves never open a frame.
		if top := stack[len(stack)-1]; ln.Indent > top.indent+2 {
			return nil, parseErrorf(ln.Num, "unexpected indent of %d spaces (expected at most %d)", ln.Indent, top.indent+2)
		}

		// Dedenting closes every section at or beyond this depth.
		for ln.Indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node

		key, rest, err := splitEntry(ln)
		if err != nil {
			return nil, err
		}
		if _, exists := parent.Get(key); exists {
			return nil, parseErrorf(ln.Num, "duplicate key %q", key)
		}

		if rest == "" {
			child := New()
			parent.Set(key, child)
			stack = append(stack, frame{indent: ln.Indent, node: child})
			continue
		}

		val, err := quote.Unquote(rest)
		if err != nil {
			return nil, parseErrorf(ln.Num, "value for key %q: %v", key, err)
		}
		parent.Set(key, Value(val))
	}
	return root, nil
}

// splitEntry splits a content line at its first colon into a key and
// the raw value text. An empty rest means the line is a section
// header.
func splitEntry(ln scanner.Line) (key, rest string, err error) {
	i := strings.IndexByte(ln.Text, ':')
	if i < 0 {
		return "", "", parseErrorf(ln.Num, "missing %q separator in %q", ":", ln.Text)
	}
	key = strings.TrimSpace(ln.Text[:i])
	rest = strings.TrimSpace(ln.Text[i+1:])
	if key == "" {
		return "", "", parseErrorf(ln.Num, "empty key in %q", ln.Text)
	}
	return key, rest, nil
}
