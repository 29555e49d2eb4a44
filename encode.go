package fcmat

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cadforge/go-fcmat/internal/quote"
	"github.com/cadforge/go-fcmat/internal/scanner"
)

// Encoder writes FCMat documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []EncodeOption
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the FCMat encoding of m to the stream: the document
// start marker, then every entry in insertion order, nested sections
// indented two spaces per level and every leaf double-quoted.
//
// The output is canonical. Encoding a freshly parsed comment-free
// document reproduces its input byte for byte.
func (e *Encoder) Encode(m *Material) error {
	o := encodeOptions{}
	for _, opt := range e.opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	f := &formatter{w: e.w}
	return f.formatDocument(m, &o)
}

// Marshal returns the FCMat encoding of m.
func Marshal(m *Material, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatter writes a Material tree to an output stream.
type formatter struct {
	w io.Writer
}

func (f *formatter) write(s string) error {
	_, err := f.w.Write([]byte(s))
	return err
}

func (f *formatter) formatDocument(m *Material, o *encodeOptions) error {
	if err := f.write(scanner.Marker + "\n"); err != nil {
		return err
	}
	if o.headerComment != "" {
		if err := f.write(o.headerComment + "\n"); err != nil {
			return err
		}
	}
	return f.writeEntries(m, 0)
}

func (f *formatter) writeEntries(m *Material, depth int) error {
	prefix := strings.Repeat("  ", depth)
	for key, n := range m.All() {
		switch n := n.(type) {
		case Value:
			if err := f.write(prefix + key + ": " + quote.Quote(string(n)) + "\n"); err != nil {
				return err
			}
		case *Material:
			// An empty section still gets its header line, so the
			// entry survives a round trip.
			if err := f.write(prefix + key + ":\n"); err != nil {
				return err
			}
			if err := f.writeEntries(n, depth+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("fcmat: unsupported node type %T for key %q", n, key)
		}
	}
	return nil
}
