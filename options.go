package fcmat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type encodeOptions struct {
	headerComment string
}

// An EncodeOption configures an Encoder.
type EncodeOption func(*encodeOptions) error

// WithHeaderComment returns an EncodeOption that writes a single
// comment line directly after the document start marker. A leading
// "# " is added if the comment does not already start with "#".
// Passing an empty string writes no comment, which is also the
// default.
//
// Comments are not part of the document model, so the header is
// dropped again by the next parse and never affects round-trip
// equality.
func WithHeaderComment(comment string) EncodeOption {
	return func(o *encodeOptions) error {
		if comment == "" {
			o.headerComment = ""
			return nil
		}
		if strings.ContainsAny(comment, "\r\n") {
			return fmt.Errorf("fcmat: header comment must be a single line")
		}
		if !strings.HasPrefix(comment, "#") {
			comment = "# " + comment
		}
		o.headerComment = comment
		return nil
	}
}

type materialOptions struct {
	author  string
	license string
	uuid    string
}

// A MaterialOption configures NewMaterial.
type MaterialOption func(*materialOptions)

// WithAuthor sets the Author entry of the new card's General section.
// An empty author leaves the entry out entirely.
func WithAuthor(author string) MaterialOption {
	return func(o *materialOptions) { o.author = author }
}

// WithLicense sets the License entry of the new card's General
// section, overriding DefaultLicense.
func WithLicense(license string) MaterialOption {
	return func(o *materialOptions) { o.license = license }
}

// WithUUID pins the new card's identifier instead of generating a
// random one. Useful for reproducible output.
func WithUUID(id uuid.UUID) MaterialOption {
	return func(o *materialOptions) { o.uuid = id.String() }
}
