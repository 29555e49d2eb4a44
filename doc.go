/*
Package fcmat reads and writes FCMat material card files, the plain
text format FreeCAD uses to describe physical materials. The API is
designed to be familiar to Go developers, closely mirroring the
standard encoding packages.

An FCMat document is a tree of named sections whose leaves are always
strings. It looks like a small slice of YAML but is far stricter: the
first line is a literal "---" marker, indentation is exactly two
spaces per level with tabs forbidden, every value is double-quoted,
and comments are whole-line only.

	---
	# created by hand
	General:
	  Name: "Aluminum"
	  UUID: "abcdefab-1234-5678-9abc-def012345678"
	Mechanical:
	  Density: "2700 kg/m^3"

The package offers two primary workflows depending on the use case:

1. Document Manipulation

Parse, Load, and Decoder produce a *Material: an ordered tree that can
be inspected and edited, then written back out with Marshal, Save, or
Encoder. Insertion order is preserved end to end, so a parsed and
re-encoded document reproduces its input byte for byte (comments and
blank lines excepted, which the model deliberately does not carry).

	m, err := fcmat.Load("Aluminum.FCMat")
	if err != nil {
		// handle error
	}
	name := m.Value("General", "Name", "unnamed")
	m.SetValue("Mechanical", "PoissonRatio", "0.33")
	err = fcmat.Save("Aluminum.FCMat", m)

2. Section Binding

For pulling a known section into a Go struct, Bind matches section
keys against `fcmat` struct tags, then field names, then
case-insensitively. Since the format carries nothing but strings,
target fields must be strings or implement encoding.TextUnmarshaler.

	type General struct {
		Name   string    `fcmat:"Name"`
		UUID   uuid.UUID `fcmat:"UUID"`
		Author string
	}

	var g General
	if err := m.Bind("General", &g); err != nil {
		// handle error
	}

Malformed input never yields a partial tree: parsing stops at the
first violation and returns a *ParseError with the 1-based line
number. All parse failures also match the ErrParse sentinel via
errors.Is.
*/
package fcmat
