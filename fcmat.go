package fcmat

import "os"

// Parse parses an FCMat document into its Material tree. A malformed
// document yields a *ParseError carrying the 1-based line number of
// the first violation, and no partial tree.
func Parse(data []byte) (*Material, error) {
	return parse(data)
}

// ParseString is Parse for in-memory text.
func ParseString(text string) (*Material, error) {
	return Parse([]byte(text))
}

// Load reads and parses the FCMat file at path.
func Load(path string) (*Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Save writes the FCMat encoding of m to the file at path, creating
// it if necessary and truncating it otherwise.
func Save(path string, m *Material, opts ...EncodeOption) error {
	data, err := Marshal(m, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
