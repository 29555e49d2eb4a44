package fcmat

import "github.com/google/uuid"

// DefaultLicense is recorded on cards created by NewMaterial when no
// WithLicense option is given.
const DefaultLicense = "MIT OR Apache-2.0"

// NewMaterial returns a minimal material card: a General section
// holding a freshly generated random UUID, the given display name, an
// optional author, and a license.
func NewMaterial(name string, opts ...MaterialOption) *Material {
	o := materialOptions{license: DefaultLicense}
	for _, opt := range opts {
		opt(&o)
	}
	if o.uuid == "" {
		o.uuid = uuid.NewString()
	}

	general := New()
	general.Set("UUID", Value(o.uuid))
	general.Set("Name", Value(name))
	if o.author != "" {
		general.Set("Author", Value(o.author))
	}
	general.Set("License", Value(o.license))

	m := New()
	m.Set("General", general)
	return m
}
