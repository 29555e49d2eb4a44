package fcmat

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/cadforge/go-fcmat/internal/mapper"
)

// Bind copies the leaf values of the named top-level section onto the
// fields of the struct pointed to by v. Keys are matched against the
// field's `fcmat` tag, then its name, then case-insensitively. Fields
// tagged `fcmat:"-"` are skipped.
//
// Every value in the format is a string, so target fields must be of
// type string or implement encoding.TextUnmarshaler; Bind attempts no
// numeric or boolean conversion. Nested sections inside the section
// are ignored, as are keys with no matching field.
func (m *Material) Bind(section string, v any) error {
	sec, err := m.Section(section)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("fcmat: Bind(non-pointer %T or nil)", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("fcmat: Bind target must be a struct, got %s", rv.Type())
	}

	fields := mapper.Fields(rv.Type())
	for key, n := range sec.All() {
		val, ok := n.(Value)
		if !ok {
			continue
		}
		f, ok := mapper.Lookup(fields, key)
		if !ok {
			continue
		}
		fv := rv.FieldByIndex(f.Index)
		if !fv.IsValid() || !fv.CanSet() {
			continue
		}
		if err := bindField(fv, key, string(val)); err != nil {
			return err
		}
	}
	return nil
}

func bindField(fv reflect.Value, key, val string) error {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}

	if fv.CanAddr() {
		if u, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(val)); err != nil {
				return fmt.Errorf("fcmat: binding key %q: %w", key, err)
			}
			return nil
		}
	}

	if fv.Kind() != reflect.String {
		return fmt.Errorf("fcmat: cannot bind key %q to field of type %s", key, fv.Type())
	}
	fv.SetString(val)
	return nil
}
