// Package mapper caches struct field metadata for binding material
// sections onto Go structs.
package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// A Field identifies a single bindable field in a struct, possibly
// inside an embedded struct.
type Field struct {
	Index []int
}

// fieldCache caches a map of field names to field properties per type.
var fieldCache sync.Map // map[reflect.Type]map[string]Field

// Fields returns the bindable fields of struct type t, keyed by tag
// name, field name, and their lower-cased forms. The result is cached
// to avoid repeated reflection work; callers must not mutate it.
//
// Fields tagged `fcmat:"-"` and unexported fields are excluded.
// Embedded structs are walked recursively. Lower-cased keys never
// overwrite a case-sensitive match, so exact names always win.
func Fields(t reflect.Type) map[string]Field {
	if f, ok := fieldCache.Load(t); ok {
		if fields, ok := f.(map[string]Field); ok {
			return fields
		}
	}

	fields := make(map[string]Field)
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			path := append(append([]int(nil), idx...), i)
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				walk(sf.Type, path)
				continue
			}
			if !sf.IsExported() {
				continue
			}

			tag := sf.Tag.Get("fcmat")
			if tag == "-" {
				continue
			}

			f := Field{Index: path}
			tagName := strings.Split(tag, ",")[0]

			if tagName != "" {
				fields[tagName] = f
			}
			fields[sf.Name] = f

			if tagName != "" {
				if lower := strings.ToLower(tagName); lower != tagName {
					if _, ok := fields[lower]; !ok {
						fields[lower] = f
					}
				}
			}
			if lower := strings.ToLower(sf.Name); lower != sf.Name {
				if _, ok := fields[lower]; !ok {
					fields[lower] = f
				}
			}
		}
	}
	walk(t, nil)

	fieldCache.Store(t, fields)
	return fields
}

// Lookup finds the field bound to key: first a case-sensitive match on
// tag or field name, then a case-insensitive fallback.
func Lookup(fields map[string]Field, key string) (Field, bool) {
	if f, ok := fields[key]; ok {
		return f, true
	}
	f, ok := fields[strings.ToLower(key)]
	return f, ok
}
