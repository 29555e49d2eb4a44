package fcmat

import (
	"fmt"
	"iter"
)

// A Node is a value stored under a key in a Material: either a nested
// *Material (a section) or a Value (a leaf string). No other
// implementations exist.
type Node interface {
	node()
}

// A Value is a leaf string. The format carries no other scalar kind;
// numbers, booleans and units all travel as strings and their
// interpretation is left to the caller.
type Value string

func (Value) node() {}

func (v Value) String() string { return string(v) }

// A Material is an ordered collection of key/node pairs. A parsed
// document is itself a Material, and every section inside it is one
// too, so the type describes the whole tree at every level.
//
// Insertion order is preserved: serializing a Material writes its
// entries in the order they were added, and parsing never reorders.
// Keys are unique and compared case-sensitively.
//
// The zero value is an empty Material ready for use, though most
// callers obtain one from New, Parse, or NewMaterial.
//
// A Material is not safe for concurrent mutation. Concurrent readers
// are fine as long as no goroutine writes.
type Material struct {
	entries []entry
	index   map[string]int
}

type entry struct {
	key  string
	node Node
}

func (*Material) node() {}

// New returns an empty Material.
func New() *Material {
	return &Material{index: make(map[string]int)}
}

// Len returns the number of entries.
func (m *Material) Len() int { return len(m.entries) }

// Keys returns the keys in insertion order.
func (m *Material) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// All returns an iterator over the entries in insertion order.
func (m *Material) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.node) {
				return
			}
		}
	}
}

// Get returns the node stored under key.
func (m *Material) Get(key string) (Node, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].node, true
}

// Set stores n under key. A new key is appended at the end; an
// existing key keeps its position and only the node is replaced.
func (m *Material) Set(key string, n Node) {
	if i, ok := m.index[key]; ok {
		m.entries[i].node = n
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry{key: key, node: n})
}

// Delete removes the entry stored under key and reports whether it
// existed. Later entries keep their relative order.
func (m *Material) Delete(key string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].key] = j
	}
	return true
}

// Section returns the nested Material stored under name. The two
// failure modes carry distinct sentinels: ErrNotFound when the key is
// absent and ErrNotSection when it holds a leaf value, so callers can
// tell a missing entry from a mistyped one with errors.Is.
func (m *Material) Section(name string) (*Material, error) {
	n, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("fcmat: section %q: %w", name, ErrNotFound)
	}
	sec, ok := n.(*Material)
	if !ok {
		return nil, fmt.Errorf("fcmat: key %q holds a value: %w", name, ErrNotSection)
	}
	return sec, nil
}

// Value returns the leaf stored under key inside the named top-level
// section. It returns fallback when the section or key is absent, or
// when either name resolves to the wrong kind of node. It never fails;
// use Section and Get when the miss matters.
func (m *Material) Value(section, key, fallback string) string {
	sec, err := m.Section(section)
	if err != nil {
		return fallback
	}
	n, ok := sec.Get(key)
	if !ok {
		return fallback
	}
	v, ok := n.(Value)
	if !ok {
		return fallback
	}
	return string(v)
}

// SetValue stores value under key inside the named top-level section,
// creating the section if it does not exist. A name already bound to a
// leaf is replaced by a fresh section in the same position.
func (m *Material) SetValue(section, key, value string) {
	sec, err := m.Section(section)
	if err != nil {
		sec = New()
		m.Set(section, sec)
	}
	sec.Set(key, Value(value))
}

// Equal reports whether m and o hold the same keys, the same values,
// and the same nesting, in the same order. Two documents that differ
// only in comments, blank lines, or value quoting style parse to equal
// Materials.
func (m *Material) Equal(o *Material) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.entries) != len(o.entries) {
		return false
	}
	for i, e := range m.entries {
		oe := o.entries[i]
		if e.key != oe.key {
			return false
		}
		switch n := e.node.(type) {
		case Value:
			ov, ok := oe.node.(Value)
			if !ok || n != ov {
				return false
			}
		case *Material:
			osec, ok := oe.node.(*Material)
			if !ok || !n.Equal(osec) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// String returns the serialized document text of m.
func (m *Material) String() string {
	b, err := Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
