package library

import (
	"errors"
	"fmt"

	"github.com/cadforge/go-fcmat"
)

var (
	// ErrUnknownUUID reports an inheritance reference to a UUID that
	// is not in the catalog.
	ErrUnknownUUID = errors.New("library: unknown material UUID")

	// ErrInheritCycle reports a cyclic inheritance chain.
	ErrInheritCycle = errors.New("library: inheritance cycle")
)

// Resolve returns a new Material combining the identified card with
// everything it inherits. Parents are merged first, in the order they
// are listed in the card's Inherits section and each resolved
// recursively, then the card's own entries are merged on top, so a
// child always overrides its parents. The Inherits bookkeeping section
// itself is omitted from the result.
//
// A reference to a UUID outside the catalog fails with ErrUnknownUUID;
// a cyclic chain fails with ErrInheritCycle. Cards reachable through
// several paths are allowed, only true cycles are rejected.
func (l *Library) Resolve(id string) (*fcmat.Material, error) {
	return l.resolve(id, make(map[string]bool))
}

func (l *Library) resolve(id string, path map[string]bool) (*fcmat.Material, error) {
	if path[id] {
		return nil, fmt.Errorf("%w: %s", ErrInheritCycle, id)
	}
	path[id] = true
	defer delete(path, id)

	card, ok := l.ByUUID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUUID, id)
	}

	resolved := fcmat.New()
	if inherits, err := card.Mat.Section("Inherits"); err == nil {
		for name, n := range inherits.All() {
			ref, ok := n.(*fcmat.Material)
			if !ok {
				l.logger.Warn("malformed inheritance entry",
					"card", card.Path, "entry", name)
				continue
			}
			parentID := ""
			if v, ok := ref.Get("UUID"); ok {
				if s, ok := v.(fcmat.Value); ok {
					parentID = string(s)
				}
			}
			if parentID == "" {
				l.logger.Warn("inheritance entry without UUID",
					"card", card.Path, "entry", name)
				continue
			}
			parent, err := l.resolve(parentID, path)
			if err != nil {
				return nil, fmt.Errorf("card %s inherits %q: %w", id, name, err)
			}
			merge(resolved, parent)
		}
	}
	merge(resolved, card.Mat)
	resolved.Delete("Inherits")
	return resolved, nil
}

// merge copies every entry of src into dst. Sections merge
// recursively; leaves overwrite. Overridden entries keep the position
// they first appeared at.
func merge(dst, src *fcmat.Material) {
	for key, n := range src.All() {
		switch n := n.(type) {
		case fcmat.Value:
			dst.Set(key, n)
		case *fcmat.Material:
			child, err := dst.Section(key)
			if err != nil {
				child = fcmat.New()
				dst.Set(key, child)
			}
			merge(child, n)
		}
	}
}
