// Package library maintains a catalog of FCMat material cards loaded
// from one or more directories. It indexes cards by UUID and by name,
// resolves inheritance chains between cards, and can watch the card
// directories for changes.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cadforge/go-fcmat"
)

// Ext is the file extension of material cards, compared
// case-insensitively.
const Ext = ".FCMat"

// A Card is a single material file inside the catalog.
type Card struct {
	// Path is where the card was loaded from.
	Path string

	// UUID is the card's General/UUID entry, empty when the card has
	// none.
	UUID string

	// Name is the card's General/Name entry, falling back to the file
	// name without extension.
	Name string

	// Mat is the parsed document.
	Mat *fcmat.Material

	// ModTime is the file's modification time at scan.
	ModTime time.Time
}

// A Library is a scanned catalog of material cards.
//
// All methods are safe for concurrent use. Scan replaces the whole
// catalog atomically, so readers never observe a half-built index.
type Library struct {
	logger *slog.Logger

	mu     sync.RWMutex
	dirs   []string
	cards  []*Card
	byUUID map[string]*Card
	byName map[string]*Card
}

// New returns an empty library. A nil logger falls back to
// slog.Default.
func New(logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{
		logger: logger.With("component", "fcmat.library"),
		byUUID: make(map[string]*Card),
		byName: make(map[string]*Card),
	}
}

// Scan walks the given directories for material cards, parses them,
// and replaces the catalog contents. Called with no arguments it
// rescans the directories of the previous call, which is how the
// watcher refreshes the catalog.
//
// A card that cannot be read or parsed is logged and skipped; it never
// fails the scan. Duplicate UUIDs and names are logged and the first
// card wins. Walk errors fail the scan and leave the previous catalog
// in place.
func (l *Library) Scan(dirs ...string) error {
	if len(dirs) == 0 {
		l.mu.RLock()
		dirs = append([]string(nil), l.dirs...)
		l.mu.RUnlock()
	}
	if len(dirs) == 0 {
		return errors.New("library: no directories to scan")
	}

	var (
		cards  []*Card
		byUUID = make(map[string]*Card)
		byName = make(map[string]*Card)
	)
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), Ext) {
				return nil
			}

			card, err := loadCard(path, d)
			if err != nil {
				l.logger.Warn("skipping material card", "path", path, "error", err)
				return nil
			}

			if card.UUID != "" {
				if prev, ok := byUUID[card.UUID]; ok {
					l.logger.Warn("duplicate material UUID",
						"uuid", card.UUID, "path", path, "kept", prev.Path)
					return nil
				}
				byUUID[card.UUID] = card
			}
			if prev, ok := byName[card.Name]; ok {
				l.logger.Warn("duplicate material name",
					"name", card.Name, "path", path, "kept", prev.Path)
			} else {
				byName[card.Name] = card
			}
			cards = append(cards, card)
			return nil
		})
		if err != nil {
			return fmt.Errorf("library: scanning %s: %w", dir, err)
		}
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })

	l.mu.Lock()
	l.dirs = dirs
	l.cards = cards
	l.byUUID = byUUID
	l.byName = byName
	l.mu.Unlock()

	l.logger.Info("material library scanned", "dirs", len(dirs), "cards", len(cards))
	return nil
}

func loadCard(path string, d fs.DirEntry) (*Card, error) {
	info, err := d.Info()
	if err != nil {
		return nil, err
	}
	mat, err := fcmat.Load(path)
	if err != nil {
		return nil, err
	}

	card := &Card{
		Path:    path,
		UUID:    mat.Value("General", "UUID", ""),
		Name:    mat.Value("General", "Name", ""),
		Mat:     mat,
		ModTime: info.ModTime(),
	}
	if card.Name == "" {
		base := filepath.Base(path)
		card.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return card, nil
}

// Dirs returns the directories of the last Scan.
func (l *Library) Dirs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.dirs...)
}

// Len returns the number of cards in the catalog.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cards)
}

// Cards returns the catalog sorted by name.
func (l *Library) Cards() []*Card {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]*Card(nil), l.cards...)
}

// ByUUID returns the card with the given identifier.
func (l *Library) ByUUID(id string) (*Card, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.byUUID[id]
	return c, ok
}

// ByName returns the card with the given display name. The lookup is
// exact first, then case-insensitive.
func (l *Library) ByName(name string) (*Card, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if c, ok := l.byName[name]; ok {
		return c, true
	}
	for n, c := range l.byName {
		if strings.EqualFold(n, name) {
			return c, true
		}
	}
	return nil, false
}
