package uedocset

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// Entry represents one indexed documentation symbol.
type Entry struct {
	// Name is the symbol name shown in the search index.
	Name string

	// Path locates the symbol's documentation, typically an HTML file path,
	// optionally with an in-page fragment.
	Path string

	// Kind is the Dash entry kind, e.g. "Class".
	Kind string
}

// Validate returns an error if the entry contains invalid fields.
func (e Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry path required")
	}
	if e.Kind == "" {
		return Errorf(EINVALID, "entry kind required")
	}
	return nil
}

// EntrySet is a set of entries keyed by the (name, kind, path) triple.
// Duplicate triples collapse on insertion, so aggregation is idempotent and
// independent of insertion order.
type EntrySet map[Entry]struct{}

// NewEntrySet returns a set containing the given entries.
func NewEntrySet(entries ...Entry) EntrySet {
	s := make(EntrySet, len(entries))
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// Add inserts an entry into the set.
func (s EntrySet) Add(e Entry) {
	s[e] = struct{}{}
}

// Merge inserts all entries from other into the set.
func (s EntrySet) Merge(other EntrySet) {
	for e := range other {
		s[e] = struct{}{}
	}
}

// Len returns the number of distinct entries.
func (s EntrySet) Len() int {
	return len(s)
}

// Sorted returns the entries ordered by name, then path, then kind.
func (s EntrySet) Sorted() []Entry {
	entries := make([]Entry, 0, len(s))
	for e := range s {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Kind < entries[j].Kind
	})
	return entries
}

// Flavor identifies the documentation variant being processed.
type Flavor string

// Supported documentation flavors.
const (
	FlavorCPP       Flavor = "cpp"
	FlavorBlueprint Flavor = "blueprint"
)

// AnchorScheme returns the scheme segment used in Dash anchor names, e.g.
// "//apple_ref/cpp/Class/FVector".
func (f Flavor) AnchorScheme() string {
	return string(f)
}

// FlavorFromArchive infers the documentation flavor from an archive file
// name. Returns EUNSUPPORTED if the name matches neither flavor.
func FlavorFromArchive(name string) (Flavor, error) {
	stem := strings.ToLower(filepath.Base(name))
	switch {
	case strings.Contains(stem, "blueprint"):
		return FlavorBlueprint, nil
	case strings.Contains(stem, "cpp"):
		return FlavorCPP, nil
	}
	return "", Errorf(EUNSUPPORTED, "unsupported docset flavor in archive name %q", name)
}

// PageProcessor extracts documentation entries from a single HTML page and
// rewrites the page in place with table of contents anchors.
type PageProcessor interface {
	ProcessPage(ctx context.Context, path string) ([]Entry, error)
}

// EntryIndexer persists entries into the docset search index at indexPath.
// Entry paths are stored relative to documentsDir.
type EntryIndexer interface {
	IndexEntries(ctx context.Context, indexPath, documentsDir string, entries []Entry) error
}

// ArchiveExtractor unpacks a documentation archive into a directory.
type ArchiveExtractor interface {
	Extract(ctx context.Context, archivePath, destDir string) error
}
