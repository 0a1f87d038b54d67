package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/uedocset/uedocset"
)

// Compile-time interface verification.
var _ uedocset.EntryIndexer = (*EntryService)(nil)

// EntryService implements uedocset.EntryIndexer using SQLite. The index is
// written by a single writer after all page workers have completed.
type EntryService struct{}

// NewEntryService creates a new EntryService.
func NewEntryService() *EntryService {
	return &EntryService{}
}

// IndexEntries writes entries into the search index database at indexPath.
// Paths are stored relative to documentsDir with forward slashes. Duplicate
// (name, type, path) triples are absorbed by the unique index.
func (s *EntryService) IndexEntries(ctx context.Context, indexPath, documentsDir string, entries []uedocset.Entry) error {
	db := NewDB(indexPath)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	prefix := normalizePath(documentsDir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}

		path := strings.TrimPrefix(normalizePath(entry.Path), prefix)

		if _, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO searchIndex (name, type, path) VALUES (?, ?, ?)
		`, entry.Name, entry.Kind, path); err != nil {
			return fmt.Errorf("failed to index %q: %w", entry.Name, err)
		}
	}

	return nil
}

// normalizePath converts platform path separators to forward slashes.
func normalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
