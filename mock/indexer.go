package mock

import (
	"context"

	"github.com/uedocset/uedocset"
)

// Ensure EntryIndexer implements uedocset.EntryIndexer.
var _ uedocset.EntryIndexer = (*EntryIndexer)(nil)

// EntryIndexer is a mock implementation of uedocset.EntryIndexer.
type EntryIndexer struct {
	IndexEntriesFn func(ctx context.Context, indexPath, documentsDir string, entries []uedocset.Entry) error
}

// IndexEntries calls the mocked function.
func (m *EntryIndexer) IndexEntries(ctx context.Context, indexPath, documentsDir string, entries []uedocset.Entry) error {
	return m.IndexEntriesFn(ctx, indexPath, documentsDir, entries)
}
