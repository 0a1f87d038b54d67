package mock

import (
	"context"

	"github.com/uedocset/uedocset"
)

// Ensure ArchiveExtractor implements uedocset.ArchiveExtractor.
var _ uedocset.ArchiveExtractor = (*ArchiveExtractor)(nil)

// ArchiveExtractor is a mock implementation of uedocset.ArchiveExtractor.
type ArchiveExtractor struct {
	ExtractFn func(ctx context.Context, archivePath, destDir string) error
}

// Extract calls the mocked function.
func (m *ArchiveExtractor) Extract(ctx context.Context, archivePath, destDir string) error {
	return m.ExtractFn(ctx, archivePath, destDir)
}
