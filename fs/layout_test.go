package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedocset/uedocset/fs"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	layout := fs.NewLayout(dir, "UnrealEngineCpp.docset")

	assert.Equal(t, filepath.Join(dir, "UnrealEngineCpp.docset"), layout.Root)
	assert.Equal(t, filepath.Join(layout.Root, "Contents"), layout.Contents)
	assert.Equal(t, filepath.Join(layout.Contents, "Resources"), layout.Resources)
	assert.Equal(t, filepath.Join(layout.Resources, "Documents"), layout.Documents)
	assert.Equal(t, filepath.Join(layout.Contents, "Info.plist"), layout.ManifestPath())
	assert.Equal(t, filepath.Join(layout.Resources, "docSet.dsidx"), layout.IndexPath())

	require.NoError(t, layout.Create())
	assert.DirExists(t, layout.Documents)

	// Create is idempotent.
	require.NoError(t, layout.Create())
}
