package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedocset/uedocset"
	"github.com/uedocset/uedocset/sqlite"
)

func TestEntryService_IndexEntries(t *testing.T) {
	t.Parallel()

	t.Run("writes paths relative to documents dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		indexPath := filepath.Join(dir, "docSet.dsidx")
		docs := filepath.Join(dir, "Documents")

		s := sqlite.NewEntryService()
		err := s.IndexEntries(context.Background(), indexPath, docs, []uedocset.Entry{
			{Name: "AActor", Path: filepath.Join(docs, "en-US", "API", "AActor", "index.html"), Kind: "Class"},
			{Name: "FVector", Path: docs + `\en-US\API\FVector\index.html`, Kind: "Struct"},
		})
		require.NoError(t, err)

		rows := queryIndex(t, indexPath)
		assert.Equal(t, map[string]string{
			"AActor":  "en-US/API/AActor/index.html",
			"FVector": "en-US/API/FVector/index.html",
		}, rows)
	})

	t.Run("collapses duplicate entries", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		indexPath := filepath.Join(dir, "docSet.dsidx")
		docs := filepath.Join(dir, "Documents")
		entry := uedocset.Entry{Name: "Tick", Path: filepath.Join(docs, "Tick.html"), Kind: "Function"}

		s := sqlite.NewEntryService()
		require.NoError(t, s.IndexEntries(context.Background(), indexPath, docs, []uedocset.Entry{entry, entry}))
		// A rerun against the same database is also a no-op.
		require.NoError(t, s.IndexEntries(context.Background(), indexPath, docs, []uedocset.Entry{entry}))

		rows := queryIndex(t, indexPath)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Tick.html", rows["Tick"])
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := sqlite.NewEntryService()
		err := s.IndexEntries(context.Background(), filepath.Join(dir, "docSet.dsidx"), dir, []uedocset.Entry{
			{Name: "", Path: "a.html", Kind: "Class"},
		})
		require.Error(t, err)
		assert.Equal(t, uedocset.EINVALID, uedocset.ErrorCode(err))
	})
}

// queryIndex reads the searchIndex table back as a name to path map.
func queryIndex(t *testing.T, indexPath string) map[string]string {
	t.Helper()

	db := sqlite.NewDB(indexPath)
	require.NoError(t, db.Open())
	defer db.Close()

	rows, err := db.QueryContext(context.Background(), `SELECT name, path FROM searchIndex`)
	require.NoError(t, err)
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var name, path string
		require.NoError(t, rows.Scan(&name, &path))
		result[name] = path
	}
	require.NoError(t, rows.Err())
	return result
}
