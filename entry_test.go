package uedocset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uedocset/uedocset"
)

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		e := uedocset.Entry{Name: "FVector", Path: "en-US/API/FVector/index.html", Kind: "Struct"}
		assert.NoError(t, e.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		e := uedocset.Entry{Path: "a.html", Kind: "Class"}
		assert.Equal(t, uedocset.EINVALID, uedocset.ErrorCode(e.Validate()))
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		e := uedocset.Entry{Name: "A", Kind: "Class"}
		assert.Equal(t, uedocset.EINVALID, uedocset.ErrorCode(e.Validate()))
	})

	t.Run("missing kind", func(t *testing.T) {
		t.Parallel()

		e := uedocset.Entry{Name: "A", Path: "a.html"}
		assert.Equal(t, uedocset.EINVALID, uedocset.ErrorCode(e.Validate()))
	})
}

func TestEntrySet_CollapsesDuplicates(t *testing.T) {
	t.Parallel()

	s := uedocset.NewEntrySet()
	e := uedocset.Entry{Name: "FVector", Path: "FVector/index.html", Kind: "Struct"}

	s.Add(e)
	s.Add(e)
	s.Add(uedocset.Entry{Name: "FVector", Path: "FVector/index.html", Kind: "Class"})

	assert.Equal(t, 2, s.Len())
}

func TestEntrySet_MergeIsIdempotent(t *testing.T) {
	t.Parallel()

	a := uedocset.NewEntrySet(
		uedocset.Entry{Name: "A", Path: "a.html", Kind: "Class"},
		uedocset.Entry{Name: "B", Path: "b.html", Kind: "Struct"},
	)
	b := uedocset.NewEntrySet(
		uedocset.Entry{Name: "B", Path: "b.html", Kind: "Struct"},
	)

	a.Merge(b)
	a.Merge(b)

	assert.Equal(t, 2, a.Len())
}

func TestEntrySet_SortedIsDeterministic(t *testing.T) {
	t.Parallel()

	s := uedocset.NewEntrySet(
		uedocset.Entry{Name: "B", Path: "b.html", Kind: "Class"},
		uedocset.Entry{Name: "A", Path: "z.html", Kind: "Class"},
		uedocset.Entry{Name: "A", Path: "a.html", Kind: "Class"},
	)

	entries := s.Sorted()

	require.Len(t, entries, 3)
	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, "a.html", entries[0].Path)
	assert.Equal(t, "A", entries[1].Name)
	assert.Equal(t, "z.html", entries[1].Path)
	assert.Equal(t, "B", entries[2].Name)
}

func TestFlavorFromArchive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		archive string
		flavor  uedocset.Flavor
		code    string
	}{
		{"cpp archive", "/tmp/UnrealEngineCppDocumentation.tgz", uedocset.FlavorCPP, ""},
		{"blueprint archive", "UnrealEngineBlueprintDocumentation.tgz", uedocset.FlavorBlueprint, ""},
		{"case insensitive", "unreal-CPP-docs.tar.gz", uedocset.FlavorCPP, ""},
		{"unsupported", "docs.tgz", "", uedocset.EUNSUPPORTED},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flavor, err := uedocset.FlavorFromArchive(tt.archive)
			if tt.code != "" {
				assert.Equal(t, tt.code, uedocset.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.flavor, flavor)
		})
	}
}
