package uedocset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uedocset/uedocset"
)

func TestEntryKindForSourceKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uedocset.EntryKindClass, uedocset.EntryKindForSourceKind(uedocset.SourceKindClass))
	assert.Equal(t, uedocset.EntryKindClass, uedocset.EntryKindForSourceKind(uedocset.SourceKindUClass))
	assert.Equal(t, uedocset.EntryKindStruct, uedocset.EntryKindForSourceKind(uedocset.SourceKindStruct))
	assert.Equal(t, uedocset.EntryKindStruct, uedocset.EntryKindForSourceKind(uedocset.SourceKindUStruct))
	assert.Equal(t, uedocset.EntryKindUnion, uedocset.EntryKindForSourceKind(uedocset.SourceKindUnion))
	assert.Equal(t, uedocset.EntryKindObject, uedocset.EntryKindForSourceKind("enum"))
}

func TestAPIInfo_Typed(t *testing.T) {
	t.Parallel()

	typed := uedocset.APIInfo{Name: "AActor", SourceKind: uedocset.SourceKindClass, EntryKind: uedocset.EntryKindClass}
	assert.True(t, typed.Typed())

	object := uedocset.APIInfo{Name: "Landscape", SourceKind: uedocset.SourceKindObject, EntryKind: uedocset.EntryKindObject}
	assert.False(t, object.Typed())

	assert.False(t, uedocset.APIInfo{}.Typed())
}
