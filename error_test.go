package uedocset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uedocset/uedocset"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := uedocset.Errorf(uedocset.ENOTFOUND, "page %q not found", "test")

	assert.Equal(t, uedocset.ENOTFOUND, uedocset.ErrorCode(err))
	assert.Equal(t, "page \"test\" not found", uedocset.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, uedocset.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uedocset.EINTERNAL, uedocset.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, uedocset.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", uedocset.ErrorMessage(errors.New("boom")))
}
