package nixdoc_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/nixdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := nixdoc.Errorf(nixdoc.EFETCH, "nix-build failed: %s", "boom")

	assert.Equal(t, nixdoc.EFETCH, nixdoc.ErrorCode(err))
	assert.Equal(t, "nix-build failed: boom", nixdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nixdoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nixdoc.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, nixdoc.EINTERNAL, nixdoc.ErrorCode(errors.New("boom")))
}
