package shopsight_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/shopsight"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := shopsight.Errorf(shopsight.EINVALID, "URL %q is not a Shopify store", "https://example.com")

	assert.Equal(t, shopsight.EINVALID, shopsight.ErrorCode(err))
	assert.Equal(t, "URL \"https://example.com\" is not a Shopify store", shopsight.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shopsight.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, shopsight.EINTERNAL, shopsight.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shopsight.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", shopsight.ErrorMessage(errors.New("boom")))
}

func TestErrorDetails(t *testing.T) {
	t.Parallel()

	err := &shopsight.Error{
		Code:    shopsight.EUNAVAILABLE,
		Message: "failed to access website",
		Details: map[string]any{"status": 502},
	}

	assert.Equal(t, map[string]any{"status": 502}, shopsight.ErrorDetails(err))
	assert.Nil(t, shopsight.ErrorDetails(errors.New("boom")))
	assert.Nil(t, shopsight.ErrorDetails(nil))
}
