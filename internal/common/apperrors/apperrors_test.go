package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgDerivation(t *testing.T) {
	root := New("base failure").SetStatusCode(400)
	derived := root.Msg("more specific failure")

	assert.Equal(t, "more specific failure", derived.Error())
	assert.Equal(t, 400, derived.StatusCode())
	assert.True(t, errors.Is(derived, root))
}

func TestErrAttachesCauses(t *testing.T) {
	root := New("operation failed")
	cause := errors.New("connection refused")
	combined := root.Err(cause)

	assert.True(t, errors.Is(combined, root))
	assert.True(t, errors.Is(combined, cause))
	assert.Equal(t, "operation failed", combined.Error())
}

func TestSetStatusCodeDoesNotMutateOriginal(t *testing.T) {
	root := New("failure")
	changed := root.SetStatusCode(422)

	assert.Equal(t, 0, root.StatusCode())
	assert.Equal(t, 422, changed.StatusCode())
}

func TestIsNilTarget(t *testing.T) {
	root := New("failure")
	assert.False(t, errors.Is(root, nil))
}
