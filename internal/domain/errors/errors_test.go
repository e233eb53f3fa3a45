package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidState.WithDetails("order is Shipped")

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.NotErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "order is Shipped", err.Details())
	assert.Empty(t, ErrInvalidState.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrConflict.WrapMessage("product code already exists")

	assert.ErrorIs(t, err, ErrConflict)

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.OrNil())

	verr.Add("email", "is required")
	verr.Add("role", "must be one of Admin, MR, Manager")

	err := verr.OrNil()
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, verr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", verr.ErrorCode())
	assert.Equal(t, []FieldError{
		{Field: "email", Message: "is required"},
		{Field: "role", Message: "must be one of Admin, MR, Manager"},
	}, verr.Data())
}
