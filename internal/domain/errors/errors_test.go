package errors

import (
	"net/http"
	"testing"

	"examhub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrDuplicateEmail.WrapMessage("registering worker")

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NotErrorIs(t, err, ErrDuplicateIdentifier)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_EMAIL", appErr.ErrorCode())
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("email is required")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "email is required", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewDatabaseExecuteError(cause, "find account")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Database operation failed", err.Message())
	assert.ErrorIs(t, err, cause)
}
