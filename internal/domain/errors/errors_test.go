package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopiesWithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("price must be >= 0")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrConflict))
	assert.Equal(t, "price must be >= 0", detailed.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrOrderNotFound.WrapMessage("lookup FN2026-ABC")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrOrderNotFound))
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	driverErr := errors.New(`pq: relation "orders" does not exist`)
	appErr := NewDatabaseExecuteError(driverErr, "failed to insert order")

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "Database execution failed", appErr.Message())
	assert.NotContains(t, appErr.Message(), "relation")
	assert.True(t, errors.Is(appErr, driverErr))
}
