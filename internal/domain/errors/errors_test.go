package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email: email")

	assert.True(t, stderrors.Is(detailed, ErrValidationFailed))
	assert.True(t, stderrors.Is(pkgerrors.Wrap(detailed, "create customer"), ErrValidationFailed))
	assert.False(t, stderrors.Is(detailed, ErrDuplicateUser))
	assert.Equal(t, "Input validation failed: email: email", detailed.Error())
}

func TestBaseError_AsThroughWrap(t *testing.T) {
	err := ErrCustomerNotFound.WrapMessage("update customer")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "CUSTOMER_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to save customer")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "database execution failed")
}
