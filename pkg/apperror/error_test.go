package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HidesCause(t *testing.T) {
	cause := errors.New("535 5.7.8 Username and Password not accepted")
	err := New(http.StatusInternalServerError, "Failed to send email. Please try again later.", cause)

	assert.Equal(t, "Failed to send email. Please try again later.", err.Error())
	assert.NotContains(t, err.Error(), "535")
	assert.True(t, errors.Is(err, cause))
}

func TestAppError_As(t *testing.T) {
	var wrapped error = BadRequest("Invalid request body")

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Nil(t, appErr.Err)
}
