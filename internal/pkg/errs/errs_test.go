package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		code   int
		status int
	}{
		{ErrInvalidParams, http.StatusBadRequest},
		{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{ErrRequestEntityTooLarge, http.StatusRequestEntityTooLarge},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
		{ErrInvalidUserID, http.StatusBadRequest},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrUserAlreadyExists, http.StatusConflict},
		{ErrUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := NewError(tt.code)
		assert.Equal(t, tt.code, err.Code)
		assert.Equal(t, tt.status, err.Status, "code %d", tt.code)
		assert.NotEmpty(t, err.Message)
	}
}

func TestNewError_UnknownCode(t *testing.T) {
	err := NewError(9999)
	assert.Equal(t, ErrUnknown, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestNewError_ReturnsCopies(t *testing.T) {
	a := NewError(ErrUserNotFound)
	a.Message = "changed"

	assert.Equal(t, "User not found.", NewError(ErrUserNotFound).Message)
}

func TestWithDetails(t *testing.T) {
	base := NewError(ErrInvalidParams)
	detailed := base.WithDetails([]string{"name"})

	assert.Nil(t, base.Details)
	assert.Equal(t, []string{"name"}, detailed.Details)
	assert.Equal(t, base.Code, detailed.Code)
	assert.Equal(t, "Error Code 1001 (HTTP 400): Invalid request parameters.", detailed.Error())
}
