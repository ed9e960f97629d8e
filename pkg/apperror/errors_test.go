package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New("VAL_001", "bad input", http.StatusBadRequest)
	assert.Equal(t, "[VAL_001] bad input", err.Error())

	inner := errors.New("dial tcp: timeout")
	wrapped := Wrap("PRV_002", "provider down", http.StatusInternalServerError, inner)
	assert.Contains(t, wrapped.Error(), "PRV_002")
	assert.Contains(t, wrapped.Error(), "dial tcp: timeout")
	assert.ErrorIs(t, wrapped, inner)
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{Validation("missing field"), "VAL_001", http.StatusBadRequest},
		{ErrAdminRequired(), "AUTH_001", http.StatusForbidden},
		{ErrInvalidPartnerToken(), "AUTH_002", http.StatusForbidden},
		{ErrProviderRejected("invalid address"), "PRV_001", http.StatusBadRequest},
		{ErrProviderUnavailable(errors.New("timeout")), "PRV_002", http.StatusInternalServerError},
		{ErrNotFound("order"), "NF_001", http.StatusNotFound},
		{ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{InternalError(errors.New("boom")), "SYS_001", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.status, tt.err.HTTPStatus)
	}
}

func TestProviderRejected_KeepsMessageVerbatim(t *testing.T) {
	err := ErrProviderRejected("Pickup address could not be geocoded")
	assert.Equal(t, "Pickup address could not be geocoded", err.Message)
}

func TestProviderUnavailable_HidesInternalDetail(t *testing.T) {
	err := ErrProviderUnavailable(errors.New("connection refused to 10.0.0.5"))
	assert.NotContains(t, err.Message, "10.0.0.5")
}
