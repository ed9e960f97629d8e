package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a caller-input error. These never trigger a provider call.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Authorization (AUTH) ----

func ErrAdminRequired() *AppError {
	return New("AUTH_001", "Admin authorization required", http.StatusForbidden)
}

// ErrInvalidPartnerToken covers every partner token failure. The message is
// the same whether the token is malformed, unknown or revoked, so a caller
// cannot probe which prefixes exist.
func ErrInvalidPartnerToken() *AppError {
	return New("AUTH_002", "Invalid partner token", http.StatusForbidden)
}

// ---- Provider (PRV) ----

// ErrProviderRejected carries a well-formed business rejection from the
// provider. The provider message is passed through verbatim.
func ErrProviderRejected(message string) *AppError {
	return New("PRV_001", message, http.StatusBadRequest)
}

// ErrProviderUnavailable covers transport failures and unexpected provider
// responses. The wrapped error is logged server-side, never shown to callers.
func ErrProviderUnavailable(err error) *AppError {
	return Wrap("PRV_002", "Logistics provider is temporarily unavailable", http.StatusInternalServerError, err)
}

// ---- Lookup (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
