package dto

import (
	"net/http"

	"github.com/stayhub/backend/internal/domain/shared"
)

// Boundary-only error codes. Domain codes live in internal/domain/shared and
// are reused verbatim in responses.
const (
	// ErrCodeValidation is used when request binding or validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeTokenExpired is used when the access token has expired
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Self-review is a business rule violation rather than a bad reference,
// hence 422.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,

	shared.CodeInvalidInput:       http.StatusBadRequest,
	shared.CodeInvalidCredentials: http.StatusUnauthorized,
	shared.CodeForbidden:          http.StatusForbidden,
	shared.CodeNotFound:           http.StatusNotFound,
	shared.CodeReferenceNotFound:  http.StatusNotFound,
	shared.CodeAlreadyExists:      http.StatusConflict,
	shared.CodeSelfReview:         http.StatusUnprocessableEntity,
	shared.CodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
