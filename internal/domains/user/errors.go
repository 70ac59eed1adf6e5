package user

import (
	"errors"
	"net/http"
)

var (
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidCredentials covers both unknown email and wrong password
	// so that login responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrSessionRevoked means the token was valid but has been logged out.
	ErrSessionRevoked = errors.New("session has been revoked")

	ErrSamePassword = errors.New("new password must differ from the current one")

	ErrStorageFailure = errors.New("admin storage failure")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAdminNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrSessionRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrSamePassword):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
