package team

import (
	"errors"
	"net/http"

	"consulting-backend/internal/infrastructure/storage"
)

var (
	ErrMemberNotFound = errors.New("team member not found")

	ErrStorageFailure = errors.New("team storage failure")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrEncoding):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
