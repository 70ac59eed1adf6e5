package blog

import (
	"errors"
	"net/http"

	"consulting-backend/internal/infrastructure/storage"
)

var (
	// Not Found
	ErrBlogNotFound = errors.New("blog post not found")

	// Invalid input
	ErrImageRequired = errors.New("blog post requires a cover image")

	// Storage failures wrap this sentinel together with the underlying
	// cause; callers surface it, nobody retries here.
	ErrStorageFailure = errors.New("blog storage failure")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBlogNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrImageRequired), errors.Is(err, storage.ErrEncoding):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
