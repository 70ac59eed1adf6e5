package testimonial

import (
	"errors"
	"net/http"

	"consulting-backend/internal/infrastructure/storage"
)

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")

	ErrStorageFailure = errors.New("testimonial storage failure")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTestimonialNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrEncoding):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
