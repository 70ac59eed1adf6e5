package contact

import (
	"errors"
	"net/http"
)

var (
	ErrMessageNotFound = errors.New("contact message not found")

	ErrStorageFailure = errors.New("contact storage failure")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrMessageNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
