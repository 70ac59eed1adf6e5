package testimonial

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a client quote. Featured controls inclusion in the
// homepage carousel. ImageURL is the inline data URI of the client
// photo, empty when none was uploaded.
type Testimonial struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ClientName      string    `json:"client_name" db:"client_name"`
	ClientPosition  string    `json:"client_position" db:"client_position"`
	ClientCompany   *string   `json:"client_company,omitempty" db:"client_company"`
	TestimonialText string    `json:"testimonial_text" db:"testimonial_text"`
	ImageURL        string    `json:"image_url" db:"image_url"`
	Featured        bool      `json:"featured" db:"featured"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
