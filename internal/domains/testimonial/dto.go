package testimonial

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// TestimonialFormData mirrors the admin testimonial form. The client
// photo travels as a separate multipart part.
type TestimonialFormData struct {
	ClientName      string  `form:"client_name" json:"client_name"`
	ClientPosition  string  `form:"client_position" json:"client_position"`
	ClientCompany   *string `form:"client_company" json:"client_company,omitempty"`
	TestimonialText string  `form:"testimonial_text" json:"testimonial_text"`
	Featured        bool    `form:"featured" json:"featured"`
}

func (f TestimonialFormData) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ClientName,
			validation.Required.Error("client name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&f.ClientPosition,
			validation.Required.Error("client position is required"),
			validation.Length(1, 200),
		),
		validation.Field(&f.TestimonialText,
			validation.Required.Error("testimonial text is required"),
		),
	)
}

// TestimonialResponse is the public representation of a testimonial.
type TestimonialResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientPosition  string    `json:"client_position"`
	ClientCompany   *string   `json:"client_company,omitempty"`
	TestimonialText string    `json:"testimonial_text"`
	ImageURL        string    `json:"image_url,omitempty"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"created_at"`
}

func (t *Testimonial) ToResponse() *TestimonialResponse {
	return &TestimonialResponse{
		ID:              t.ID,
		ClientName:      t.ClientName,
		ClientPosition:  t.ClientPosition,
		ClientCompany:   t.ClientCompany,
		TestimonialText: t.TestimonialText,
		ImageURL:        t.ImageURL,
		Featured:        t.Featured,
		CreatedAt:       t.CreatedAt,
	}
}
