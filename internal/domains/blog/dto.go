package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// BlogFormData mirrors the admin blog form. The image file travels as a
// separate multipart part and is not part of this struct.
type BlogFormData struct {
	Title            string `form:"title" json:"title"`
	ShortDescription string `form:"short_description" json:"short_description"`
	FullContent      string `form:"full_content" json:"full_content"`
	TemplateType     string `form:"template_type" json:"template_type"`
}

func (f BlogFormData) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&f.ShortDescription,
			validation.Required.Error("short description is required"),
		),
		validation.Field(&f.FullContent,
			validation.Required.Error("full content is required"),
		),
		validation.Field(&f.TemplateType,
			validation.Required.Error("template type is required"),
			validation.In(
				string(TemplateLayout1),
				string(TemplateLayout2),
				string(TemplateLayout3),
			).Error("template type must be layout-1, layout-2 or layout-3"),
		),
	)
}

// BlogResponse is the public representation of a post.
type BlogResponse struct {
	ID               uuid.UUID    `json:"id"`
	Title            string       `json:"title"`
	ShortDescription string       `json:"short_description"`
	FullContent      string       `json:"full_content"`
	ImageURL         string       `json:"image_url"`
	TemplateType     TemplateType `json:"template_type"`
	Slug             string       `json:"slug"`
	CreatedAt        time.Time    `json:"created_at"`
}

func (p *BlogPost) ToResponse() *BlogResponse {
	return &BlogResponse{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		FullContent:      p.FullContent,
		ImageURL:         p.ImageURL,
		TemplateType:     p.TemplateType,
		Slug:             p.Slug,
		CreatedAt:        p.CreatedAt,
	}
}
