package blog

import (
	"time"

	"github.com/google/uuid"
)

// TemplateType selects which of the three detail-page layouts renders
// the post.
type TemplateType string

const (
	TemplateLayout1 TemplateType = "layout-1"
	TemplateLayout2 TemplateType = "layout-2"
	TemplateLayout3 TemplateType = "layout-3"
)

// BlogPost is an insights article. ImageURL holds the full inline data
// URI of the cover image. Slug is derived from Title and recomputed on
// every write; it is the public lookup key for detail pages and is
// unique only by convention.
type BlogPost struct {
	ID               uuid.UUID    `json:"id" db:"id"`
	Title            string       `json:"title" db:"title"`
	ShortDescription string       `json:"short_description" db:"short_description"`
	FullContent      string       `json:"full_content" db:"full_content"`
	ImageURL         string       `json:"image_url" db:"image_url"`
	TemplateType     TemplateType `json:"template_type" db:"template_type"`
	Slug             string       `json:"slug" db:"slug"`
	CreatedAt        time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" db:"updated_at"`
}
