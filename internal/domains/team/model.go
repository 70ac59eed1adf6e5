package team

import (
	"time"

	"github.com/google/uuid"
)

// Category buckets members for the UI filter on the team page.
type Category string

const (
	CategoryStrategy   Category = "strategy"
	CategoryFinance    Category = "finance"
	CategoryOperations Category = "operations"
	CategoryTechnology Category = "technology"
	CategoryLegal      Category = "legal"
	CategoryHR         Category = "hr"
)

func Categories() []interface{} {
	return []interface{}{
		string(CategoryStrategy),
		string(CategoryFinance),
		string(CategoryOperations),
		string(CategoryTechnology),
		string(CategoryLegal),
		string(CategoryHR),
	}
}

// TeamMember is a staff profile. Expertise is stored as the opaque
// string the form submitted; whether it reads as free text or as
// comma-separated tags is the presentation layer's call. ImageBase64 is
// the inline data URI of the portrait, empty when none was uploaded.
type TeamMember struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Position    string    `json:"position" db:"position"`
	Expertise   *string   `json:"expertise,omitempty" db:"expertise"`
	Category    *string   `json:"category,omitempty" db:"category"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	ImageBase64 string    `json:"image_base64" db:"image_base64"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
