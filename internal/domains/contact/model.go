package contact

import (
	"time"

	"github.com/google/uuid"
)

// Source tags which public form produced the message.
type Source string

const (
	SourceContact Source = "contact"
	SourceToolkit Source = "toolkit"
)

// ContactMessage is a submission from the contact page or the toolkit
// modal. Messages are stored for the admin panel; outbound email
// notification is deliberately not part of this service.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Company   *string   `json:"company,omitempty" db:"company"`
	Message   string    `json:"message" db:"message"`
	Source    Source    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
