package team

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateTeamMemberRequest mirrors the admin form for a new member. The
// portrait file travels as a separate multipart part.
type CreateTeamMemberRequest struct {
	Name      string  `form:"name" json:"name"`
	Position  string  `form:"position" json:"position"`
	Expertise *string `form:"expertise" json:"expertise,omitempty"`
	Category  *string `form:"category" json:"category,omitempty"`
	Bio       *string `form:"bio" json:"bio,omitempty"`
}

func (r CreateTeamMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Position,
			validation.Required.Error("position is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil && *r.Category != "",
				validation.In(Categories()...).Error("unknown category"),
			),
		),
	)
}

// UpdateTeamMemberRequest carries partial updates: only non-nil fields
// overwrite the stored value. The portrait is governed separately by an
// explicit tri-state: no file and RemoveImage false keeps the stored
// image, a file replaces it, RemoveImage true clears it.
type UpdateTeamMemberRequest struct {
	Name        *string `form:"name" json:"name,omitempty"`
	Position    *string `form:"position" json:"position,omitempty"`
	Expertise   *string `form:"expertise" json:"expertise,omitempty"`
	Category    *string `form:"category" json:"category,omitempty"`
	Bio         *string `form:"bio" json:"bio,omitempty"`
	RemoveImage bool    `form:"remove_image" json:"remove_image,omitempty"`
}

func (r UpdateTeamMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("name cannot be emptied"),
				validation.Length(1, 200),
			),
		),
		validation.Field(&r.Position,
			validation.When(r.Position != nil,
				validation.Required.Error("position cannot be emptied"),
				validation.Length(1, 200),
			),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil && *r.Category != "",
				validation.In(Categories()...).Error("unknown category"),
			),
		),
	)
}

// TeamMemberResponse is the public representation of a member.
type TeamMemberResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Expertise   *string   `json:"expertise,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	ImageBase64 string    `json:"image_base64,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *TeamMember) ToResponse() *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Position:    m.Position,
		Expertise:   m.Expertise,
		Category:    m.Category,
		Bio:         m.Bio,
		ImageBase64: m.ImageBase64,
		CreatedAt:   m.CreatedAt,
	}
}
