package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"blog-backend/internal/shared/apperrors"
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Bio   *string `json:"bio,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return apperrors.WrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength).Error("bio must be at most 1000 characters"),
		),
	))
}

// UpdateAuthorRequest - PUT /api/v1/authors/:id
// All fields optional for partial updates (PATCH behavior)
type UpdateAuthorRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return apperrors.WrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 255)),
		validation.Field(&r.Email, is.Email.Error("invalid email format")),
		validation.Field(&r.Bio, validation.Length(0, MaxBioLength).Error("bio must be at most 1000 characters")),
	))
}

// AuthorResponse - external representation
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// Conversion methods

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Bio:       a.Bio,
		CreatedOn: a.CreatedOn,
	}
}

func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:  r.Name,
		Email: r.Email,
		Bio:   r.Bio,
	}
}

// ApplyToEntity applies only the provided fields to an existing author.
func (r *UpdateAuthorRequest) ApplyToEntity(author *Author) {
	if r.Name != nil {
		author.Name = *r.Name
	}
	if r.Email != nil {
		author.Email = *r.Email
	}
	if r.Bio != nil {
		author.Bio = r.Bio
	}
}
