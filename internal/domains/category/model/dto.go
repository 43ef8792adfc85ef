package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/shared/apperrors"
)

// CreateCategoryRequest - POST /api/v1/categories
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r CreateCategoryRequest) Validate() error {
	return apperrors.WrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must be at most 500 characters"),
		),
	))
}

// UpdateCategoryRequest - PUT /api/v1/categories/:id
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateCategoryRequest) Validate() error {
	return apperrors.WrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength).Error("description must be at most 500 characters")),
	))
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

func (c *Category) ToResponse() *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedOn:   c.CreatedOn,
	}
}

func (r *CreateCategoryRequest) ToEntity() *Category {
	return &Category{
		Name:        r.Name,
		Description: r.Description,
	}
}

func (r *UpdateCategoryRequest) ApplyToEntity(category *Category) {
	if r.Name != nil {
		category.Name = *r.Name
	}
	if r.Description != nil {
		category.Description = r.Description
	}
}
