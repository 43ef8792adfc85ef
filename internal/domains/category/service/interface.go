package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/category/model"
	"blog-backend/internal/shared/pagination"
)

// ServiceInterface exposes the category use cases. Mirrors the author
// service, keyed on the unique name instead of email.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CategoryResponse, error)
	List(ctx context.Context, params pagination.Params) (*pagination.PageResponse[model.CategoryResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// GetEntityByID is the internal accessor the article service uses to
	// resolve the owning category.
	GetEntityByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
}
