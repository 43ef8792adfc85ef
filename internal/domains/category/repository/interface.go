package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/category/model"
)

// RepositoryInterface defines the data access contract for categories.
type RepositoryInterface interface {
	// Create inserts a new category.
	// Errors: DuplicateError if the name is taken.
	Create(ctx context.Context, category *model.Category) (*model.Category, error)

	// GetByID retrieves a category by id.
	// Errors: NotFoundError if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)

	// GetAll retrieves one page of categories plus the total count.
	GetAll(ctx context.Context, filter model.CategoryFilter) ([]model.Category, int64, error)

	// Update persists all fields of an existing category.
	Update(ctx context.Context, category *model.Category) (*model.Category, error)

	// Delete removes a category.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName reports whether any category uses this name.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// GetArticleCount returns the number of articles in the category.
	GetArticleCount(ctx context.Context, categoryID uuid.UUID) (int, error)
}
