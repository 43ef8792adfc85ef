package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
)

// RepositoryInterface defines the data access contract for articles.
type RepositoryInterface interface {
	// Create inserts a new article.
	// Errors: DuplicateError on a slug collision.
	Create(ctx context.Context, article *model.Article) (*model.Article, error)

	// GetByID retrieves an article by id.
	// Errors: NotFoundError if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error)

	// GetBySlug retrieves an article by its unique slug.
	// Errors: NotFoundError if absent.
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)

	// GetComments returns every comment of the article in creation
	// order, oldest first. Used by the detail view.
	GetComments(ctx context.Context, articleID uuid.UUID) ([]model.CommentSummary, error)

	// List retrieves one page of list rows plus the total count matching
	// the filter. Sort column/direction are already validated.
	List(ctx context.Context, filter model.ArticleFilter) ([]model.ArticleListItem, int64, error)

	// Update persists all fields of an existing article.
	// Errors: NotFoundError if absent, DuplicateError on slug conflict.
	Update(ctx context.Context, article *model.Article) (*model.Article, error)

	// IncrementViewCount adds exactly 1 to the view counter in a single
	// atomic statement. Errors: NotFoundError if absent.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// Delete removes an article and all of its comments in one
	// transaction. Errors: NotFoundError if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID reports whether the article exists. Consumed by the
	// comment service.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsBySlug reports whether any article uses this slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
