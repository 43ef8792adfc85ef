package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/shared/pagination"
)

// ServiceInterface exposes the article use cases. Articles are the hub
// of the domain: they reference authors and categories and own comments.
type ServiceInterface interface {
	// Create persists a new draft. The author and category must exist
	// (NotFound propagates from their services); the slug is derived
	// from the title and must be unique.
	Create(ctx context.Context, req *model.CreateArticleRequest) (*model.ArticleResponse, error)

	// GetByID returns the detail view with the resolved author, category
	// and the full comment list.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error)

	// GetBySlug is GetByID keyed on the slug.
	GetBySlug(ctx context.Context, slug string) (*model.ArticleResponse, error)

	// IncrementViewCount adds exactly 1 to the view counter. Safe to
	// call on every detail read.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// List returns one page of list rows.
	// Errors: BadRequestError on an unrecognized sort field or direction.
	List(ctx context.Context, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error)

	// ListByStatus filters to one publication status, newest first.
	ListByStatus(ctx context.Context, status model.ArticleStatus, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error)

	// ListByAuthor filters to one author, newest first. The author must
	// exist even when the page would be empty.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error)

	// ListByCategory filters to one category, newest first. The category
	// must exist even when the page would be empty.
	ListByCategory(ctx context.Context, categoryID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error)

	// Search matches the keyword case-insensitively as a substring of
	// the title or content, newest first.
	Search(ctx context.Context, keyword string, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error)

	// Update applies the provided fields only. A new title regenerates
	// the slug and re-checks uniqueness against other articles; a new
	// category id is re-resolved; status PUBLISHED stamps the
	// publication timestamp only when it is still unset.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateArticleRequest) (*model.ArticleResponse, error)

	// Publish sets the status to PUBLISHED and restamps the publication
	// timestamp, even on an already-published article.
	Publish(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error)

	// Delete removes the article and all of its comments.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID reports whether the article exists. Consumed by the
	// comment service; not part of the HTTP surface.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
