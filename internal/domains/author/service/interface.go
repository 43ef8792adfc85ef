package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/shared/pagination"
)

// ServiceInterface exposes the author use cases to the HTTP layer and to
// the article service.
type ServiceInterface interface {
	// Create registers a new author.
	// Errors: DuplicateError if the email is taken.
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.AuthorResponse, error)

	// GetByID returns the external representation.
	GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error)

	// List returns one sorted page of authors.
	// Errors: BadRequestError on an unrecognized sort field or direction.
	List(ctx context.Context, params pagination.Params) (*pagination.PageResponse[model.AuthorResponse], error)

	// Update applies the provided fields only. A changed email is
	// re-checked for uniqueness against all other authors.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error)

	// Delete removes an author. Refuses while articles still reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetEntityByID returns the internal entity. Consumed by the article
	// service to resolve the owning author; not part of the HTTP surface.
	GetEntityByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
}
