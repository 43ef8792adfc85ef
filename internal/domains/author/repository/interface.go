package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/author/model"
)

// RepositoryInterface defines the data access contract for authors.
// Abstraction keeps the service testable and the store swappable.
type RepositoryInterface interface {
	// Create inserts a new author.
	// Errors: DuplicateError if the email is already registered.
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	// GetByID retrieves an author by id.
	// Errors: NotFoundError if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetAll retrieves one page of authors plus the total count.
	// The filter's sort column/direction are already validated.
	GetAll(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// Update persists all fields of an existing author.
	// Errors: NotFoundError if absent, DuplicateError on email conflict.
	Update(ctx context.Context, author *model.Author) (*model.Author, error)

	// Delete removes an author.
	// Errors: NotFoundError if absent, ErrAuthorHasArticles on a late
	// foreign key violation.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail reports whether any author uses this email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetArticleCount returns the number of articles written by the author.
	// Used by the delete guard.
	GetArticleCount(ctx context.Context, authorID uuid.UUID) (int, error)
}
