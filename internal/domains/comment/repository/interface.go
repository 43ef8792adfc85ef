package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
)

// RepositoryInterface defines the data access contract for comments.
type RepositoryInterface interface {
	// Create inserts a new comment.
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	// GetByID retrieves a comment by id.
	// Errors: NotFoundError if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// GetByArticle retrieves one page of an article's comments plus the
	// total count, newest first.
	GetByArticle(ctx context.Context, filter model.CommentFilter) ([]model.Comment, int64, error)

	// SetApproved flips the moderation flag.
	// Errors: NotFoundError if absent.
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*model.Comment, error)

	// Delete removes a comment.
	// Errors: NotFoundError if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
