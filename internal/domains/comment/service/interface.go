package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/shared/pagination"
)

// ServiceInterface exposes the comment moderation use cases.
type ServiceInterface interface {
	// Create stores a new comment on an existing article. New comments
	// are always unapproved.
	// Errors: article NotFoundError when the article is missing.
	Create(ctx context.Context, articleID uuid.UUID, req *model.CreateCommentRequest) (*model.CommentResponse, error)

	// GetByID returns the external representation.
	GetByID(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error)

	// ListByArticle returns one page of all comments on the article,
	// newest first. The article must exist even when the page is empty.
	ListByArticle(ctx context.Context, articleID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.CommentResponse], error)

	// ListApprovedByArticle is ListByArticle restricted to approved
	// comments. This is the public-facing listing.
	ListApprovedByArticle(ctx context.Context, articleID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.CommentResponse], error)

	// Approve marks the comment approved. Approving an already-approved
	// comment succeeds unchanged.
	Approve(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
