package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"blog-backend/internal/shared/apperrors"
)

// CreateCommentRequest - POST /api/v1/articles/:id/comments
// The article id comes from the URL, not the body.
type CreateCommentRequest struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return apperrors.WrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.AuthorName,
			validation.Required.Error("author_name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.AuthorEmail,
			validation.Required.Error("author_email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(MinContentLength, 0).Error("content must be at least 5 characters"),
		),
	))
}

// CommentResponse - external representation
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	ArticleID   uuid.UUID `json:"article_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	Approved    bool      `json:"approved"`
	CreatedOn   time.Time `json:"created_on"`
}

// Conversion methods

func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:          c.ID,
		ArticleID:   c.ArticleID,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Content:     c.Content,
		Approved:    c.Approved,
		CreatedOn:   c.CreatedOn,
	}
}

// ToEntity builds a fresh unapproved comment for the article.
func (r *CreateCommentRequest) ToEntity(articleID uuid.UUID) *Comment {
	return &Comment{
		ArticleID:   articleID,
		AuthorName:  r.AuthorName,
		AuthorEmail: r.AuthorEmail,
		Content:     r.Content,
		Approved:    false,
	}
}
