package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is reader feedback on an article. Comments enter moderation
// unapproved and become publicly visible once approved.
type Comment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ArticleID   uuid.UUID `json:"article_id" db:"article_id"`
	AuthorName  string    `json:"author_name" db:"author_name"`
	AuthorEmail string    `json:"author_email" db:"author_email"`
	Content     string    `json:"content" db:"content"`
	Approved    bool      `json:"approved" db:"approved"`
	CreatedOn   time.Time `json:"created_on" db:"created_on"`
}

const MinContentLength = 5

// CommentFilter - query parameters for the per-article listings.
type CommentFilter struct {
	ArticleID    uuid.UUID
	ApprovedOnly bool
	Limit        int
	Offset       int
}
