package model

import (
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/shared/apperrors"
)

// ArticleStatus is the publication state. An article starts as a draft
// and becomes published through Publish or an update carrying the status.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
)

// ParseStatus validates an incoming status string.
func ParseStatus(s string) (ArticleStatus, error) {
	switch ArticleStatus(s) {
	case StatusDraft, StatusPublished:
		return ArticleStatus(s), nil
	default:
		return "", apperrors.NewBadRequest("invalid article status: %s", s)
	}
}

// Article is a blog post. Slug is unique across all articles and derived
// from the title.
type Article struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Slug        string        `json:"slug" db:"slug"`
	Content     string        `json:"content" db:"content"`
	Excerpt     *string       `json:"excerpt" db:"excerpt"`
	Status      ArticleStatus `json:"status" db:"status"`
	AuthorID    uuid.UUID     `json:"author_id" db:"author_id"`
	CategoryID  uuid.UUID     `json:"category_id" db:"category_id"`
	ViewCount   int           `json:"view_count" db:"view_count"`
	PublishedOn *time.Time    `json:"published_on" db:"published_on"`
	CreatedOn   time.Time     `json:"created_on" db:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on" db:"updated_on"`
}

// Publish marks the article published and restamps the timestamp even if
// it was published before. The update path is gentler: it stamps only a
// nil PublishedOn. Both behaviors are intentional.
func (a *Article) Publish(now time.Time) {
	a.Status = StatusPublished
	a.PublishedOn = &now
}

const (
	MinContentLength = 10
	MaxExcerptLength = 500
)

// ArticleListItem is the joined row backing list endpoints: article
// columns plus the author and category names and the comment count.
type ArticleListItem struct {
	Article
	AuthorName   string `json:"author_name" db:"author_name"`
	CategoryName string `json:"category_name" db:"category_name"`
	CommentCount int    `json:"comment_count" db:"comment_count"`
}

// CommentSummary is the comment shape embedded in the article detail
// view. Kept here so the article repository can load it without touching
// the comment domain.
type CommentSummary struct {
	ID         uuid.UUID `json:"id" db:"id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	Approved   bool      `json:"approved" db:"approved"`
	CreatedOn  time.Time `json:"created_on" db:"created_on"`
}

// ArticleFilter - query parameters for the paginated listings. The zero
// value of each optional field means "no filter".
type ArticleFilter struct {
	Status     *ArticleStatus
	AuthorID   *uuid.UUID
	CategoryID *uuid.UUID
	Keyword    string // case-insensitive substring of title or content
	SortBy     string // whitelisted by the service
	SortDir    string // "ASC" | "DESC"
	Limit      int
	Offset     int
}
