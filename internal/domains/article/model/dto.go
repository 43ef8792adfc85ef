package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	authormodel "blog-backend/internal/domains/author/model"
	categorymodel "blog-backend/internal/domains/category/model"
	"blog-backend/internal/shared/apperrors"
)

// requiredUUID rejects the zero uuid. validation.Required cannot tell a
// zero uuid apart from a set one (fixed-size array).
func requiredUUID(name string) validation.RuleFunc {
	return func(value interface{}) error {
		id, ok := value.(uuid.UUID)
		if !ok || id == uuid.Nil {
			return errors.New(name + " is required")
		}
		return nil
	}
}

// CreateArticleRequest - POST /api/v1/articles
type CreateArticleRequest struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	AuthorID   uuid.UUID `json:"author_id"`
	CategoryID uuid.UUID `json:"category_id"`
}

func (r CreateArticleRequest) Validate() error {
	return apperrors.WrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(MinContentLength, 0).Error("content must be at least 10 characters"),
		),
		validation.Field(&r.Excerpt,
			validation.Length(0, MaxExcerptLength).Error("excerpt must be at most 500 characters"),
		),
		validation.Field(&r.AuthorID, validation.By(requiredUUID("author_id"))),
		validation.Field(&r.CategoryID, validation.By(requiredUUID("category_id"))),
	))
}

// UpdateArticleRequest - PUT /api/v1/articles/:id
// All fields optional for partial updates. A new title regenerates the
// slug; a new category id is re-resolved; status PUBLISHED stamps the
// publication timestamp only when it is still unset.
type UpdateArticleRequest struct {
	Title      *string    `json:"title,omitempty"`
	Content    *string    `json:"content,omitempty"`
	Excerpt    *string    `json:"excerpt,omitempty"`
	Status     *string    `json:"status,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

func (r UpdateArticleRequest) Validate() error {
	return apperrors.WrapValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.Length(MinContentLength, 0).Error("content must be at least 10 characters")),
		validation.Field(&r.Excerpt, validation.Length(0, MaxExcerptLength).Error("excerpt must be at most 500 characters")),
		validation.Field(&r.Status, validation.In(string(StatusDraft), string(StatusPublished)).Error("status must be DRAFT or PUBLISHED")),
	))
}

// ArticleResponse - detail representation with the resolved author,
// category and the article's comments.
type ArticleResponse struct {
	ID          uuid.UUID                       `json:"id"`
	Title       string                          `json:"title"`
	Slug        string                          `json:"slug"`
	Content     string                          `json:"content"`
	Excerpt     *string                         `json:"excerpt,omitempty"`
	Status      ArticleStatus                   `json:"status"`
	Author      *authormodel.AuthorResponse     `json:"author"`
	Category    *categorymodel.CategoryResponse `json:"category"`
	ViewCount   int                             `json:"view_count"`
	Comments    []CommentSummary                `json:"comments"`
	PublishedOn *time.Time                      `json:"published_on,omitempty"`
	CreatedOn   time.Time                       `json:"created_on"`
	UpdatedOn   time.Time                       `json:"updated_on"`
}

// ArticleListItemResponse - lightweight row for list endpoints. No
// content and no nested comments.
type ArticleListItemResponse struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Excerpt      *string       `json:"excerpt,omitempty"`
	Status       ArticleStatus `json:"status"`
	AuthorID     uuid.UUID     `json:"author_id"`
	AuthorName   string        `json:"author_name"`
	CategoryID   uuid.UUID     `json:"category_id"`
	CategoryName string        `json:"category_name"`
	ViewCount    int           `json:"view_count"`
	CommentCount int           `json:"comment_count"`
	PublishedOn  *time.Time    `json:"published_on,omitempty"`
	CreatedOn    time.Time     `json:"created_on"`
	UpdatedOn    time.Time     `json:"updated_on"`
}

// Conversion methods

func (a *Article) ToResponse(author *authormodel.Author, category *categorymodel.Category, comments []CommentSummary) *ArticleResponse {
	if comments == nil {
		comments = []CommentSummary{}
	}
	resp := &ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		Status:      a.Status,
		ViewCount:   a.ViewCount,
		Comments:    comments,
		PublishedOn: a.PublishedOn,
		CreatedOn:   a.CreatedOn,
		UpdatedOn:   a.UpdatedOn,
	}
	if author != nil {
		resp.Author = author.ToResponse()
	}
	if category != nil {
		resp.Category = category.ToResponse()
	}
	return resp
}

func (i *ArticleListItem) ToResponse() *ArticleListItemResponse {
	return &ArticleListItemResponse{
		ID:           i.ID,
		Title:        i.Title,
		Slug:         i.Slug,
		Excerpt:      i.Excerpt,
		Status:       i.Status,
		AuthorID:     i.AuthorID,
		AuthorName:   i.AuthorName,
		CategoryID:   i.CategoryID,
		CategoryName: i.CategoryName,
		ViewCount:    i.ViewCount,
		CommentCount: i.CommentCount,
		PublishedOn:  i.PublishedOn,
		CreatedOn:    i.CreatedOn,
		UpdatedOn:    i.UpdatedOn,
	}
}

func (r *CreateArticleRequest) ToEntity() *Article {
	return &Article{
		Title:      r.Title,
		Content:    r.Content,
		Excerpt:    r.Excerpt,
		Status:     StatusDraft,
		AuthorID:   r.AuthorID,
		CategoryID: r.CategoryID,
		ViewCount:  0,
	}
}
