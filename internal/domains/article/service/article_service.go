package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/article/repository"
	authormodel "blog-backend/internal/domains/author/model"
	categorymodel "blog-backend/internal/domains/category/model"
	"blog-backend/internal/shared/apperrors"
	"blog-backend/internal/shared/pagination"
	"blog-backend/internal/shared/utils"
)

// AuthorLookup is the slice of the author service the article service
// needs: resolving the owning author.
type AuthorLookup interface {
	GetEntityByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error)
}

// CategoryLookup resolves the owning category.
type CategoryLookup interface {
	GetEntityByID(ctx context.Context, id uuid.UUID) (*categorymodel.Category, error)
}

type articleService struct {
	repo       repository.RepositoryInterface
	authors    AuthorLookup
	categories CategoryLookup
}

func NewArticleService(repo repository.RepositoryInterface, authors AuthorLookup, categories CategoryLookup) ServiceInterface {
	return &articleService{
		repo:       repo,
		authors:    authors,
		categories: categories,
	}
}

// allowedSortColumns whitelists sortable article fields for the
// unfiltered listing.
var allowedSortColumns = map[string]string{
	"title":        "title",
	"created_on":   "created_on",
	"updated_on":   "updated_on",
	"published_on": "published_on",
	"view_count":   "view_count",
}

func resolveSort(params pagination.Params) (column, direction string, err error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_on"
	}
	column, ok := allowedSortColumns[sortBy]
	if !ok {
		return "", "", apperrors.NewBadRequest("unsupported sort field: %s", sortBy)
	}

	switch strings.ToLower(params.SortDir) {
	case "", "desc":
		direction = "DESC"
	case "asc":
		direction = "ASC"
	default:
		return "", "", apperrors.NewBadRequest("unsupported sort direction: %s", params.SortDir)
	}

	return column, direction, nil
}

func (s *articleService) Create(ctx context.Context, req *model.CreateArticleRequest) (*model.ArticleResponse, error) {
	log.Info().Str("title", req.Title).Msg("Creating article")

	author, err := s.authors.GetEntityByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.GetEntityByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	slug := utils.GenerateSlug(req.Title)
	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.NewDuplicateSlug(slug)
	}

	article := req.ToEntity()
	article.Slug = slug

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("article_id", created.ID.String()).
		Str("slug", created.Slug).
		Msg("Article created")

	return created.ToResponse(author, category, nil), nil
}

// detail assembles the full representation around a loaded article.
func (s *articleService) detail(ctx context.Context, article *model.Article) (*model.ArticleResponse, error) {
	author, err := s.authors.GetEntityByID(ctx, article.AuthorID)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.GetEntityByID(ctx, article.CategoryID)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.GetComments(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	return article.ToResponse(author, category, comments), nil
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, article)
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*model.ArticleResponse, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, article)
}

func (s *articleService) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return s.repo.IncrementViewCount(ctx, id)
}

func (s *articleService) list(ctx context.Context, filter model.ArticleFilter, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error) {
	filter.Limit = params.Size
	filter.Offset = params.Offset()

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ArticleListItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *items[i].ToResponse())
	}

	return pagination.NewPageResponse(responses, params.Page, params.Size, total), nil
}

func (s *articleService) List(ctx context.Context, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error) {
	params.Normalize()

	column, direction, err := resolveSort(params)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, model.ArticleFilter{SortBy: column, SortDir: direction}, params)
}

func (s *articleService) ListByStatus(ctx context.Context, status model.ArticleStatus, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error) {
	params.Normalize()

	// Filtered listings are fixed to newest first.
	return s.list(ctx, model.ArticleFilter{
		Status:  &status,
		SortBy:  "created_on",
		SortDir: "DESC",
	}, params)
}

func (s *articleService) ListByAuthor(ctx context.Context, authorID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error) {
	params.Normalize()

	// The author must exist even when the page is empty.
	if _, err := s.authors.GetEntityByID(ctx, authorID); err != nil {
		return nil, err
	}

	return s.list(ctx, model.ArticleFilter{
		AuthorID: &authorID,
		SortBy:   "created_on",
		SortDir:  "DESC",
	}, params)
}

func (s *articleService) ListByCategory(ctx context.Context, categoryID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error) {
	params.Normalize()

	if _, err := s.categories.GetEntityByID(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.list(ctx, model.ArticleFilter{
		CategoryID: &categoryID,
		SortBy:     "created_on",
		SortDir:    "DESC",
	}, params)
}

func (s *articleService) Search(ctx context.Context, keyword string, params pagination.Params) (*pagination.PageResponse[model.ArticleListItemResponse], error) {
	params.Normalize()

	return s.list(ctx, model.ArticleFilter{
		Keyword: keyword,
		SortBy:  "created_on",
		SortDir: "DESC",
	}, params)
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateArticleRequest) (*model.ArticleResponse, error) {
	log.Info().Str("article_id", id.String()).Msg("Updating article")

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.Title != nil {
		updated.Title = *req.Title
		newSlug := utils.GenerateSlug(*req.Title)
		// Only collisions with other articles count; regenerating the
		// article's own slug is fine.
		if newSlug != current.Slug {
			exists, err := s.repo.ExistsBySlug(ctx, newSlug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, model.NewDuplicateSlug(newSlug)
			}
		}
		updated.Slug = newSlug
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Excerpt != nil {
		updated.Excerpt = req.Excerpt
	}
	if req.CategoryID != nil {
		if _, err := s.categories.GetEntityByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		updated.CategoryID = *req.CategoryID
	}
	if req.Status != nil {
		status, err := model.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		updated.Status = status
		// Unlike Publish, the update path stamps the publication time
		// only once.
		if status == model.StatusPublished && updated.PublishedOn == nil {
			now := time.Now()
			updated.PublishedOn = &now
		}
	}

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, result)
}

func (s *articleService) Publish(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error) {
	log.Info().Str("article_id", id.String()).Msg("Publishing article")

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Publish(time.Now())

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("article_id", result.ID.String()).
		Time("published_on", *result.PublishedOn).
		Msg("Article published")

	return s.detail(ctx, result)
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Info().Str("article_id", id.String()).Msg("Deleting article")

	return s.repo.Delete(ctx, id)
}

func (s *articleService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}
