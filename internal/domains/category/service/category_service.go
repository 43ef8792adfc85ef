package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/category/model"
	"blog-backend/internal/domains/category/repository"
	"blog-backend/internal/shared/apperrors"
	"blog-backend/internal/shared/pagination"
)

type categoryService struct {
	repo repository.RepositoryInterface
}

func NewCategoryService(repo repository.RepositoryInterface) ServiceInterface {
	return &categoryService{repo: repo}
}

var allowedSortColumns = map[string]string{
	"name":       "name",
	"created_on": "created_on",
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

func (s *categoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	log.Info().Str("name", req.Name).Msg("Creating category")

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.NewDuplicateName(req.Name)
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().Str("category_id", created.ID.String()).Str("name", created.Name).Msg("Category created")
	return created.ToResponse(), nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.CategoryResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.ToResponse(), nil
}

func (s *categoryService) List(ctx context.Context, params pagination.Params) (*pagination.PageResponse[model.CategoryResponse], error) {
	params.Normalize()

	column, direction, err := resolveSort(params)
	if err != nil {
		return nil, err
	}

	categories, total, err := s.repo.GetAll(ctx, model.CategoryFilter{
		SortBy:  column,
		SortDir: direction,
		Limit:   params.Size,
		Offset:  params.Offset(),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]model.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *categories[i].ToResponse())
	}

	return pagination.NewPageResponse(responses, params.Page, params.Size, total), nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	log.Info().Str("category_id", id.String()).Msg("Updating category")

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.repo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.NewDuplicateName(*req.Name)
		}
	}

	updated := *current
	req.ApplyToEntity(&updated)

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	return result.ToResponse(), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Info().Str("category_id", id.String()).Msg("Deleting category")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	articleCount, err := s.repo.GetArticleCount(ctx, id)
	if err != nil {
		return err
	}
	if articleCount > 0 {
		return model.ErrCategoryHasArticles
	}

	return s.repo.Delete(ctx, id)
}

func (s *categoryService) GetEntityByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}
