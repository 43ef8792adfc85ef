package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/domains/author/repository"
	"blog-backend/internal/shared/apperrors"
	"blog-backend/internal/shared/pagination"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

// allowedSortColumns whitelists sortable author fields. Anything else is
// rejected before it reaches the query layer.
var allowedSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
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

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.AuthorResponse, error) {
	log.Info().Str("email", req.Email).Msg("Creating author")

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.NewDuplicateEmail(req.Email)
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().Str("author_id", created.ID.String()).Msg("Author created")
	return created.ToResponse(), nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

func (s *authorService) List(ctx context.Context, params pagination.Params) (*pagination.PageResponse[model.AuthorResponse], error) {
	params.Normalize()

	column, direction, err := resolveSort(params)
	if err != nil {
		return nil, err
	}

	authors, total, err := s.repo.GetAll(ctx, model.AuthorFilter{
		SortBy:  column,
		SortDir: direction,
		Limit:   params.Size,
		Offset:  params.Offset(),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]model.AuthorResponse, 0, len(authors))
	for i := range authors {
		responses = append(responses, *authors[i].ToResponse())
	}

	return pagination.NewPageResponse(responses, params.Page, params.Size, total), nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error) {
	log.Info().Str("author_id", id.String()).Msg("Updating author")

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A changed email must stay unique across all other authors.
	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.repo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.NewDuplicateEmail(*req.Email)
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

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Info().Str("author_id", id.String()).Msg("Deleting author")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	// Referential guard: refuse instead of cascading or nullifying.
	articleCount, err := s.repo.GetArticleCount(ctx, id)
	if err != nil {
		return err
	}
	if articleCount > 0 {
		return model.ErrAuthorHasArticles
	}

	return s.repo.Delete(ctx, id)
}

func (s *authorService) GetEntityByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}
