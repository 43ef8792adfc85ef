package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	articlemodel "blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/repository"
	"blog-backend/internal/shared/pagination"
)

// ArticleLookup is the slice of the article service the comment service
// needs: checking that the commented article exists.
type ArticleLookup interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type commentService struct {
	repo     repository.RepositoryInterface
	articles ArticleLookup
}

func NewCommentService(repo repository.RepositoryInterface, articles ArticleLookup) ServiceInterface {
	return &commentService{
		repo:     repo,
		articles: articles,
	}
}

func (s *commentService) requireArticle(ctx context.Context, articleID uuid.UUID) error {
	exists, err := s.articles.ExistsByID(ctx, articleID)
	if err != nil {
		return err
	}
	if !exists {
		return articlemodel.NewNotFound("id", articleID)
	}
	return nil
}

func (s *commentService) Create(ctx context.Context, articleID uuid.UUID, req *model.CreateCommentRequest) (*model.CommentResponse, error) {
	log.Info().Str("article_id", articleID.String()).Msg("Creating comment")

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity(articleID))
	if err != nil {
		return nil, err
	}

	log.Info().Str("comment_id", created.ID.String()).Msg("Comment created, awaiting moderation")
	return created.ToResponse(), nil
}

func (s *commentService) GetByID(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.ToResponse(), nil
}

func (s *commentService) listByArticle(ctx context.Context, articleID uuid.UUID, approvedOnly bool, params pagination.Params) (*pagination.PageResponse[model.CommentResponse], error) {
	params.Normalize()

	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	comments, total, err := s.repo.GetByArticle(ctx, model.CommentFilter{
		ArticleID:    articleID,
		ApprovedOnly: approvedOnly,
		Limit:        params.Size,
		Offset:       params.Offset(),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]model.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *comments[i].ToResponse())
	}

	return pagination.NewPageResponse(responses, params.Page, params.Size, total), nil
}

func (s *commentService) ListByArticle(ctx context.Context, articleID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.CommentResponse], error) {
	return s.listByArticle(ctx, articleID, false, params)
}

func (s *commentService) ListApprovedByArticle(ctx context.Context, articleID uuid.UUID, params pagination.Params) (*pagination.PageResponse[model.CommentResponse], error) {
	return s.listByArticle(ctx, articleID, true, params)
}

func (s *commentService) Approve(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error) {
	log.Info().Str("comment_id", id.String()).Msg("Approving comment")

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Re-approving is a no-op success.
	if current.Approved {
		return current.ToResponse(), nil
	}

	updated, err := s.repo.SetApproved(ctx, id, true)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Info().Str("comment_id", id.String()).Msg("Deleting comment")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
