package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/shared/apperrors"
	"blog-backend/internal/shared/pagination"
)

// MockCommentRepository mocks the comment RepositoryInterface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByArticle(ctx context.Context, filter model.CommentFilter) ([]model.Comment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*model.Comment, error) {
	args := m.Called(ctx, id, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockArticleLookup mocks ArticleLookup
type MockArticleLookup struct {
	mock.Mock
}

func (m *MockArticleLookup) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func testComment(articleID uuid.UUID, approved bool) *model.Comment {
	return &model.Comment{
		ID:          uuid.New(),
		ArticleID:   articleID,
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "Great post, thanks!",
		Approved:    approved,
		CreatedOn:   time.Now(),
	}
}

func TestCommentCreateStartsUnapproved(t *testing.T) {
	repo := new(MockCommentRepository)
	articles := new(MockArticleLookup)
	svc := NewCommentService(repo, articles)

	articleID := uuid.New()
	articles.On("ExistsByID", mock.Anything, articleID).Return(true, nil)

	var captured *model.Comment
	created := testComment(articleID, false)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Comment) }).
		Return(created, nil)

	resp, err := svc.Create(context.Background(), articleID, &model.CreateCommentRequest{
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "Great post, thanks!",
	})

	assert.NoError(t, err)
	assert.False(t, captured.Approved, "new comments must await moderation")
	assert.Equal(t, articleID, captured.ArticleID)
	assert.False(t, resp.Approved)
}

func TestCommentCreateMissingArticle(t *testing.T) {
	repo := new(MockCommentRepository)
	articles := new(MockArticleLookup)
	svc := NewCommentService(repo, articles)

	articleID := uuid.New()
	articles.On("ExistsByID", mock.Anything, articleID).Return(false, nil)

	resp, err := svc.Create(context.Background(), articleID, &model.CreateCommentRequest{
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "Great post, thanks!",
	})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentApprove(t *testing.T) {
	repo := new(MockCommentRepository)
	svc := NewCommentService(repo, new(MockArticleLookup))

	pending := testComment(uuid.New(), false)
	approved := *pending
	approved.Approved = true

	repo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	repo.On("SetApproved", mock.Anything, pending.ID, true).Return(&approved, nil)

	resp, err := svc.Approve(context.Background(), pending.ID)

	assert.NoError(t, err)
	assert.True(t, resp.Approved)
}

func TestCommentApproveIdempotent(t *testing.T) {
	repo := new(MockCommentRepository)
	svc := NewCommentService(repo, new(MockArticleLookup))

	already := testComment(uuid.New(), true)
	repo.On("GetByID", mock.Anything, already.ID).Return(already, nil)

	resp, err := svc.Approve(context.Background(), already.ID)

	assert.NoError(t, err)
	assert.True(t, resp.Approved)
	repo.AssertNotCalled(t, "SetApproved", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentListApprovedFiltersAndChecksArticle(t *testing.T) {
	repo := new(MockCommentRepository)
	articles := new(MockArticleLookup)
	svc := NewCommentService(repo, articles)

	articleID := uuid.New()
	articles.On("ExistsByID", mock.Anything, articleID).Return(true, nil)
	repo.On("GetByArticle", mock.Anything, mock.MatchedBy(func(f model.CommentFilter) bool {
		return f.ArticleID == articleID && f.ApprovedOnly
	})).Return([]model.Comment{*testComment(articleID, true)}, int64(1), nil)

	page, err := svc.ListApprovedByArticle(context.Background(), articleID, pagination.Params{})

	assert.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.True(t, page.Content[0].Approved)
}

func TestCommentListByArticleMissingArticle(t *testing.T) {
	repo := new(MockCommentRepository)
	articles := new(MockArticleLookup)
	svc := NewCommentService(repo, articles)

	articleID := uuid.New()
	articles.On("ExistsByID", mock.Anything, articleID).Return(false, nil)

	page, err := svc.ListByArticle(context.Background(), articleID, pagination.Params{})

	assert.Nil(t, page)
	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertNotCalled(t, "GetByArticle", mock.Anything, mock.Anything)
}

func TestCommentDelete(t *testing.T) {
	repo := new(MockCommentRepository)
	svc := NewCommentService(repo, new(MockArticleLookup))

	existing := testComment(uuid.New(), false)
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Delete", mock.Anything, existing.ID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), existing.ID))
	repo.AssertExpectations(t)
}

func TestCommentDeleteMissing(t *testing.T) {
	repo := new(MockCommentRepository)
	svc := NewCommentService(repo, new(MockArticleLookup))

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, model.NewNotFound("id", id))

	err := svc.Delete(context.Background(), id)

	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
