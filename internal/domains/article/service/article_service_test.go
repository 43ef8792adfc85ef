package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-backend/internal/domains/article/model"
	authormodel "blog-backend/internal/domains/author/model"
	categorymodel "blog-backend/internal/domains/category/model"
	"blog-backend/internal/shared/apperrors"
	"blog-backend/internal/shared/pagination"
)

// MockArticleRepository mocks the article RepositoryInterface
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) (*model.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) GetComments(ctx context.Context, articleID uuid.UUID) ([]model.CommentSummary, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentSummary), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context, filter model.ArticleFilter) ([]model.ArticleListItem, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.ArticleListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *model.Article) (*model.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

// MockAuthorLookup mocks AuthorLookup
type MockAuthorLookup struct {
	mock.Mock
}

func (m *MockAuthorLookup) GetEntityByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authormodel.Author), args.Error(1)
}

// MockCategoryLookup mocks CategoryLookup
type MockCategoryLookup struct {
	mock.Mock
}

func (m *MockCategoryLookup) GetEntityByID(ctx context.Context, id uuid.UUID) (*categorymodel.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*categorymodel.Category), args.Error(1)
}

type articleFixture struct {
	repo       *MockArticleRepository
	authors    *MockAuthorLookup
	categories *MockCategoryLookup
	svc        ServiceInterface
	author     *authormodel.Author
	category   *categorymodel.Category
}

func newArticleFixture() *articleFixture {
	f := &articleFixture{
		repo:       new(MockArticleRepository),
		authors:    new(MockAuthorLookup),
		categories: new(MockCategoryLookup),
		author: &authormodel.Author{
			ID:    uuid.New(),
			Name:  "Jane Writer",
			Email: "jane@example.com",
		},
		category: &categorymodel.Category{
			ID:   uuid.New(),
			Name: "Engineering",
		},
	}
	f.svc = NewArticleService(f.repo, f.authors, f.categories)
	return f
}

func (f *articleFixture) article() *model.Article {
	return &model.Article{
		ID:         uuid.New(),
		Title:      "Hello World",
		Slug:       "hello-world",
		Content:    "This is the article body.",
		Status:     model.StatusDraft,
		AuthorID:   f.author.ID,
		CategoryID: f.category.ID,
		CreatedOn:  time.Now(),
		UpdatedOn:  time.Now(),
	}
}

func TestArticleCreateGeneratesSlugAndDraft(t *testing.T) {
	f := newArticleFixture()

	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).Return(f.author, nil)
	f.categories.On("GetEntityByID", mock.Anything, f.category.ID).Return(f.category, nil)
	f.repo.On("ExistsBySlug", mock.Anything, "hello-world").Return(false, nil)

	var captured *model.Article
	created := f.article()
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Article) }).
		Return(created, nil)

	resp, err := f.svc.Create(context.Background(), &model.CreateArticleRequest{
		Title:      "Hello World",
		Content:    "This is the article body.",
		AuthorID:   f.author.ID,
		CategoryID: f.category.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "hello-world", captured.Slug)
	assert.Equal(t, model.StatusDraft, captured.Status)
	assert.Equal(t, 0, captured.ViewCount)
	assert.Nil(t, captured.PublishedOn)
	assert.Equal(t, f.author.Name, resp.Author.Name)
	assert.Equal(t, f.category.Name, resp.Category.Name)
}

func TestArticleCreateRejectsDuplicateSlug(t *testing.T) {
	f := newArticleFixture()

	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).Return(f.author, nil)
	f.categories.On("GetEntityByID", mock.Anything, f.category.ID).Return(f.category, nil)
	// "Hello   World!!" normalizes to the same slug as "Hello World".
	f.repo.On("ExistsBySlug", mock.Anything, "hello-world").Return(true, nil)

	resp, err := f.svc.Create(context.Background(), &model.CreateArticleRequest{
		Title:      "Hello   World!!",
		Content:    "This is the article body.",
		AuthorID:   f.author.ID,
		CategoryID: f.category.ID,
	})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsDuplicate(err))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestArticleCreateMissingAuthorPropagates(t *testing.T) {
	f := newArticleFixture()

	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).
		Return(nil, authormodel.NewNotFound("id", f.author.ID))

	resp, err := f.svc.Create(context.Background(), &model.CreateArticleRequest{
		Title:      "Hello World",
		Content:    "This is the article body.",
		AuthorID:   f.author.ID,
		CategoryID: f.category.ID,
	})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
	f.repo.AssertNotCalled(t, "ExistsBySlug", mock.Anything, mock.Anything)
}

func TestArticlePublishAlwaysRestamps(t *testing.T) {
	f := newArticleFixture()

	earlier := time.Now().Add(-24 * time.Hour)
	current := f.article()
	current.Status = model.StatusPublished
	current.PublishedOn = &earlier

	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)

	var captured *model.Article
	f.repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Article) }).
		Return(current, nil)
	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).Return(f.author, nil)
	f.categories.On("GetEntityByID", mock.Anything, f.category.ID).Return(f.category, nil)
	f.repo.On("GetComments", mock.Anything, current.ID).Return([]model.CommentSummary{}, nil)

	_, err := f.svc.Publish(context.Background(), current.ID)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPublished, captured.Status)
	assert.True(t, captured.PublishedOn.After(earlier), "publish must restamp an existing timestamp")
}

func TestArticleUpdatePublishStampsOnlyOnce(t *testing.T) {
	f := newArticleFixture()

	current := f.article()
	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)

	var captured *model.Article
	f.repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Article) }).
		Return(current, nil)
	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).Return(f.author, nil)
	f.categories.On("GetEntityByID", mock.Anything, f.category.ID).Return(f.category, nil)
	f.repo.On("GetComments", mock.Anything, current.ID).Return([]model.CommentSummary{}, nil)

	status := string(model.StatusPublished)
	_, err := f.svc.Update(context.Background(), current.ID, &model.UpdateArticleRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPublished, captured.Status)
	assert.NotNil(t, captured.PublishedOn)
}

func TestArticleUpdatePublishKeepsExistingTimestamp(t *testing.T) {
	f := newArticleFixture()

	earlier := time.Now().Add(-24 * time.Hour)
	current := f.article()
	current.Status = model.StatusPublished
	current.PublishedOn = &earlier

	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)

	var captured *model.Article
	f.repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Article) }).
		Return(current, nil)
	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).Return(f.author, nil)
	f.categories.On("GetEntityByID", mock.Anything, f.category.ID).Return(f.category, nil)
	f.repo.On("GetComments", mock.Anything, current.ID).Return([]model.CommentSummary{}, nil)

	status := string(model.StatusPublished)
	_, err := f.svc.Update(context.Background(), current.ID, &model.UpdateArticleRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, earlier, *captured.PublishedOn, "update must not restamp a published article")
}

func TestArticleUpdateTitleRegeneratesSlug(t *testing.T) {
	f := newArticleFixture()

	current := f.article()
	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)
	f.repo.On("ExistsBySlug", mock.Anything, "fresh-title").Return(false, nil)

	var captured *model.Article
	f.repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Article) }).
		Return(current, nil)
	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).Return(f.author, nil)
	f.categories.On("GetEntityByID", mock.Anything, f.category.ID).Return(f.category, nil)
	f.repo.On("GetComments", mock.Anything, current.ID).Return([]model.CommentSummary{}, nil)

	title := "Fresh Title"
	_, err := f.svc.Update(context.Background(), current.ID, &model.UpdateArticleRequest{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "fresh-title", captured.Slug)
}

func TestArticleUpdateTitleCollidingSlugRejected(t *testing.T) {
	f := newArticleFixture()

	current := f.article()
	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)
	f.repo.On("ExistsBySlug", mock.Anything, "taken-title").Return(true, nil)

	title := "Taken Title"
	resp, err := f.svc.Update(context.Background(), current.ID, &model.UpdateArticleRequest{Title: &title})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsDuplicate(err))
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestArticleUpdateSameSlugSkipsUniquenessCheck(t *testing.T) {
	f := newArticleFixture()

	current := f.article()
	f.repo.On("GetByID", mock.Anything, current.ID).Return(current, nil)

	f.repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(current, nil)
	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).Return(f.author, nil)
	f.categories.On("GetEntityByID", mock.Anything, f.category.ID).Return(f.category, nil)
	f.repo.On("GetComments", mock.Anything, current.ID).Return([]model.CommentSummary{}, nil)

	// Normalizes to the article's own current slug.
	title := "Hello   World!!"
	_, err := f.svc.Update(context.Background(), current.ID, &model.UpdateArticleRequest{Title: &title})

	assert.NoError(t, err)
	f.repo.AssertNotCalled(t, "ExistsBySlug", mock.Anything, mock.Anything)
}

func TestArticleListByAuthorRequiresAuthor(t *testing.T) {
	f := newArticleFixture()

	f.authors.On("GetEntityByID", mock.Anything, f.author.ID).
		Return(nil, authormodel.NewNotFound("id", f.author.ID))

	page, err := f.svc.ListByAuthor(context.Background(), f.author.ID, pagination.Params{})

	assert.Nil(t, page)
	assert.True(t, apperrors.IsNotFound(err))
	f.repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestArticleListRejectsUnknownSortField(t *testing.T) {
	f := newArticleFixture()

	_, err := f.svc.List(context.Background(), pagination.Params{SortBy: "slug"})

	assert.True(t, apperrors.IsBadRequest(err))
	f.repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestArticleSearchFiltersByKeyword(t *testing.T) {
	f := newArticleFixture()

	f.repo.On("List", mock.Anything, mock.MatchedBy(func(filter model.ArticleFilter) bool {
		return filter.Keyword == "golang" && filter.SortBy == "created_on" && filter.SortDir == "DESC"
	})).Return([]model.ArticleListItem{}, int64(0), nil)

	page, err := f.svc.Search(context.Background(), "golang", pagination.Params{})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}

func TestArticleIncrementViewCountDelegates(t *testing.T) {
	f := newArticleFixture()

	id := uuid.New()
	f.repo.On("IncrementViewCount", mock.Anything, id).Return(nil)

	assert.NoError(t, f.svc.IncrementViewCount(context.Background(), id))
	f.repo.AssertExpectations(t)
}
