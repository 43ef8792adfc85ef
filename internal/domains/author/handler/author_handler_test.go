package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/shared/pagination"
)

// MockAuthorService mocks the author ServiceInterface
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.AuthorResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthorResponse), args.Error(1)
}

func (m *MockAuthorService) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthorResponse), args.Error(1)
}

func (m *MockAuthorService) List(ctx context.Context, params pagination.Params) (*pagination.PageResponse[model.AuthorResponse], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.PageResponse[model.AuthorResponse]), args.Error(1)
}

func (m *MockAuthorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthorResponse), args.Error(1)
}

func (m *MockAuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAuthorService) GetEntityByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCreateAuthor_Success(t *testing.T) {
	mockService := new(MockAuthorService)
	handler := NewAuthorHandler(mockService)
	router := setupRouter()
	router.POST("/authors", handler.Create)

	resp := &model.AuthorResponse{
		ID:        uuid.New(),
		Name:      "Jane Writer",
		Email:     "jane@example.com",
		CreatedOn: time.Now(),
	}
	mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateAuthorRequest")).Return(resp, nil)

	body, _ := json.Marshal(model.CreateAuthorRequest{
		Name:  "Jane Writer",
		Email: "jane@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/authors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateAuthor_InvalidEmail(t *testing.T) {
	mockService := new(MockAuthorService)
	handler := NewAuthorHandler(mockService)
	router := setupRouter()
	router.POST("/authors", handler.Create)

	body, _ := json.Marshal(model.CreateAuthorRequest{
		Name:  "Jane Writer",
		Email: "not-an-email",
	})
	req := httptest.NewRequest(http.MethodPost, "/authors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// Validation failures flow through the shared error mapping and
	// carry the per-field messages as details.
	var payload struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "VALIDATION_FAILED", payload.Error.Code)
	assert.Equal(t, "invalid email format", payload.Error.Details["email"])
}

func TestGetAuthor_InvalidID(t *testing.T) {
	mockService := new(MockAuthorService)
	handler := NewAuthorHandler(mockService)
	router := setupRouter()
	router.GET("/authors/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/authors/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetAuthor_NotFound(t *testing.T) {
	mockService := new(MockAuthorService)
	handler := NewAuthorHandler(mockService)
	router := setupRouter()
	router.GET("/authors/:id", handler.GetByID)

	id := uuid.New()
	mockService.On("GetByID", mock.Anything, id).Return(nil, model.NewNotFound("id", id))

	req := httptest.NewRequest(http.MethodGet, "/authors/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
}

func TestDeleteAuthor_Conflict(t *testing.T) {
	mockService := new(MockAuthorService)
	handler := NewAuthorHandler(mockService)
	router := setupRouter()
	router.DELETE("/authors/:id", handler.Delete)

	id := uuid.New()
	mockService.On("Delete", mock.Anything, id).Return(model.ErrAuthorHasArticles)

	req := httptest.NewRequest(http.MethodDelete, "/authors/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAuthors_PassesQueryParams(t *testing.T) {
	mockService := new(MockAuthorService)
	handler := NewAuthorHandler(mockService)
	router := setupRouter()
	router.GET("/authors", handler.List)

	page := pagination.NewPageResponse([]model.AuthorResponse{}, 2, 5, 0)
	mockService.On("List", mock.Anything, pagination.Params{
		Page:    2,
		Size:    5,
		SortBy:  "name",
		SortDir: "asc",
	}).Return(page, nil)

	req := httptest.NewRequest(http.MethodGet, "/authors?page=2&size=5&sort_by=name&sort_dir=asc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
