package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/article/service"
	"blog-backend/internal/shared/pagination"
	"blog-backend/internal/shared/response"
)

type ArticleHandler struct {
	articleService service.ServiceInterface
}

func NewArticleHandler(articleService service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Create creates a new draft article
// POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.articleService.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, resp)
}

// GetByID returns the article detail view
// GET /api/v1/articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	resp, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetBySlug returns the article detail view, looked up by slug
// GET /api/v1/articles/slug/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	resp, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// IncrementViewCount bumps the view counter by one
// POST /api/v1/articles/:id/view
func (h *ArticleHandler) IncrementViewCount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.articleService.IncrementViewCount(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

// List returns a sorted page of articles
// GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.articleService.List(c.Request.Context(), params)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// ListByStatus returns a page of articles with the given status
// GET /api/v1/articles/status/:status
func (h *ArticleHandler) ListByStatus(c *gin.Context) {
	status, err := model.ParseStatus(c.Param("status"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.articleService.ListByStatus(c.Request.Context(), status, params)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// ListByAuthor returns a page of the author's articles
// GET /api/v1/articles/author/:authorId
func (h *ArticleHandler) ListByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("authorId"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.articleService.ListByAuthor(c.Request.Context(), authorID, params)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// ListByCategory returns a page of the category's articles
// GET /api/v1/articles/category/:categoryId
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.articleService.ListByCategory(c.Request.Context(), categoryID, params)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Search returns a page of articles matching the keyword
// GET /api/v1/articles/search?q=keyword
func (h *ArticleHandler) Search(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		response.BadRequest(c, "search keyword is required")
		return
	}

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	page, err := h.articleService.Search(c.Request.Context(), keyword, params)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Update partially updates an article
// PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.articleService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Publish publishes an article and stamps the publication time
// POST /api/v1/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	resp, err := h.articleService.Publish(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete removes an article and its comments
// DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}
