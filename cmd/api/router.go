package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupArticleRoutes(v1, c)
		setupCommentRoutes(v1, c)
	}

	return router
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.POST("", c.CategoryHandler.Create)
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	{
		articles.POST("", c.ArticleHandler.Create)
		articles.GET("", c.ArticleHandler.List)
		articles.GET("/search", c.ArticleHandler.Search)
		articles.GET("/slug/:slug", c.ArticleHandler.GetBySlug)
		articles.GET("/status/:status", c.ArticleHandler.ListByStatus)
		articles.GET("/author/:authorId", c.ArticleHandler.ListByAuthor)
		articles.GET("/category/:categoryId", c.ArticleHandler.ListByCategory)
		articles.GET("/:id", c.ArticleHandler.GetByID)
		articles.PUT("/:id", c.ArticleHandler.Update)
		articles.DELETE("/:id", c.ArticleHandler.Delete)
		articles.POST("/:id/publish", c.ArticleHandler.Publish)
		articles.POST("/:id/view", c.ArticleHandler.IncrementViewCount)

		// Comments live under their article
		articles.POST("/:id/comments", c.CommentHandler.Create)
		articles.GET("/:id/comments", c.CommentHandler.ListByArticle)
		articles.GET("/:id/comments/approved", c.CommentHandler.ListApprovedByArticle)
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	{
		comments.GET("/:id", c.CommentHandler.GetByID)
		comments.POST("/:id/approve", c.CommentHandler.Approve)
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}
}

// healthCheckHandler reports liveness of the service and its backing
// stores.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"app":      c.Config.App.Name,
			"version":  c.Config.App.Version,
			"time":     time.Now().UTC(),
		})
	}
}
