package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"

	articleHandler "blog-backend/internal/domains/article/handler"
	articleRepo "blog-backend/internal/domains/article/repository"
	articleService "blog-backend/internal/domains/article/service"
	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"
	categoryHandler "blog-backend/internal/domains/category/handler"
	categoryRepo "blog-backend/internal/domains/category/repository"
	categoryService "blog-backend/internal/domains/category/service"
	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
)

// Container holds every dependency of the application and is the root
// of the dependency graph. All members are singletons for the app
// lifetime.
type Container struct {
	// Infrastructure, shared across all domains
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Repositories
	AuthorRepo   authorRepo.RepositoryInterface
	CategoryRepo categoryRepo.RepositoryInterface
	ArticleRepo  articleRepo.RepositoryInterface
	CommentRepo  commentRepo.RepositoryInterface

	// Services
	AuthorService   authorService.ServiceInterface
	CategoryService categoryService.ServiceInterface
	ArticleService  articleService.ServiceInterface
	CommentService  commentService.ServiceInterface

	// HTTP handlers
	AuthorHandler   *authorHandler.AuthorHandler
	CategoryHandler *categoryHandler.CategoryHandler
	ArticleHandler  *articleHandler.ArticleHandler
	CommentHandler  *commentHandler.CommentHandler
}

// NewContainer builds the full dependency graph in order: config,
// infrastructure, repositories, services, handlers. Any failure aborts
// startup.
func NewContainer() (*Container, error) {
	log.Info().Msg("🔧 Initializing DI container")

	c := &Container{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("✅ Config loaded")

	// 2. Database
	dbConfig, err := cfg.DBConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Info().Msg("✅ Database connected")

	// 3. Cache. A Redis outage is not fatal: repositories fall through
	// to Postgres on cache errors.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("⚠️ Redis unavailable, continuing without cache hits")
	} else {
		log.Info().Msg("✅ Redis connected")
	}
	c.Cache = redisCache

	// 4. Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ArticleRepo = articleRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.CommentRepo = commentRepo.NewPostgresRepository(db.Pool)

	// 5. Services. The article service resolves authors and categories
	// through their services; the comment service checks articles the
	// same way.
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.AuthorService, c.CategoryService)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ArticleService)

	// 6. Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)

	log.Info().Msg("🎉 DI container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources. Called on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources")

	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}
