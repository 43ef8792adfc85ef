package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/category/model"
	"blog-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	categoryCacheKeyPrefix = "category:"
	cacheTTL               = 15 * time.Minute
)

func (r *postgresRepository) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	query := `
        INSERT INTO categories (name, description)
        VALUES ($1, $2)
        RETURNING id, name, description, created_on
    `

	var created model.Category
	err := r.pool.QueryRow(ctx, query, c.Name, c.Description).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.CreatedOn,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "name") {
			return nil, model.NewDuplicateName(c.Name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	cacheKey := categoryCacheKeyPrefix + id.String()

	var c model.Category
	if found, err := r.cache.Get(ctx, cacheKey, &c); err == nil && found {
		return &c, nil
	}

	query := `
        SELECT id, name, description, created_on
        FROM categories
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.CreatedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound("id", id)
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &c, cacheTTL)

	return &c, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter model.CategoryFilter) ([]model.Category, int64, error) {
	query := fmt.Sprintf(`
        SELECT id, name, description, created_on
        FROM categories
        ORDER BY %s %s
        LIMIT $1 OFFSET $2
    `, filter.SortBy, filter.SortDir)

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedOn); err != nil {
			return nil, 0, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating categories: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return categories, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	query := `
        UPDATE categories
        SET name = $1, description = $2
        WHERE id = $3
        RETURNING id, name, description, created_on
    `

	var updated model.Category
	err := r.pool.QueryRow(ctx, query, c.Name, c.Description, c.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.CreatedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound("id", c.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "name") {
			return nil, model.NewDuplicateName(c.Name)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	_ = r.cache.Delete(ctx, categoryCacheKeyPrefix+c.ID.String())

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrCategoryHasArticles
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.NewNotFound("id", id)
	}

	_ = r.cache.Delete(ctx, categoryCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetArticleCount(ctx context.Context, categoryID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count category articles: %w", err)
	}
	return count, nil
}
