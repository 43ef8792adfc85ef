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

	"blog-backend/internal/domains/article/model"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool with a
// Redis read-through cache for single-article lookups (by id and by
// slug, separate keys).
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
	articleCacheKeyPrefix     = "article:"
	articleSlugCacheKeyPrefix = "article:slug:"
	cacheTTL                  = 15 * time.Minute
)

const articleColumns = `id, title, slug, content, excerpt, status, author_id, category_id, view_count, published_on, created_on, updated_on`

func scanArticle(row pgx.Row, a *model.Article) error {
	return row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.Content,
		&a.Excerpt,
		&a.Status,
		&a.AuthorID,
		&a.CategoryID,
		&a.ViewCount,
		&a.PublishedOn,
		&a.CreatedOn,
		&a.UpdatedOn,
	)
}

func (r *postgresRepository) invalidate(ctx context.Context, a *model.Article) {
	_ = r.cache.Delete(ctx,
		articleCacheKeyPrefix+a.ID.String(),
		articleSlugCacheKeyPrefix+a.Slug,
	)
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	query := `
        INSERT INTO articles (title, slug, content, excerpt, status, author_id, category_id, view_count, published_on)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + articleColumns

	var created model.Article
	err := scanArticle(r.pool.QueryRow(ctx, query,
		a.Title, a.Slug, a.Content, a.Excerpt, a.Status,
		a.AuthorID, a.CategoryID, a.ViewCount, a.PublishedOn,
	), &created)
	if err != nil {
		// The service checks first, but a concurrent create with the
		// same title can still trip the unique constraint.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "slug") {
			return nil, model.NewDuplicateSlug(a.Slug)
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	cacheKey := articleCacheKeyPrefix + id.String()

	var a model.Article
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	if err := scanArticle(r.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound("id", id)
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	cacheKey := articleSlugCacheKeyPrefix + slug

	var a model.Article
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`

	if err := scanArticle(r.pool.QueryRow(ctx, query, slug), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound("slug", slug)
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetComments(ctx context.Context, articleID uuid.UUID) ([]model.CommentSummary, error) {
	query := `
        SELECT id, author_name, content, approved, created_on
        FROM comments
        WHERE article_id = $1
        ORDER BY created_on ASC
    `

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query article comments: %w", err)
	}
	defer rows.Close()

	var comments []model.CommentSummary
	for rows.Next() {
		var c model.CommentSummary
		if err := rows.Scan(&c.ID, &c.AuthorName, &c.Content, &c.Approved, &c.CreatedOn); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// buildListWhere turns the filter into a WHERE clause plus its args.
func buildListWhere(filter model.ArticleFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		conditions = append(conditions, fmt.Sprintf("a.author_id = $%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("a.category_id = $%d", len(args)))
	}
	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(a.title ILIKE $%d OR a.content ILIKE $%d)", n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *postgresRepository) List(ctx context.Context, filter model.ArticleFilter) ([]model.ArticleListItem, int64, error) {
	where, args := buildListWhere(filter)

	// Sort column/direction are whitelisted by the service, safe to splice.
	query := fmt.Sprintf(`
        SELECT a.id, a.title, a.slug, a.excerpt, a.status,
               a.author_id, au.name AS author_name,
               a.category_id, c.name AS category_name,
               a.view_count,
               (SELECT COUNT(*) FROM comments cm WHERE cm.article_id = a.id) AS comment_count,
               a.published_on, a.created_on, a.updated_on
        FROM articles a
        JOIN authors au ON au.id = a.author_id
        JOIN categories c ON c.id = a.category_id
        %s
        ORDER BY a.%s %s
        LIMIT $%d OFFSET $%d
    `, where, filter.SortBy, filter.SortDir, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var items []model.ArticleListItem
	for rows.Next() {
		var i model.ArticleListItem
		err := rows.Scan(
			&i.ID, &i.Title, &i.Slug, &i.Excerpt, &i.Status,
			&i.AuthorID, &i.AuthorName,
			&i.CategoryID, &i.CategoryName,
			&i.ViewCount, &i.CommentCount,
			&i.PublishedOn, &i.CreatedOn, &i.UpdatedOn,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan article row: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating articles: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM articles a %s`, where)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return items, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Article) (*model.Article, error) {
	// The old slug may differ from the new one, drop both cache entries.
	old, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	query := `
        UPDATE articles
        SET title = $1, slug = $2, content = $3, excerpt = $4, status = $5,
            category_id = $6, published_on = $7, updated_on = NOW()
        WHERE id = $8
        RETURNING ` + articleColumns

	var updated model.Article
	err = scanArticle(r.pool.QueryRow(ctx, query,
		a.Title, a.Slug, a.Content, a.Excerpt, a.Status,
		a.CategoryID, a.PublishedOn, a.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound("id", a.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "slug") {
			return nil, model.NewDuplicateSlug(a.Slug)
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	r.invalidate(ctx, old)
	r.invalidate(ctx, &updated)

	return &updated, nil
}

func (r *postgresRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	// Single atomic statement, no read-modify-write: concurrent readers
	// never lose an increment. RETURNING gives us the slug so the
	// slug-keyed cache entry is dropped alongside the id-keyed one.
	var slug string
	err := r.pool.QueryRow(ctx,
		`UPDATE articles SET view_count = view_count + 1 WHERE id = $1 RETURNING slug`,
		id,
	).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewNotFound("id", id)
		}
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	_ = r.cache.Delete(ctx,
		articleCacheKeyPrefix+id.String(),
		articleSlugCacheKeyPrefix+slug,
	)

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Comments go with their article, atomically.
	err = database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete article comments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete article: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return model.NewNotFound("id", id)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, a)

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article slug: %w", err)
	}
	return exists, nil
}
