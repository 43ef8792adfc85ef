package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment/model"
)

// postgresRepository implements RepositoryInterface on pgxpool. Comments
// are not cached: they are written often, read through their article,
// and moderation needs to be visible immediately.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const commentColumns = `id, article_id, author_name, author_email, content, approved, created_on`

func scanComment(row pgx.Row, c *model.Comment) error {
	return row.Scan(
		&c.ID,
		&c.ArticleID,
		&c.AuthorName,
		&c.AuthorEmail,
		&c.Content,
		&c.Approved,
		&c.CreatedOn,
	)
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	query := `
        INSERT INTO comments (article_id, author_name, author_email, content, approved)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + commentColumns

	var created model.Comment
	err := scanComment(r.pool.QueryRow(ctx, query,
		c.ArticleID, c.AuthorName, c.AuthorEmail, c.Content, c.Approved,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	var c model.Comment
	if err := scanComment(r.pool.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound("id", id)
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) GetByArticle(ctx context.Context, filter model.CommentFilter) ([]model.Comment, int64, error) {
	where := `WHERE article_id = $1`
	if filter.ApprovedOnly {
		where += ` AND approved = TRUE`
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM comments
        %s
        ORDER BY created_on DESC
        LIMIT $2 OFFSET $3
    `, commentColumns, where)

	rows, err := r.pool.Query(ctx, query, filter.ArticleID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating comments: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM comments %s`, where)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, filter.ArticleID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return comments, total, nil
}

func (r *postgresRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*model.Comment, error) {
	query := `
        UPDATE comments
        SET approved = $1
        WHERE id = $2
        RETURNING ` + commentColumns

	var updated model.Comment
	if err := scanComment(r.pool.QueryRow(ctx, query, approved, id), &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound("id", id)
		}
		return nil, fmt.Errorf("failed to update comment approval: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.NewNotFound("id", id)
	}

	return nil
}
