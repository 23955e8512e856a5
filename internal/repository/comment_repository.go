package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/logger"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts the comment and bumps the article's comments_count. Both
// writes commit together or not at all.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context cancelled: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// The UPDATE takes the article row lock, serializing concurrent posts.
	var count int64
	err = tx.QueryRow(ctx, `
		UPDATE articles
		SET comments_count = comments_count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING comments_count
	`, comment.ArticleID).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrArticleNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment comments count: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO comments (id, article_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, clock_timestamp())
		RETURNING created_at
	`, comment.ID, comment.ArticleID, comment.UserID, comment.Text).Scan(&comment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit comment: %w", err)
	}

	return count, nil
}

// ListByArticle returns all comments of an article, newest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, article_id, user_id, text, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, id DESC
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.Text, &c.CreatedAt); err != nil {
			logger.Default().Error("Failed to scan comment row",
				slog.String("repository", "comment"),
				slog.String("article_id", articleID),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
