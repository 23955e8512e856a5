package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-engagement/internal/domain"
)

// PostgresLikeRepository implements LikeRepository using PostgreSQL.
//
// The current state lives in article_likes (one row per liking device) and
// every toggle is appended to like_events. likes_count on the article is kept
// equal to the number of article_likes rows.
type PostgresLikeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository.
func NewPostgresLikeRepository(pool *pgxpool.Pool) *PostgresLikeRepository {
	return &PostgresLikeRepository{pool: pool}
}

// Toggle flips the like of deviceID on the article and returns the new state.
func (r *PostgresLikeRepository) Toggle(ctx context.Context, articleID, deviceID string) (domain.LikeResult, error) {
	var result domain.LikeResult

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the article row so concurrent toggles on it run one after another.
	var locked string
	err = tx.QueryRow(ctx, `SELECT id FROM articles WHERE id = $1 FOR UPDATE`, articleID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return result, domain.ErrArticleNotFound
	}
	if err != nil {
		return result, fmt.Errorf("lock article: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM article_likes WHERE article_id = $1 AND device_id = $2`, articleID, deviceID)
	if err != nil {
		return result, fmt.Errorf("delete like: %w", err)
	}

	delta := -1
	if tag.RowsAffected() == 0 {
		result.Liked = true
		delta = 1
		if _, err := tx.Exec(ctx, `
			INSERT INTO article_likes (article_id, device_id, created_at)
			VALUES ($1, $2, NOW())
		`, articleID, deviceID); err != nil {
			return result, fmt.Errorf("insert like: %w", err)
		}
	}

	err = tx.QueryRow(ctx, `
		UPDATE articles
		SET likes_count = GREATEST(likes_count + $2, 0), updated_at = NOW()
		WHERE id = $1
		RETURNING likes_count
	`, articleID, delta).Scan(&result.LikesCount)
	if err != nil {
		return result, fmt.Errorf("update likes count: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO like_events (article_id, device_id, liked, created_at)
		VALUES ($1, $2, $3, NOW())
	`, articleID, deviceID, result.Liked); err != nil {
		return result, fmt.Errorf("append like event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.LikeResult{}, fmt.Errorf("commit like toggle: %w", err)
	}

	return result, nil
}

// IsLiked reports whether deviceID currently likes the article.
func (r *PostgresLikeRepository) IsLiked(ctx context.Context, articleID, deviceID string) (bool, error) {
	var liked bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM article_likes WHERE article_id = $1 AND device_id = $2)
	`, articleID, deviceID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return liked, nil
}
