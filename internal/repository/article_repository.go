package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-engagement/internal/domain"
)

const uniqueViolation = "23505"

const articleColumns = `id, slug, title, content, meta_description, thumbnail_url, tags,
	likes_count, comments_count, shares_count, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article with zeroed counters.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, slug, title, content, meta_description, thumbnail_url, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING likes_count, comments_count, shares_count, created_at, updated_at
	`, article.ID, article.Slug, article.Title, article.Content, article.MetaDescription,
		article.ThumbnailURL, article.Tags).
		Scan(&article.LikesCount, &article.CommentsCount, &article.SharesCount, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return fmt.Errorf("slug %q already exists: %w", article.Slug, domain.ErrConflict)
			}
			return domain.ErrArticleExists
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retrieves an article by ID.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// GetByIDs retrieves the articles with the given IDs, preserving the order of ids.
// Unknown IDs are skipped.
func (r *PostgresArticleRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Article, error) {
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles a
		JOIN unnest($1::text[]) WITH ORDINALITY AS wanted(id, ord) USING (id)
		ORDER BY wanted.ord
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("query articles by ids: %w", err)
	}
	return collectArticles(rows)
}

// List returns articles newest-first. When a search term is set, articles whose
// title matches are ranked ahead of those matching only in the content.
func (r *PostgresArticleRepository) List(ctx context.Context, query domain.ArticleQuery) ([]domain.Article, error) {
	pattern := ""
	if term := strings.TrimSpace(query.Query); term != "" {
		pattern = "%" + escapeLike(term) + "%"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE $1 = '' OR title ILIKE $1 OR content ILIKE $1
		ORDER BY CASE WHEN $1 <> '' AND title ILIKE $1 THEN 0 ELSE 1 END,
			created_at DESC, id
		LIMIT $2 OFFSET $3
	`, pattern, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	return collectArticles(rows)
}

// TopByLikes returns the most liked articles.
func (r *PostgresArticleRepository) TopByLikes(ctx context.Context, limit int) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE likes_count > 0
		ORDER BY likes_count DESC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top articles: %w", err)
	}
	return collectArticles(rows)
}

// SlugExists reports whether an article already uses slug.
func (r *PostgresArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// IncrementShares adds one share to the article in a single atomic statement.
func (r *PostgresArticleRepository) IncrementShares(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET shares_count = shares_count + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING `+articleColumns, id)
	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("increment shares: %w", err)
	}
	return article, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	if err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Content, &a.MetaDescription, &a.ThumbnailURL, &a.Tags,
		&a.LikesCount, &a.CommentsCount, &a.SharesCount, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]domain.Article, error) {
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	return articles, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
