package repository

import (
	"context"

	"blog-engagement/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	// GetByID returns nil without an error when the article does not exist.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Article, error)
	List(ctx context.Context, query domain.ArticleQuery) ([]domain.Article, error)
	TopByLikes(ctx context.Context, limit int) ([]domain.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	// IncrementShares atomically adds one share and returns the updated article.
	IncrementShares(ctx context.Context, id string) (*domain.Article, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	// Create stores the comment and increments the article's comments_count in
	// the same transaction, returning the new count.
	Create(ctx context.Context, comment *domain.Comment) (int64, error)
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
}

// LikeRepository defines methods for like data access.
type LikeRepository interface {
	Toggle(ctx context.Context, articleID, deviceID string) (domain.LikeResult, error)
	IsLiked(ctx context.Context, articleID, deviceID string) (bool, error)
}
