package service

import (
	"context"

	"blog-engagement/internal/domain"
)

// EngagementServiceInterface defines the engagement operations on an article.
// Used for dependency injection and mocking in tests.
type EngagementServiceInterface interface {
	// ToggleLike flips the like of deviceID and returns the new state.
	ToggleLike(ctx context.Context, articleID, deviceID string) (domain.LikeResult, error)
	// LikeStatus returns the like state of deviceID without changing it.
	LikeStatus(ctx context.Context, articleID, deviceID string) (domain.LikeResult, error)
	// RecordShare counts one share and returns what a client needs to share the article.
	RecordShare(ctx context.Context, articleID, deviceID string) (*domain.ShareResult, error)
	// ListComments returns all comments of the article, newest first.
	ListComments(ctx context.Context, articleID string) ([]domain.Comment, error)
	// PostComment stores a comment and bumps the article's comments_count.
	PostComment(ctx context.Context, articleID string, input domain.NewComment) (*domain.Comment, error)
	// Counters returns the engagement counters, cache first.
	Counters(ctx context.Context, articleID string) (domain.Counters, error)
}

// ArticleServiceInterface defines the article catalogue operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// StoreArticle validates and stores a new article.
	StoreArticle(ctx context.Context, article *domain.Article) (*domain.Article, error)
	// GetArticle returns the article or domain.ErrArticleNotFound.
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	// ListArticles returns one page of articles matching query.
	ListArticles(ctx context.Context, query string, pageSize int, pageToken string) (*domain.ArticlePage, error)
	// ListNews returns articles by offset for the legacy news endpoints.
	ListNews(ctx context.Context, skip, limit int) ([]domain.Article, error)
	// TopArticles returns the most liked articles.
	TopArticles(ctx context.Context, limit int) ([]domain.Article, error)
}
