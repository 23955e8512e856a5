package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"blog-engagement/internal/cache"
	"blog-engagement/internal/domain"
	"blog-engagement/internal/logger"
	"blog-engagement/internal/repository"
	"blog-engagement/internal/validator"
)

const (
	// DefaultNewsLimit is the page size of the legacy news listing.
	DefaultNewsLimit = 20

	slugSuffixLength = 8
)

// ArticleService handles storing, reading and listing articles.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	cache       cache.CounterCache
	validator   *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository, counterCache cache.CounterCache) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		cache:       counterCache,
		validator:   validator.NewValidator(),
	}
}

// StoreArticle validates and stores an article. A missing id is generated and
// the slug is derived from the title, suffixed with the id when already taken.
func (s *ArticleService) StoreArticle(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	article.ID = strings.TrimSpace(article.ID)
	article.Title = strings.TrimSpace(article.Title)
	article.ThumbnailURL = strings.TrimSpace(article.ThumbnailURL)
	article.Slug = strings.TrimSpace(article.Slug)

	if err := s.validator.ValidateArticle(article); err != nil {
		return nil, err
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	if article.Slug == "" {
		article.Slug = slug.Make(article.Title)
	}
	if article.Slug == "" {
		article.Slug = idPrefix(article.ID)
	} else {
		taken, err := s.articleRepo.SlugExists(ctx, article.Slug)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			article.Slug = article.Slug + "-" + idPrefix(article.ID)
		}
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}

	logger.WithArticleID(article.ID).Info("Article stored", slog.String("slug", article.Slug))
	return article, nil
}

// GetArticle returns the article with the given id.
func (s *ArticleService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

// ListArticles returns one page of articles, newest first. The page token is
// the 1-based page number; an empty token means the first page.
func (s *ArticleService) ListArticles(ctx context.Context, query string, pageSize int, pageToken string) (*domain.ArticlePage, error) {
	pageSize = clampLimit(pageSize, domain.DefaultPageSize)

	page := 1
	if pageToken != "" {
		n, err := strconv.Atoi(pageToken)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: page_token must be a positive page number", domain.ErrInvalidInput)
		}
		page = n
	}

	// one extra row tells whether another page exists
	articles, err := s.articleRepo.List(ctx, domain.ArticleQuery{
		Query:  strings.TrimSpace(query),
		Limit:  pageSize + 1,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	result := &domain.ArticlePage{Articles: articles}
	if len(articles) > pageSize {
		result.Articles = articles[:pageSize]
		result.NextPageToken = strconv.Itoa(page + 1)
	}
	if result.Articles == nil {
		result.Articles = []domain.Article{}
	}
	return result, nil
}

// ListNews returns articles by offset, newest first.
func (s *ArticleService) ListNews(ctx context.Context, skip, limit int) ([]domain.Article, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", domain.ErrInvalidInput)
	}
	articles, err := s.articleRepo.List(ctx, domain.ArticleQuery{
		Limit:  clampLimit(limit, DefaultNewsLimit),
		Offset: skip,
	})
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}

// TopArticles returns the most liked articles. The Redis ranking only knows
// articles liked since it was last populated, so it is used when it can fill
// the whole page; otherwise the database answers and the ranking is reseeded.
func (s *ArticleService) TopArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	limit = clampLimit(limit, domain.DefaultTopLimit)

	ids, rankErr := s.cache.TopRanked(ctx, limit)
	if rankErr != nil {
		logger.Warn("Like ranking unavailable, using database", slog.String("error", rankErr.Error()))
	}

	if rankErr == nil && len(ids) >= limit {
		articles, err := s.articleRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get ranked articles: %w", err)
		}
		if ranked := liked(articles); len(ranked) >= limit {
			return ranked, nil
		}
	}

	articles, err := s.articleRepo.TopByLikes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get top articles: %w", err)
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	if rankErr == nil {
		s.seedRanking(ctx, articles)
	}
	return articles, nil
}

func (s *ArticleService) seedRanking(ctx context.Context, articles []domain.Article) {
	for _, a := range articles {
		if err := s.cache.UpdateRank(ctx, a.ID, a.LikesCount); err != nil {
			logger.WithArticleID(a.ID).Warn("Failed to seed like ranking", slog.String("error", err.Error()))
			return
		}
	}
}

// liked drops articles whose likes were taken back after they were ranked.
func liked(articles []domain.Article) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.LikesCount > 0 {
			out = append(out, a)
		}
	}
	return out
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > domain.MaxPageSize {
		return domain.MaxPageSize
	}
	return limit
}

func idPrefix(id string) string {
	id = strings.ReplaceAll(strings.ToLower(id), "-", "")
	if len(id) > slugSuffixLength {
		id = id[:slugSuffixLength]
	}
	return slug.Make(id)
}
