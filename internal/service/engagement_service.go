package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-engagement/internal/cache"
	"blog-engagement/internal/domain"
	"blog-engagement/internal/events"
	"blog-engagement/internal/logger"
	"blog-engagement/internal/metrics"
	"blog-engagement/internal/repository"
	"blog-engagement/internal/validator"
)

// Engagement actions as recorded in metrics.
const (
	actionLike    = "like"
	actionShare   = "share"
	actionComment = "comment"
)

// EngagementService handles likes, shares and comments on articles.
//
// Every mutation commits in the repository first. Cache refreshes and event
// publication happen afterwards and only log on failure, so a Redis or broker
// outage never fails a request whose write already committed.
type EngagementService struct {
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	cache       cache.CounterCache
	publisher   events.Publisher
	validator   *validator.Validator

	shareBaseURL string
	now          func() time.Time
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	counterCache cache.CounterCache,
	publisher events.Publisher,
	shareBaseURL string,
) *EngagementService {
	return &EngagementService{
		articleRepo:  articleRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		cache:        counterCache,
		publisher:    publisher,
		validator:    validator.NewValidator(),
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
		now:          time.Now,
	}
}

// ToggleLike flips the like of deviceID on the article. A blank device id is
// treated as the shared anonymous device.
func (s *EngagementService) ToggleLike(ctx context.Context, articleID, deviceID string) (domain.LikeResult, error) {
	start := time.Now()
	if deviceID == "" {
		deviceID = domain.AnonymousDeviceID
	}

	result, err := s.likeRepo.Toggle(ctx, articleID, deviceID)
	if err != nil {
		observe(actionLike, err, start)
		return domain.LikeResult{}, fmt.Errorf("toggle like: %w", err)
	}

	s.invalidate(ctx, articleID)
	if err := s.cache.UpdateRank(ctx, articleID, result.LikesCount); err != nil {
		logger.WithArticleID(articleID).Warn("Failed to update like ranking", slog.String("error", err.Error()))
	}

	liked := result.Liked
	s.publisher.Publish(ctx, domain.EngagementEvent{
		Type:       domain.EventLikeToggled,
		ArticleID:  articleID,
		DeviceID:   deviceID,
		Liked:      &liked,
		Count:      result.LikesCount,
		OccurredAt: s.now().UTC(),
	})

	observe(actionLike, nil, start)
	logger.DebugContext(ctx, "Like toggled",
		slog.String("article_id", articleID),
		slog.Bool("liked", result.Liked),
		slog.Int64("likes_count", result.LikesCount),
	)
	return result, nil
}

// LikeStatus returns whether deviceID likes the article and the current count.
func (s *EngagementService) LikeStatus(ctx context.Context, articleID, deviceID string) (domain.LikeResult, error) {
	if deviceID == "" {
		deviceID = domain.AnonymousDeviceID
	}

	article, err := s.getArticle(ctx, articleID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	liked, err := s.likeRepo.IsLiked(ctx, articleID, deviceID)
	if err != nil {
		return domain.LikeResult{}, fmt.Errorf("get like status: %w", err)
	}

	return domain.LikeResult{Liked: liked, LikesCount: article.LikesCount}, nil
}

// RecordShare counts a share. Every call counts, including shares the user
// later abandons on the client.
func (s *EngagementService) RecordShare(ctx context.Context, articleID, deviceID string) (*domain.ShareResult, error) {
	start := time.Now()

	article, err := s.articleRepo.IncrementShares(ctx, articleID)
	if err != nil {
		observe(actionShare, err, start)
		return nil, fmt.Errorf("record share: %w", err)
	}

	s.invalidate(ctx, articleID)
	s.publisher.Publish(ctx, domain.EngagementEvent{
		Type:       domain.EventArticleShared,
		ArticleID:  articleID,
		DeviceID:   deviceID,
		Count:      article.SharesCount,
		OccurredAt: s.now().UTC(),
	})

	observe(actionShare, nil, start)
	return &domain.ShareResult{
		ShareURL:    s.ShareURL(article.ID),
		Title:       article.Title,
		Description: article.Description(),
		Image:       article.ThumbnailURL,
		SharesCount: article.SharesCount,
	}, nil
}

// ShareURL returns the public URL of an article.
func (s *EngagementService) ShareURL(articleID string) string {
	return s.shareBaseURL + "/articles/" + articleID
}

// ListComments returns all comments of the article, newest first.
func (s *EngagementService) ListComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if _, err := s.getArticle(ctx, articleID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

// PostComment validates the text and stores the comment. Blank or oversized
// text is rejected before the store is touched.
func (s *EngagementService) PostComment(ctx context.Context, articleID string, input domain.NewComment) (*domain.Comment, error) {
	start := time.Now()

	input.Text = strings.TrimSpace(input.Text)
	input.UserID = strings.TrimSpace(input.UserID)
	if err := s.validator.ValidateComment(&input); err != nil {
		observe(actionComment, err, start)
		return nil, err
	}
	if input.UserID == "" {
		input.UserID = domain.AnonymousUserID
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		ArticleID: articleID,
		UserID:    input.UserID,
		Text:      input.Text,
	}

	count, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		observe(actionComment, err, start)
		return nil, fmt.Errorf("post comment: %w", err)
	}

	s.invalidate(ctx, articleID)
	s.publisher.Publish(ctx, domain.EngagementEvent{
		Type:       domain.EventCommentPosted,
		ArticleID:  articleID,
		Count:      count,
		OccurredAt: s.now().UTC(),
	})

	observe(actionComment, nil, start)
	return comment, nil
}

// Counters returns the article's counters from the cache, falling back to the
// database on a miss. The value read is cached only if no write committed
// while it was being read.
func (s *EngagementService) Counters(ctx context.Context, articleID string) (domain.Counters, error) {
	counters, err := s.cache.Get(ctx, articleID)
	switch {
	case err == nil:
		metrics.ObserveCacheLookup("hit")
		return counters, nil
	case errors.Is(err, cache.ErrCacheMiss):
		metrics.ObserveCacheLookup("miss")
	default:
		metrics.ObserveCacheLookup("error")
		logger.WithArticleID(articleID).Warn("Counter cache unavailable", slog.String("error", err.Error()))
	}

	var lease string
	if errors.Is(err, cache.ErrCacheMiss) {
		if lease, err = s.cache.Reserve(ctx, articleID); err != nil {
			logger.WithArticleID(articleID).Warn("Failed to reserve counter fill", slog.String("error", err.Error()))
		}
	}

	article, err := s.getArticle(ctx, articleID)
	if err != nil {
		return domain.Counters{}, err
	}

	counters = article.Counters()
	if lease != "" {
		if _, err := s.cache.Fill(ctx, articleID, lease, counters); err != nil {
			logger.WithArticleID(articleID).Warn("Failed to cache counters", slog.String("error", err.Error()))
		}
	}
	return counters, nil
}

func (s *EngagementService) getArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

// invalidate drops cached counters after a committed write. A reader that
// started before the write can then no longer cache what it read.
func (s *EngagementService) invalidate(ctx context.Context, articleID string) {
	if err := s.cache.Delete(ctx, articleID); err != nil {
		logger.WithArticleID(articleID).Warn("Failed to invalidate cached counters",
			slog.String("error", err.Error()),
		)
	}
}

// observe records an engagement action. Not-found and invalid input are
// client errors and are counted apart from failures.
func observe(action string, err error, start time.Time) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
		result = "rejected"
	default:
		result = "error"
	}
	metrics.ObserveAction(action, result, time.Since(start).Seconds())
}
