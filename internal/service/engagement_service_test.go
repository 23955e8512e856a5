package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-engagement/internal/cache"
	"blog-engagement/internal/domain"
	"blog-engagement/internal/mocks"
	"blog-engagement/internal/service"
)

type engagementMocks struct {
	articleRepo *mocks.MockArticleRepository
	commentRepo *mocks.MockCommentRepository
	likeRepo    *mocks.MockLikeRepository
	cache       *mocks.MockCounterCache
	publisher   *mocks.MockPublisher
}

func newEngagementService(t *testing.T) (*service.EngagementService, engagementMocks) {
	m := engagementMocks{
		articleRepo: mocks.NewMockArticleRepository(t),
		commentRepo: mocks.NewMockCommentRepository(t),
		likeRepo:    mocks.NewMockLikeRepository(t),
		cache:       mocks.NewMockCounterCache(t),
		publisher:   mocks.NewMockPublisher(t),
	}
	svc := service.NewEngagementService(m.articleRepo, m.commentRepo, m.likeRepo, m.cache, m.publisher, "https://blog.example.com/")
	return svc, m
}

func sampleArticle() *domain.Article {
	return &domain.Article{
		ID:            "a1",
		Slug:          "go-generics",
		Title:         "Go generics in practice",
		Content:       strings.Repeat("x", 200),
		ThumbnailURL:  "https://cdn.example.com/a1.jpg",
		LikesCount:    3,
		CommentsCount: 0,
		SharesCount:   7,
		CreatedAt:     time.Now().Add(-time.Hour),
	}
}

func TestEngagementService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("like then unlike returns to the original count", func(t *testing.T) {
		svc, m := newEngagementService(t)
		device := "6f1c1f3e-8a55-4a8e-9d7c-2f0c2b1d9e11"

		m.likeRepo.EXPECT().Toggle(mock.Anything, "a1", device).
			Return(domain.LikeResult{Liked: true, LikesCount: 4}, nil).Once()
		m.likeRepo.EXPECT().Toggle(mock.Anything, "a1", device).
			Return(domain.LikeResult{Liked: false, LikesCount: 3}, nil).Once()
		m.cache.EXPECT().Delete(mock.Anything, "a1").Return(nil).Times(2)
		m.cache.EXPECT().UpdateRank(mock.Anything, "a1", int64(4)).Return(nil).Once()
		m.cache.EXPECT().UpdateRank(mock.Anything, "a1", int64(3)).Return(nil).Once()

		var published []domain.EngagementEvent
		m.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.EngagementEvent")).
			Run(func(ctx context.Context, event domain.EngagementEvent) {
				published = append(published, event)
			}).Times(2)

		first, err := svc.ToggleLike(ctx, "a1", device)
		require.NoError(t, err)
		assert.Equal(t, domain.LikeResult{Liked: true, LikesCount: 4}, first)

		second, err := svc.ToggleLike(ctx, "a1", device)
		require.NoError(t, err)
		assert.Equal(t, domain.LikeResult{Liked: false, LikesCount: 3}, second)

		require.Len(t, published, 2)
		assert.Equal(t, domain.EventLikeToggled, published[0].Type)
		assert.Equal(t, device, published[0].DeviceID)
		require.NotNil(t, published[0].Liked)
		assert.True(t, *published[0].Liked)
		assert.False(t, *published[1].Liked)
		assert.Equal(t, int64(3), published[1].Count)
	})

	t.Run("blank device uses the anonymous device", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.likeRepo.EXPECT().Toggle(mock.Anything, "a1", domain.AnonymousDeviceID).
			Return(domain.LikeResult{Liked: true, LikesCount: 1}, nil)
		m.cache.EXPECT().Delete(mock.Anything, "a1").Return(nil)
		m.cache.EXPECT().UpdateRank(mock.Anything, "a1", int64(1)).Return(nil)
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

		result, err := svc.ToggleLike(ctx, "a1", "")
		require.NoError(t, err)
		assert.True(t, result.Liked)
	})

	t.Run("unknown article", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.likeRepo.EXPECT().Toggle(mock.Anything, "missing", domain.AnonymousDeviceID).
			Return(domain.LikeResult{}, domain.ErrArticleNotFound)

		_, err := svc.ToggleLike(ctx, "missing", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("cache failure does not fail the toggle", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.likeRepo.EXPECT().Toggle(mock.Anything, "a1", domain.AnonymousDeviceID).
			Return(domain.LikeResult{Liked: true, LikesCount: 4}, nil)
		m.cache.EXPECT().Delete(mock.Anything, "a1").
			Return(errors.New("connection refused"))
		m.cache.EXPECT().UpdateRank(mock.Anything, "a1", int64(4)).
			Return(errors.New("connection refused"))
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

		result, err := svc.ToggleLike(ctx, "a1", "")
		require.NoError(t, err)
		assert.Equal(t, int64(4), result.LikesCount)
	})
}

func TestEngagementService_LikeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("returns state without mutating", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.articleRepo.EXPECT().GetByID(mock.Anything, "a1").Return(sampleArticle(), nil)
		m.likeRepo.EXPECT().IsLiked(mock.Anything, "a1", "dev-1").Return(true, nil)

		result, err := svc.LikeStatus(ctx, "a1", "dev-1")
		require.NoError(t, err)
		assert.Equal(t, domain.LikeResult{Liked: true, LikesCount: 3}, result)
	})

	t.Run("unknown article", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.articleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, nil)

		_, err := svc.LikeStatus(ctx, "missing", "dev-1")
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})
}

func TestEngagementService_RecordShare(t *testing.T) {
	ctx := context.Background()

	t.Run("increments by exactly one and builds share payload", func(t *testing.T) {
		svc, m := newEngagementService(t)
		shared := sampleArticle()
		shared.SharesCount = 8

		m.articleRepo.EXPECT().IncrementShares(mock.Anything, "a1").Return(shared, nil).Once()
		m.cache.EXPECT().Delete(mock.Anything, "a1").Return(nil)
		m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.EngagementEvent) bool {
			return e.Type == domain.EventArticleShared && e.Count == 8 && e.Liked == nil
		})).Return()

		result, err := svc.RecordShare(ctx, "a1", "dev-1")
		require.NoError(t, err)
		assert.Equal(t, "https://blog.example.com/articles/a1", result.ShareURL)
		assert.Equal(t, "Go generics in practice", result.Title)
		assert.Len(t, []rune(result.Description), domain.DescriptionLength)
		assert.Equal(t, "https://cdn.example.com/a1.jpg", result.Image)
		assert.Equal(t, int64(8), result.SharesCount)
	})

	t.Run("meta description wins", func(t *testing.T) {
		svc, m := newEngagementService(t)
		shared := sampleArticle()
		meta := "A short summary"
		shared.MetaDescription = &meta

		m.articleRepo.EXPECT().IncrementShares(mock.Anything, "a1").Return(shared, nil)
		m.cache.EXPECT().Delete(mock.Anything, "a1").Return(nil)
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

		result, err := svc.RecordShare(ctx, "a1", "")
		require.NoError(t, err)
		assert.Equal(t, "A short summary", result.Description)
	})

	t.Run("unknown article", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.articleRepo.EXPECT().IncrementShares(mock.Anything, "missing").Return(nil, domain.ErrArticleNotFound)

		result, err := svc.RecordShare(ctx, "missing", "")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEngagementService_ListComments(t *testing.T) {
	ctx := context.Background()

	t.Run("returns comments from the store", func(t *testing.T) {
		svc, m := newEngagementService(t)
		now := time.Now()
		comments := []domain.Comment{
			{ID: "c2", ArticleID: "a1", Text: "second", CreatedAt: now},
			{ID: "c1", ArticleID: "a1", Text: "first", CreatedAt: now.Add(-time.Minute)},
		}

		m.articleRepo.EXPECT().GetByID(mock.Anything, "a1").Return(sampleArticle(), nil)
		m.commentRepo.EXPECT().ListByArticle(mock.Anything, "a1").Return(comments, nil)

		got, err := svc.ListComments(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, comments, got)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.articleRepo.EXPECT().GetByID(mock.Anything, "a1").Return(sampleArticle(), nil)
		m.commentRepo.EXPECT().ListByArticle(mock.Anything, "a1").Return(nil, nil)

		got, err := svc.ListComments(ctx, "a1")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown article", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.articleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, nil)

		_, err := svc.ListComments(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEngagementService_PostComment(t *testing.T) {
	ctx := context.Background()

	t.Run("stores trimmed comment as anonymous", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.commentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ArticleID == "a1" && c.Text == "Great piece" && c.UserID == domain.AnonymousUserID && c.ID != ""
		})).RunAndReturn(func(ctx context.Context, c *domain.Comment) (int64, error) {
			c.CreatedAt = time.Now()
			return 1, nil
		})
		m.cache.EXPECT().Delete(mock.Anything, "a1").Return(nil)
		m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.EngagementEvent) bool {
			return e.Type == domain.EventCommentPosted && e.Count == 1
		})).Return()

		comment, err := svc.PostComment(ctx, "a1", domain.NewComment{Text: "  Great piece \n"})
		require.NoError(t, err)
		assert.NotEmpty(t, comment.ID)
		assert.Equal(t, "Great piece", comment.Text)
		assert.Equal(t, domain.AnonymousUserID, comment.UserID)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("keeps the supplied user id", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.commentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.UserID == "reader-7"
		})).Return(2, nil)
		m.cache.EXPECT().Delete(mock.Anything, "a1").Return(nil)
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

		comment, err := svc.PostComment(ctx, "a1", domain.NewComment{Text: "Nice", UserID: "reader-7"})
		require.NoError(t, err)
		assert.Equal(t, "reader-7", comment.UserID)
	})

	t.Run("whitespace only text never reaches the store", func(t *testing.T) {
		svc, _ := newEngagementService(t)

		comment, err := svc.PostComment(ctx, "a1", domain.NewComment{Text: "   \t\n"})
		assert.Nil(t, comment)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("over 500 words", func(t *testing.T) {
		svc, _ := newEngagementService(t)

		_, err := svc.PostComment(ctx, "a1", domain.NewComment{Text: strings.Repeat("word ", 501)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown article", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.commentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(0, domain.ErrArticleNotFound)

		_, err := svc.PostComment(ctx, "missing", domain.NewComment{Text: "hello"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEngagementService_Counters(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		svc, m := newEngagementService(t)
		cached := domain.Counters{Likes: 4, Comments: 1, Shares: 9}

		m.cache.EXPECT().Get(mock.Anything, "a1").Return(cached, nil)

		got, err := svc.Counters(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("cache miss reads and fills under a lease", func(t *testing.T) {
		svc, m := newEngagementService(t)
		article := sampleArticle()

		m.cache.EXPECT().Get(mock.Anything, "a1").Return(domain.Counters{}, cache.ErrCacheMiss)
		m.cache.EXPECT().Reserve(mock.Anything, "a1").Return("lease-1", nil)
		m.articleRepo.EXPECT().GetByID(mock.Anything, "a1").Return(article, nil)
		m.cache.EXPECT().Fill(mock.Anything, "a1", "lease-1", article.Counters()).Return(true, nil)

		got, err := svc.Counters(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, domain.Counters{Likes: 3, Comments: 0, Shares: 7}, got)
	})

	t.Run("cache error falls back to the database without filling", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.cache.EXPECT().Get(mock.Anything, "a1").Return(domain.Counters{}, errors.New("timeout"))
		m.articleRepo.EXPECT().GetByID(mock.Anything, "a1").Return(sampleArticle(), nil)

		got, err := svc.Counters(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Likes)
	})

	t.Run("failed reservation still answers from the database", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.cache.EXPECT().Get(mock.Anything, "a1").Return(domain.Counters{}, cache.ErrCacheMiss)
		m.cache.EXPECT().Reserve(mock.Anything, "a1").Return("", errors.New("timeout"))
		m.articleRepo.EXPECT().GetByID(mock.Anything, "a1").Return(sampleArticle(), nil)

		got, err := svc.Counters(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Likes)
	})

	t.Run("unknown article", func(t *testing.T) {
		svc, m := newEngagementService(t)

		m.cache.EXPECT().Get(mock.Anything, "missing").Return(domain.Counters{}, cache.ErrCacheMiss)
		m.cache.EXPECT().Reserve(mock.Anything, "missing").Return("lease-1", nil)
		m.articleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, nil)

		_, err := svc.Counters(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEngagementService_CountersWithConcurrentLike(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	counterCache := cache.NewRedisCounterCache(client, time.Minute)

	articleRepo := mocks.NewMockArticleRepository(t)
	likeRepo := mocks.NewMockLikeRepository(t)
	publisher := mocks.NewMockPublisher(t)
	svc := service.NewEngagementService(articleRepo, mocks.NewMockCommentRepository(t), likeRepo, counterCache, publisher, "")

	before := sampleArticle()
	after := sampleArticle()
	after.LikesCount = 4

	likeRepo.EXPECT().Toggle(mock.Anything, "a1", domain.AnonymousDeviceID).
		Return(domain.LikeResult{Liked: true, LikesCount: 4}, nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	// the like commits after the first read has loaded likes=3
	articleRepo.EXPECT().GetByID(mock.Anything, "a1").
		RunAndReturn(func(ctx context.Context, id string) (*domain.Article, error) {
			_, err := svc.ToggleLike(ctx, id, "")
			require.NoError(t, err)
			return before, nil
		}).Once()
	articleRepo.EXPECT().GetByID(mock.Anything, "a1").Return(after, nil).Once()

	first, err := svc.Counters(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Likes)
	assert.False(t, mr.Exists("article:counters:a1"), "stale read must not be cached")

	second, err := svc.Counters(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), second.Likes)

	// served from the cache now; GetByID expectations are used up
	third, err := svc.Counters(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), third.Likes)
}
