package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-engagement/internal/domain"
)

func setupCache(t *testing.T) (*RedisCounterCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCounterCache(client, time.Minute), mr
}

// fill caches counters the way a reader does after a miss.
func fill(t *testing.T, c *RedisCounterCache, articleID string, counters domain.Counters) {
	t.Helper()
	ctx := context.Background()
	lease, err := c.Reserve(ctx, articleID)
	require.NoError(t, err)
	stored, err := c.Fill(ctx, articleID, lease, counters)
	require.NoError(t, err)
	require.True(t, stored)
}

func TestRedisCounterCache_GetFill(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := setupCache(t)

		_, err := c.Get(ctx, "a1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("round trip with ttl", func(t *testing.T) {
		c, mr := setupCache(t)
		want := domain.Counters{Likes: 4, Comments: 2, Shares: 9}

		fill(t, c, "a1", want)

		got, err := c.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, time.Minute, mr.TTL("article:counters:a1"))
		assert.False(t, mr.Exists("article:fill-lease:a1"), "lease is consumed by the fill")
	})

	t.Run("expires", func(t *testing.T) {
		c, mr := setupCache(t)
		fill(t, c, "a1", domain.Counters{Likes: 1})

		mr.FastForward(2 * time.Minute)

		_, err := c.Get(ctx, "a1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("delete", func(t *testing.T) {
		c, _ := setupCache(t)
		fill(t, c, "a1", domain.Counters{Likes: 1})

		require.NoError(t, c.Delete(ctx, "a1"))

		_, err := c.Get(ctx, "a1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

func TestRedisCounterCache_FillLease(t *testing.T) {
	ctx := context.Background()

	t.Run("write between reserve and fill drops the fill", func(t *testing.T) {
		c, mr := setupCache(t)

		lease, err := c.Reserve(ctx, "a1")
		require.NoError(t, err)
		// a like commits and invalidates while the reader is at the database
		require.NoError(t, c.Delete(ctx, "a1"))

		stored, err := c.Fill(ctx, "a1", lease, domain.Counters{Likes: 3})
		require.NoError(t, err)
		assert.False(t, stored)
		assert.False(t, mr.Exists("article:counters:a1"))
	})

	t.Run("newer reservation wins", func(t *testing.T) {
		c, _ := setupCache(t)

		first, err := c.Reserve(ctx, "a1")
		require.NoError(t, err)
		second, err := c.Reserve(ctx, "a1")
		require.NoError(t, err)

		stored, err := c.Fill(ctx, "a1", first, domain.Counters{Likes: 3})
		require.NoError(t, err)
		assert.False(t, stored)

		stored, err = c.Fill(ctx, "a1", second, domain.Counters{Likes: 4})
		require.NoError(t, err)
		assert.True(t, stored)

		got, err := c.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.Likes)
	})

	t.Run("expired lease", func(t *testing.T) {
		c, mr := setupCache(t)

		lease, err := c.Reserve(ctx, "a1")
		require.NoError(t, err)
		mr.FastForward(leaseTTL + time.Second)

		stored, err := c.Fill(ctx, "a1", lease, domain.Counters{Likes: 3})
		require.NoError(t, err)
		assert.False(t, stored)
	})
}

func TestRedisCounterCache_Ranking(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by the latest likes count", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.UpdateRank(ctx, "a1", 3))
		require.NoError(t, c.UpdateRank(ctx, "a2", 10))
		require.NoError(t, c.UpdateRank(ctx, "a3", 5))
		// a later toggle replaces the score rather than adding to it
		require.NoError(t, c.UpdateRank(ctx, "a1", 4))

		ids, err := c.TopRanked(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"a2", "a3"}, ids)

		all, err := c.TopRanked(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"a2", "a3", "a1"}, all)

		none, err := c.TopRanked(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("unliked article leaves the ranking", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.UpdateRank(ctx, "a1", 1))
		require.NoError(t, c.UpdateRank(ctx, "a1", 0))
		require.NoError(t, c.UpdateRank(ctx, "a2", 1))

		ids, err := c.TopRanked(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"a2"}, ids)
	})

	t.Run("removing an unranked article is a no-op", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.UpdateRank(ctx, "a9", 0))

		ids, err := c.TopRanked(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestRedisCounterCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)
	mr.Close()

	_, err := c.Get(ctx, "a1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Error(t, c.Ping(ctx))
}

func TestNopCounterCache(t *testing.T) {
	ctx := context.Background()
	var c CounterCache = NopCounterCache{}

	lease, err := c.Reserve(ctx, "a1")
	require.NoError(t, err)
	stored, err := c.Fill(ctx, "a1", lease, domain.Counters{Likes: 1})
	require.NoError(t, err)
	assert.False(t, stored)
	_, err = c.Get(ctx, "a1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	ids, err := c.TopRanked(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, c.Ping(ctx))
}
