// Package cache keeps article engagement counters and the like ranking in Redis.
package cache

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"blog-engagement/internal/domain"
)

var (
	//go:embed lua/fill_counters.lua
	luaFillCounters string

	fillScript = redis.NewScript(luaFillCounters)
)

// ErrCacheMiss is returned by Get when no counters are cached for an article.
var ErrCacheMiss = errors.New("cache miss")

// Counter fields of the cached hash.
const (
	FieldLikes    = "likes_count"
	FieldComments = "comments_count"
	FieldShares   = "shares_count"
)

const (
	counterKeyPrefix = "article:counters:"
	leaseKeyPrefix   = "article:fill-lease:"
	rankKey          = "rank:article:likes"

	// DefaultTTL bounds how stale a cached counter hash can get.
	DefaultTTL = 15 * time.Minute

	leaseTTL = 5 * time.Second
)

// CounterCache caches engagement counters per article and ranks articles by likes.
//
// A miss is filled in three steps: Reserve, read the database, Fill. Delete
// after a database write revokes any lease taken before it, so a fill that
// read older values is dropped.
type CounterCache interface {
	Get(ctx context.Context, articleID string) (domain.Counters, error)
	Reserve(ctx context.Context, articleID string) (string, error)
	// Fill stores counters when lease is still held and reports whether it did.
	Fill(ctx context.Context, articleID, lease string, counters domain.Counters) (bool, error)
	Delete(ctx context.Context, articleID string) error
	// UpdateRank records the current likes count of an article in the ranking.
	UpdateRank(ctx context.Context, articleID string, likes int64) error
	// TopRanked returns article ids ordered by likes, highest first.
	TopRanked(ctx context.Context, limit int) ([]string, error)
	Ping(ctx context.Context) error
}

// RedisCounterCache implements CounterCache on Redis hashes and a sorted set.
type RedisCounterCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

// NewRedisCounterCache creates a new RedisCounterCache. A zero ttl uses DefaultTTL.
func NewRedisCounterCache(client redis.Cmdable, ttl time.Duration) *RedisCounterCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCounterCache{
		client:     client,
		expiration: ttl,
	}
}

func (r *RedisCounterCache) key(articleID string) string {
	return counterKeyPrefix + articleID
}

func (r *RedisCounterCache) leaseKey(articleID string) string {
	return leaseKeyPrefix + articleID
}

// Get returns the cached counters, or ErrCacheMiss.
func (r *RedisCounterCache) Get(ctx context.Context, articleID string) (domain.Counters, error) {
	// HGetAll returns an empty map for a missing key, which is how a miss is told apart
	data, err := r.client.HGetAll(ctx, r.key(articleID)).Result()
	if err != nil {
		return domain.Counters{}, fmt.Errorf("get counters: %w", err)
	}
	if len(data) == 0 {
		return domain.Counters{}, ErrCacheMiss
	}

	likes, _ := strconv.ParseInt(data[FieldLikes], 10, 64)
	comments, _ := strconv.ParseInt(data[FieldComments], 10, 64)
	shares, _ := strconv.ParseInt(data[FieldShares], 10, 64)
	return domain.Counters{
		Likes:    likes,
		Comments: comments,
		Shares:   shares,
	}, nil
}

// Reserve takes a fill lease for the article. A later Reserve replaces it.
func (r *RedisCounterCache) Reserve(ctx context.Context, articleID string) (string, error) {
	lease := uuid.New().String()
	if err := r.client.Set(ctx, r.leaseKey(articleID), lease, leaseTTL).Err(); err != nil {
		return "", fmt.Errorf("reserve counters: %w", err)
	}
	return lease, nil
}

// Fill stores all counters of an article if lease is still current.
func (r *RedisCounterCache) Fill(ctx context.Context, articleID, lease string, counters domain.Counters) (bool, error) {
	keys := []string{r.key(articleID), r.leaseKey(articleID)}
	n, err := fillScript.Run(ctx, r.client, keys,
		lease, r.expiration.Milliseconds(),
		counters.Likes, counters.Comments, counters.Shares,
	).Int()
	if err != nil {
		return false, fmt.Errorf("fill counters: %w", err)
	}
	return n == 1, nil
}

// Delete drops the cached counters of an article and any outstanding lease.
func (r *RedisCounterCache) Delete(ctx context.Context, articleID string) error {
	if err := r.client.Del(ctx, r.key(articleID), r.leaseKey(articleID)).Err(); err != nil {
		return fmt.Errorf("delete counters: %w", err)
	}
	return nil
}

// UpdateRank sets the article's ranking score to its likes count. Articles
// without likes leave the ranking.
func (r *RedisCounterCache) UpdateRank(ctx context.Context, articleID string, likes int64) error {
	var err error
	if likes <= 0 {
		err = r.client.ZRem(ctx, rankKey, articleID).Err()
	} else {
		err = r.client.ZAdd(ctx, rankKey, redis.Z{Score: float64(likes), Member: articleID}).Err()
	}
	if err != nil {
		return fmt.Errorf("update rank: %w", err)
	}
	return nil
}

// TopRanked returns up to limit article ids with the most likes.
func (r *RedisCounterCache) TopRanked(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := r.client.ZRevRange(ctx, rankKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read rank: %w", err)
	}
	return ids, nil
}

// Ping checks the Redis connection.
func (r *RedisCounterCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// NopCounterCache is used when Redis is disabled. Every read misses.
type NopCounterCache struct{}

func (NopCounterCache) Get(context.Context, string) (domain.Counters, error) {
	return domain.Counters{}, ErrCacheMiss
}
func (NopCounterCache) Reserve(context.Context, string) (string, error) { return "", nil }
func (NopCounterCache) Fill(context.Context, string, string, domain.Counters) (bool, error) {
	return false, nil
}
func (NopCounterCache) Delete(context.Context, string) error            { return nil }
func (NopCounterCache) UpdateRank(context.Context, string, int64) error { return nil }
func (NopCounterCache) TopRanked(context.Context, int) ([]string, error) {
	return nil, nil
}
func (NopCounterCache) Ping(context.Context) error { return nil }
