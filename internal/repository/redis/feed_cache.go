package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	FeedKeyPrefix = "feed:cache"

	WeatherTTL = 10 * time.Minute
	QuakeTTL   = 5 * time.Minute
	GeocodeTTL = 24 * time.Hour
)

var (
	ErrCacheMiss        = errors.New("feed cache miss")
	ErrCacheUnavailable = errors.New("feed cache unavailable")
)

// FeedCacheRepository stores raw upstream payloads keyed per feed kind and
// query, so the browser never talks to the third-party APIs directly.
type FeedCacheRepository struct{}

func feedKey(kind, key string) string {
	return fmt.Sprintf("%s:%s:%s", FeedKeyPrefix, kind, key)
}

func (r *FeedCacheRepository) Get(ctx context.Context, kind, key string) ([]byte, error) {
	payload, err := Client.Get(ctx, feedKey(kind, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, ErrCacheUnavailable
	}
	return payload, nil
}

func (r *FeedCacheRepository) Set(ctx context.Context, kind, key string, payload []byte, ttl time.Duration) error {
	if err := Client.Set(ctx, feedKey(kind, key), payload, ttl).Err(); err != nil {
		return ErrCacheUnavailable
	}
	return nil
}
