// Copyright (c) 2026 Podhaven. All rights reserved.

package feed

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/podhaven/podhaven/internal/platform/constants"
)

// # Feed Cache

// CachedFeed is a rendered document plus the show it belongs to, so a cache
// hit can still emit an analytics event without re-resolving the show.
type CachedFeed struct {
	PodcastID string `json:"podcast_id"`
	XML       string `json:"xml"`
}

// Cache stores rendered feed documents. Implementations are fail-open: a
// cache outage degrades to rendering on every request, never to an error.
type Cache interface {
	Get(context context.Context, key string) (*CachedFeed, bool)
	Set(context context.Context, key string, entry *CachedFeed)
}

// redisCache implements [Cache] on go-redis with the shared feed TTL, which
// matches the max-age the response advertises.
type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache constructs a Redis backed feed cache.
func NewRedisCache(client *redis.Client, logger *slog.Logger) Cache {
	return &redisCache{client: client, logger: logger}
}

// Get returns the cached document for key, if present.
func (cache *redisCache) Get(context context.Context, key string) (*CachedFeed, bool) {
	raw, err := cache.client.Get(context, constants.RedisPrefixFeed+key).Result()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("feed_cache_get_failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var entry CachedFeed
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		cache.logger.Warn("feed_cache_corrupt_entry", slog.String("key", key))
		return nil, false
	}

	return &entry, true
}

// Set stores the document under key for the feed TTL.
func (cache *redisCache) Set(context context.Context, key string, entry *CachedFeed) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}

	if err := cache.client.Set(context, constants.RedisPrefixFeed+key, raw, constants.FeedCacheTTL).Err(); err != nil {
		cache.logger.Warn("feed_cache_set_failed", slog.String("error", err.Error()))
	}
}
