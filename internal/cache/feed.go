package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"socialite/internal/middleware"
	"socialite/internal/models"

	"github.com/redis/go-redis/v9"
)

// FeedTTL bounds how stale a cached feed snapshot may be.
const FeedTTL = 30 * time.Second

// FeedCache stores composed feed snapshots per user. All methods degrade to
// no-ops when the client is nil or Redis fails; the feed composer then reads
// the store directly.
type FeedCache struct {
	client *redis.Client
}

// NewFeedCache returns a FeedCache backed by the given client (which may be nil).
func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

func feedKey(userID string) string {
	return fmt.Sprintf("feed:%s", userID)
}

// Get returns the cached feed for the user, or (nil, false) on a miss.
func (c *FeedCache) Get(ctx context.Context, userID string) ([]models.Post, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, feedKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			middleware.Logger.WarnContext(ctx, "feed cache read failed", slog.String("error", err.Error()))
		}
		middleware.FeedCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		middleware.FeedCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	middleware.FeedCacheHits.WithLabelValues("hit").Inc()
	return posts, true
}

// Set stores a feed snapshot for the user.
func (c *FeedCache) Set(ctx context.Context, userID string, posts []models.Post) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, feedKey(userID), raw, FeedTTL).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "feed cache write failed", slog.String("error", err.Error()))
	}
}

// Invalidate drops the cached feeds of every listed user. Called when an
// author creates or deletes a post so their friends see it promptly.
func (c *FeedCache) Invalidate(ctx context.Context, userIDs ...string) {
	if c.client == nil || len(userIDs) == 0 {
		return
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = feedKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "feed cache invalidation failed", slog.String("error", err.Error()))
	}
}
