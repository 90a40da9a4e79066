// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"devconnector_backend/internal/feature/profile/domain/entity"
	"devconnector_backend/internal/feature/profile/usecase"
)

// CachingRepoFetcher decorates a RepoFetcher with Redis caching.
// A nil Redis client turns it into a pass-through.
type CachingRepoFetcher struct {
	inner     usecase.RepoFetcher
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.RepoFetcher = (*CachingRepoFetcher)(nil)

// NewCachingRepoFetcher decorates a RepoFetcher with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "github:repos".
func NewCachingRepoFetcher(rdb *redis.Client, ttl time.Duration, inner usecase.RepoFetcher, namespace string) *CachingRepoFetcher {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "github:repos"
	}
	return &CachingRepoFetcher{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListRepos checks the cache first and falls back to the wrapped fetcher.
// Errors, including not-found, are never cached.
func (c *CachingRepoFetcher) ListRepos(ctx context.Context, username string) ([]entity.GitHubRepo, error) {
	if c.rdb == nil {
		return c.inner.ListRepos(ctx, username)
	}

	key := c.cacheKey(username)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.GitHubRepo
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("repo cache read failed", "key", key, "error", err)
	}

	// 2) Fallback to GitHub
	out, err := c.inner.ListRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("repo cache write failed", "key", key, "error", err)
		}
	}

	return out, nil
}

// cacheKey generates a cache key for a GitHub username. Usernames are case-insensitive.
func (c *CachingRepoFetcher) cacheKey(username string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(strings.ToLower(username)))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
