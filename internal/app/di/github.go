// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"devconnector_backend/internal/feature/profile/usecase"
	"devconnector_backend/internal/platform/cache"
	"devconnector_backend/internal/platform/config"
	"devconnector_backend/internal/platform/externalapi/github"
	infrahttp "devconnector_backend/internal/platform/http"
	"devconnector_backend/internal/shared/ratelimiter"
)

// NewRepoFetcher creates the GitHub repository fetcher: a throttled HTTP
// client wrapped by the Redis cache. rdb may be nil.
func NewRepoFetcher(cfg *config.Config, rdb *redis.Client) usecase.RepoFetcher {
	gh := github.ConfigFrom(cfg)
	httpClient := infrahttp.NewHTTPClient(gh.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.GitHub.RPS, 1)
	fetcher := github.NewGitHubRepoFetcher(gh, httpClient, limiter)
	return cache.NewCachingRepoFetcher(rdb, cfg.GitHub.CacheTTL, fetcher, "github:repos")
}
