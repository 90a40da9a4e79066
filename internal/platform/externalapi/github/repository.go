package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"devconnector_backend/internal/feature/profile/domain/entity"
	"devconnector_backend/internal/feature/profile/usecase"
	"devconnector_backend/internal/platform/externalapi/github/dto"
	"devconnector_backend/internal/shared/ratelimiter"
)

// GitHubRepoFetcher はGitHub REST APIからユーザーのリポジトリ一覧を取得するRepoFetcher実装です。
type GitHubRepoFetcher struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// GitHubRepoFetcherがRepoFetcherを実装していることをコンパイル時に検証します。
var _ usecase.RepoFetcher = (*GitHubRepoFetcher)(nil)

// NewGitHubRepoFetcher creates a fetcher. limiter may be nil to disable throttling.
func NewGitHubRepoFetcher(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *GitHubRepoFetcher {
	if cfg.PerPage <= 0 {
		cfg.PerPage = DefaultPerPage
	}
	return &GitHubRepoFetcher{cfg: cfg, client: client, limiter: limiter}
}

// ListRepos returns the newest repositories of username.
// Any non-200 answer from GitHub is reported as usecase.ErrGitHubUserNotFound.
func (g *GitHubRepoFetcher) ListRepos(ctx context.Context, username string) ([]entity.GitHubRepo, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("github rate limiter: %w", err)
		}
	}

	q := url.Values{}
	q.Set("per_page", strconv.Itoa(g.cfg.PerPage))
	q.Set("sort", "created")
	q.Set("direction", "desc")
	if g.cfg.Token == "" && g.cfg.ClientID != "" {
		q.Set("client_id", g.cfg.ClientID)
		q.Set("client_secret", g.cfg.ClientSecret)
	}

	u := fmt.Sprintf("%s/users/%s/repos?%s", g.cfg.BaseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnector-backend")
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		slog.Warn("github lookup failed", "username", username, "status", res.StatusCode)
		return nil, usecase.ErrGitHubUserNotFound
	}

	var body []dto.Repo
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}

	repos := make([]entity.GitHubRepo, 0, len(body))
	for _, r := range body {
		repos = append(repos, entity.GitHubRepo{
			Name:        r.Name,
			FullName:    r.FullName,
			HTMLURL:     r.HTMLURL,
			Description: deref(r.Description),
			Language:    deref(r.Language),
			Stars:       r.StargazersCount,
			Watchers:    r.WatchersCount,
			Forks:       r.ForksCount,
			CreatedAt:   r.CreatedAt,
		})
	}
	return repos, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
