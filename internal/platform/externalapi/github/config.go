// Package github provides a client for the GitHub REST API repository listing.
package github

import (
	"time"

	"devconnector_backend/internal/platform/config"
)

// DefaultPerPage is how many repositories are shown on a profile.
const DefaultPerPage = 5

// Config holds configuration for the GitHub API client.
type Config struct {
	BaseURL      string        // e.g. "https://api.github.com"
	ClientID     string        // optional OAuth app credentials
	ClientSecret string        //
	Token        string        // optional personal access token, preferred over the app credentials
	Timeout      time.Duration // HTTP request timeout
	PerPage      int
}

// ConfigFrom extracts the GitHub settings from the server configuration.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		BaseURL:      cfg.GitHub.BaseURL,
		ClientID:     cfg.GitHub.ClientID,
		ClientSecret: cfg.GitHub.ClientSecret,
		Token:        cfg.GitHub.Token,
		Timeout:      cfg.GitHub.Timeout,
		PerPage:      DefaultPerPage,
	}
}
