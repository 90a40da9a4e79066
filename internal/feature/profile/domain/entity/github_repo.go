package entity

import "time"

// GitHubRepo is the subset of a GitHub repository shown on a profile page.
type GitHubRepo struct {
	Name        string
	FullName    string
	HTMLURL     string
	Description string
	Language    string
	Stars       int
	Watchers    int
	Forks       int
	CreatedAt   time.Time
}
