// Package dto holds the GitHub API wire types.
package dto

import "time"

// Repo is one element of GET /users/{username}/repos.
type Repo struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description"`
	Language        *string   `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
}
