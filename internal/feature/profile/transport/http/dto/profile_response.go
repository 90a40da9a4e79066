package dto

import (
	"time"

	"devconnector_backend/internal/feature/profile/domain/entity"
)

// OwnerResponse is the user a profile belongs to.
type OwnerResponse struct {
	ID     uint   `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ProfileResponse is a profile joined with its owner.
type ProfileResponse struct {
	ID             uint                `json:"_id"`
	User           OwnerResponse       `json:"user"`
	Company        string              `json:"company,omitempty"`
	Website        string              `json:"website,omitempty"`
	Location       string              `json:"location,omitempty"`
	Status         string              `json:"status"`
	Skills         []string            `json:"skills"`
	Bio            string              `json:"bio,omitempty"`
	GitHubUsername string              `json:"githubusername,omitempty"`
	Social         entity.Social       `json:"social"`
	Experience     []entity.Experience `json:"experience"`
	Education      []entity.Education  `json:"education"`
	Date           time.Time           `json:"date"`
}

// ToProfileResponse converts a profile entity.
func ToProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		User:           OwnerResponse{ID: p.Owner.ID, Name: p.Owner.Name, Avatar: p.Owner.Avatar},
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Status:         p.Status,
		Skills:         orEmpty(p.Skills),
		Bio:            p.Bio,
		GitHubUsername: p.GitHubUsername,
		Social:         p.Social,
		Experience:     orEmpty(p.Experience),
		Education:      orEmpty(p.Education),
		Date:           p.Date,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// RepoResponse mirrors the fields of GitHub's repository object the client shows.
type RepoResponse struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Watchers    int       `json:"watchers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToRepoResponses converts repository entities.
func ToRepoResponses(repos []entity.GitHubRepo) []RepoResponse {
	out := make([]RepoResponse, 0, len(repos))
	for _, r := range repos {
		out = append(out, RepoResponse{
			Name:        r.Name,
			FullName:    r.FullName,
			HTMLURL:     r.HTMLURL,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			Watchers:    r.Watchers,
			Forks:       r.Forks,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}
