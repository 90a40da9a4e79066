// Package dto はprofileフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

import (
	"strings"
	"time"

	"devconnector_backend/internal/feature/profile/domain/entity"
)

// dateLayout is the format of from/to dates in requests.
const dateLayout = "2006-01-02"

// ProfileReq は POST /api/profile のリクエストボディです。
// skills はカンマ区切りの文字列で受け取ります。
type ProfileReq struct {
	Company        string `json:"company"`
	Website        string `json:"website" binding:"omitempty,url"`
	Location       string `json:"location"`
	Status         string `json:"status" binding:"required,notblank"`
	Skills         string `json:"skills" binding:"required,csvlist"`
	Bio            string `json:"bio"`
	GitHubUsername string `json:"githubusername"`
	YouTube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	LinkedIn       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ProfileMessages はバリデーション失敗時のメッセージです。
var ProfileMessages = map[string]string{
	"status":  "Status is required",
	"skills":  "Skills is required",
	"website": "Website must be a valid URL",
}

// ToEntity splits the skills list and assembles the social links.
func (r ProfileReq) ToEntity() entity.Profile {
	return entity.Profile{
		Company:        strings.TrimSpace(r.Company),
		Website:        strings.TrimSpace(r.Website),
		Location:       strings.TrimSpace(r.Location),
		Status:         strings.TrimSpace(r.Status),
		Skills:         splitSkills(r.Skills),
		Bio:            r.Bio,
		GitHubUsername: strings.TrimSpace(r.GitHubUsername),
		Social: entity.Social{
			YouTube:   strings.TrimSpace(r.YouTube),
			Twitter:   strings.TrimSpace(r.Twitter),
			Facebook:  strings.TrimSpace(r.Facebook),
			LinkedIn:  strings.TrimSpace(r.LinkedIn),
			Instagram: strings.TrimSpace(r.Instagram),
		},
	}
}

func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExperienceReq は PUT /api/profile/xp のリクエストボディです。
type ExperienceReq struct {
	Title       string `json:"title" binding:"required,notblank"`
	Company     string `json:"company" binding:"required,notblank"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required,datetime=2006-01-02"`
	To          string `json:"to" binding:"omitempty,datetime=2006-01-02"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ExperienceMessages はバリデーション失敗時のメッセージです。
var ExperienceMessages = map[string]string{
	"title":   "Title is required",
	"company": "Company is required",
	"from":    "From date is required (YYYY-MM-DD)",
	"to":      "To date must be YYYY-MM-DD",
}

// ToEntity converts the request. Dates have already been validated.
func (r ExperienceReq) ToEntity() entity.Experience {
	from, _ := time.Parse(dateLayout, r.From)
	return entity.Experience{
		Title:       strings.TrimSpace(r.Title),
		Company:     strings.TrimSpace(r.Company),
		Location:    strings.TrimSpace(r.Location),
		From:        from,
		To:          parseTo(r.To, r.Current),
		Current:     r.Current,
		Description: r.Description,
	}
}

// EducationReq は PUT /api/profile/edu のリクエストボディです。
type EducationReq struct {
	School       string `json:"school" binding:"required,notblank"`
	Degree       string `json:"degree" binding:"required,notblank"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required,notblank"`
	From         string `json:"from" binding:"required,datetime=2006-01-02"`
	To           string `json:"to" binding:"omitempty,datetime=2006-01-02"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// EducationMessages はバリデーション失敗時のメッセージです。
var EducationMessages = map[string]string{
	"school":       "School is required",
	"degree":       "Degree is required",
	"fieldofstudy": "Field of study is required",
	"from":         "From date is required (YYYY-MM-DD)",
	"to":           "To date must be YYYY-MM-DD",
}

// ToEntity converts the request. Dates have already been validated.
func (r EducationReq) ToEntity() entity.Education {
	from, _ := time.Parse(dateLayout, r.From)
	return entity.Education{
		School:       strings.TrimSpace(r.School),
		Degree:       strings.TrimSpace(r.Degree),
		FieldOfStudy: strings.TrimSpace(r.FieldOfStudy),
		From:         from,
		To:           parseTo(r.To, r.Current),
		Current:      r.Current,
		Description:  r.Description,
	}
}

// parseTo returns nil for an ongoing entry or an empty date.
func parseTo(s string, current bool) *time.Time {
	if current || s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
