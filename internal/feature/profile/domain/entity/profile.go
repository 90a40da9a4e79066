// Package entity defines the domain entities for the profile feature.
package entity

import (
	"slices"
	"time"
)

// Profile is a developer's public page. Each user has at most one.
type Profile struct {
	ID             uint
	UserID         uint
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         []string
	Bio            string
	GitHubUsername string
	Social         Social
	// Experience and Education are ordered newest first.
	Experience []Experience
	Education  []Education
	Date       time.Time

	// Owner is filled in when the profile is read; it is not persisted.
	Owner Owner
}

// Owner is the public part of the user a profile belongs to.
type Owner struct {
	ID     uint
	Name   string
	Avatar string
}

// Social holds optional links to the owner's social accounts.
type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is one job entry.
type Experience struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is one school entry.
type Education struct {
	ID           string     `json:"_id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// AddExperience puts e at the front of the list.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

// RemoveExperience removes the entry whose ID is id and reports whether one was found.
func (p *Profile) RemoveExperience(id string) bool {
	i := slices.IndexFunc(p.Experience, func(e Experience) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	p.Experience = slices.Delete(p.Experience, i, i+1)
	return true
}

// AddEducation puts e at the front of the list.
func (p *Profile) AddEducation(e Education) {
	p.Education = append([]Education{e}, p.Education...)
}

// RemoveEducation removes the entry whose ID is id and reports whether one was found.
func (p *Profile) RemoveEducation(id string) bool {
	i := slices.IndexFunc(p.Education, func(e Education) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	p.Education = slices.Delete(p.Education, i, i+1)
	return true
}
