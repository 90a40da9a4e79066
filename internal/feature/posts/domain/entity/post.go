// Package entity defines the domain entities for the posts feature.
package entity

import (
	"slices"
	"time"
)

// Post is a short text published by a user. Name and Avatar are copied from
// the author when the post is created.
type Post struct {
	ID     uint
	UserID uint
	Text   string
	Name   string
	Avatar string
	// Likes and Comments are ordered newest first.
	Likes    []Like
	Comments []Comment
	Date     time.Time
}

// Like records that a user liked a post. A user likes a post at most once.
type Like struct {
	UserID uint `json:"user"`
}

// Comment is a reply to a post.
type Comment struct {
	ID     string    `json:"_id"`
	UserID uint      `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// Author is the public identity copied onto posts and comments.
type Author struct {
	ID     uint
	Name   string
	Avatar string
}

// LikedBy reports whether userID already likes the post.
func (p *Post) LikedBy(userID uint) bool {
	return slices.ContainsFunc(p.Likes, func(l Like) bool { return l.UserID == userID })
}

// Like adds userID's like in front. It returns false if the like already exists.
func (p *Post) Like(userID uint) bool {
	if p.LikedBy(userID) {
		return false
	}
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
	return true
}

// Unlike removes userID's like. It returns false if there was none.
func (p *Post) Unlike(userID uint) bool {
	i := slices.IndexFunc(p.Likes, func(l Like) bool { return l.UserID == userID })
	if i < 0 {
		return false
	}
	p.Likes = slices.Delete(p.Likes, i, i+1)
	return true
}

// AddComment puts c in front of the comments.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// Comment returns the comment with the given id.
func (p *Post) Comment(id string) (Comment, bool) {
	i := slices.IndexFunc(p.Comments, func(c Comment) bool { return c.ID == id })
	if i < 0 {
		return Comment{}, false
	}
	return p.Comments[i], true
}

// RemoveComment deletes the comment with the given id and reports whether it existed.
func (p *Post) RemoveComment(id string) bool {
	i := slices.IndexFunc(p.Comments, func(c Comment) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	p.Comments = slices.Delete(p.Comments, i, i+1)
	return true
}
