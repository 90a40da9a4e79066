// Package dto はpostsフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

import (
	"time"

	"devconnector_backend/internal/feature/posts/domain/entity"
)

// TextReq は投稿・コメント作成のリクエストボディです。
type TextReq struct {
	Text string `json:"text" binding:"required,notblank"`
}

// TextMessages はバリデーション失敗時のメッセージです。
var TextMessages = map[string]string{
	"text": "Text is required",
}

// PostResponse is a post as returned to clients.
type PostResponse struct {
	ID       uint             `json:"_id"`
	User     uint             `json:"user"`
	Text     string           `json:"text"`
	Name     string           `json:"name"`
	Avatar   string           `json:"avatar"`
	Likes    []entity.Like    `json:"likes"`
	Comments []entity.Comment `json:"comments"`
	Date     time.Time        `json:"date"`
}

// ToPostResponse converts a post entity.
func ToPostResponse(p *entity.Post) PostResponse {
	return PostResponse{
		ID:       p.ID,
		User:     p.UserID,
		Text:     p.Text,
		Name:     p.Name,
		Avatar:   p.Avatar,
		Likes:    Likes(p.Likes),
		Comments: Comments(p.Comments),
		Date:     p.Date,
	}
}

// Likes renders a nil list as [].
func Likes(ls []entity.Like) []entity.Like {
	if ls == nil {
		return []entity.Like{}
	}
	return ls
}

// Comments renders a nil list as [].
func Comments(cs []entity.Comment) []entity.Comment {
	if cs == nil {
		return []entity.Comment{}
	}
	return cs
}
