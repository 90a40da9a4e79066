package dto

import (
	"time"

	"devconnector_backend/internal/feature/auth/domain/entity"
)

// UserResponse is a user without the password hash.
type UserResponse struct {
	ID     uint      `json:"_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// ToUserResponse converts an entity.User into its public shape.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Date:   u.CreatedAt,
	}
}
