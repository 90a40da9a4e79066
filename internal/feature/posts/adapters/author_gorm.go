package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devconnector_backend/internal/feature/posts/domain/entity"
	"devconnector_backend/internal/feature/posts/usecase"
)

// authorGorm reads post authors from the users table.
type authorGorm struct {
	db *gorm.DB
}

var _ usecase.AuthorLookup = (*authorGorm)(nil)

func NewAuthorLookup(db *gorm.DB) *authorGorm {
	return &authorGorm{db: db}
}

type authorRow struct {
	ID     uint
	Name   string
	Avatar string
}

func (r *authorGorm) FindAuthor(ctx context.Context, userID uint) (entity.Author, error) {
	var row authorRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id", "name", "avatar").
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Author{}, usecase.ErrUserNotFound
		}
		return entity.Author{}, err
	}
	return entity.Author{ID: row.ID, Name: row.Name, Avatar: row.Avatar}, nil
}
