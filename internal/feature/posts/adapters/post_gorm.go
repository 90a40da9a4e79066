// Package adapters はpostsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"devconnector_backend/internal/feature/posts/domain/entity"
	"devconnector_backend/internal/feature/posts/usecase"
)

type postGorm struct {
	db *gorm.DB
}

var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostRepository はpostGormの新しいインスタンスを生成します。
func NewPostRepository(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// PostModel is the posts row. Likes and comments are JSON columns.
type PostModel struct {
	ID        uint             `gorm:"primaryKey"`
	UserID    uint             `gorm:"not null;index"`
	Text      string           `gorm:"type:text;not null"`
	Name      string           `gorm:"size:255"`
	Avatar    string           `gorm:"size:512"`
	Likes     []entity.Like    `gorm:"type:text;serializer:json"`
	Comments  []entity.Comment `gorm:"type:text;serializer:json"`
	CreatedAt time.Time        `gorm:"index"`
	UpdatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

func toEntity(m *PostModel) entity.Post {
	return entity.Post{
		ID:       m.ID,
		UserID:   m.UserID,
		Text:     m.Text,
		Name:     m.Name,
		Avatar:   m.Avatar,
		Likes:    nonNil(m.Likes),
		Comments: nonNil(m.Comments),
		Date:     m.CreatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	m := PostModel{
		UserID:   p.UserID,
		Text:     p.Text,
		Name:     p.Name,
		Avatar:   p.Avatar,
		Likes:    nonNil(p.Likes),
		Comments: nonNil(p.Comments),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.Date = m.CreatedAt
	return nil
}

func (r *postGorm) List(ctx context.Context) ([]entity.Post, error) {
	var rows []PostModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Post, 0, len(rows))
	for i := range rows {
		out = append(out, toEntity(&rows[i]))
	}
	return out, nil
}

func (r *postGorm) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var m PostModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	p := toEntity(&m)
	return &p, nil
}

func (r *postGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&PostModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}

func (r *postGorm) SaveLikes(ctx context.Context, p *entity.Post) error {
	return r.update(ctx, p.ID, "likes", PostModel{Likes: nonNil(p.Likes)})
}

func (r *postGorm) SaveComments(ctx context.Context, p *entity.Post) error {
	return r.update(ctx, p.ID, "comments", PostModel{Comments: nonNil(p.Comments)})
}

func (r *postGorm) update(ctx context.Context, id uint, column string, values PostModel) error {
	res := r.db.WithContext(ctx).Model(&PostModel{ID: id}).Select(column).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}
