// Package adapters はprofileフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"devconnector_backend/internal/feature/profile/domain/entity"
	"devconnector_backend/internal/feature/profile/usecase"
)

type profileGorm struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileRepository はprofileGormの新しいインスタンスを生成します。
func NewProfileRepository(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

// ProfileModel is the profiles row. Sub-document lists live in JSON columns
// so a profile is read and written as one row.
type ProfileModel struct {
	ID             uint                `gorm:"primaryKey"`
	UserID         uint                `gorm:"not null;uniqueIndex"`
	Company        string              `gorm:"size:255"`
	Website        string              `gorm:"size:512"`
	Location       string              `gorm:"size:255"`
	Status         string              `gorm:"size:255;not null"`
	Skills         []string            `gorm:"type:text;serializer:json"`
	Bio            string              `gorm:"type:text"`
	GitHubUsername string              `gorm:"column:github_username;size:255"`
	Social         entity.Social       `gorm:"type:text;serializer:json"`
	Experience     []entity.Experience `gorm:"type:text;serializer:json"`
	Education      []entity.Education  `gorm:"type:text;serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func toModel(p *entity.Profile) ProfileModel {
	return ProfileModel{
		ID:             p.ID,
		UserID:         p.UserID,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Status:         p.Status,
		Skills:         nonNil(p.Skills),
		Bio:            p.Bio,
		GitHubUsername: p.GitHubUsername,
		Social:         p.Social,
		Experience:     nonNil(p.Experience),
		Education:      nonNil(p.Education),
	}
}

func toEntity(m *ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:             m.ID,
		UserID:         m.UserID,
		Company:        m.Company,
		Website:        m.Website,
		Location:       m.Location,
		Status:         m.Status,
		Skills:         nonNil(m.Skills),
		Bio:            m.Bio,
		GitHubUsername: m.GitHubUsername,
		Social:         m.Social,
		Experience:     nonNil(m.Experience),
		Education:      nonNil(m.Education),
		Date:           m.CreatedAt,
	}
}

// nonNil keeps empty lists as [] in both the JSON columns and responses.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *profileGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var m ProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

func (r *profileGorm) List(ctx context.Context) ([]entity.Profile, error) {
	var rows []ProfileModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Profile, 0, len(rows))
	for i := range rows {
		out = append(out, *toEntity(&rows[i]))
	}
	return out, nil
}

// Upsert inserts the profile or, when the user already has one, overwrites
// its scalar fields and social links.
func (r *profileGorm) Upsert(ctx context.Context, p *entity.Profile) error {
	m := toModel(p)
	m.ID = 0
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company", "website", "location", "status", "skills",
			"bio", "github_username", "social", "updated_at",
		}),
	}).Create(&m).Error
}

func (r *profileGorm) SaveHistory(ctx context.Context, p *entity.Profile) error {
	res := r.db.WithContext(ctx).
		Model(&ProfileModel{ID: p.ID}).
		Select("experience", "education").
		Updates(ProfileModel{
			Experience: nonNil(p.Experience),
			Education:  nonNil(p.Education),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProfileNotFound
	}
	return nil
}
