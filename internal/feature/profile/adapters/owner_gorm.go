package adapters

import (
	"context"

	"gorm.io/gorm"

	"devconnector_backend/internal/feature/profile/domain/entity"
	"devconnector_backend/internal/feature/profile/usecase"
)

// ownerGorm reads profile owners straight from the users table.
type ownerGorm struct {
	db *gorm.DB
}

var _ usecase.OwnerLookup = (*ownerGorm)(nil)

func NewOwnerLookup(db *gorm.DB) *ownerGorm {
	return &ownerGorm{db: db}
}

type ownerRow struct {
	ID     uint
	Name   string
	Avatar string
}

// FindOwners returns the owners of ids. Unknown ids are absent from the map.
func (r *ownerGorm) FindOwners(ctx context.Context, ids []uint) (map[uint]entity.Owner, error) {
	out := make(map[uint]entity.Owner, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []ownerRow
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("id", "name", "avatar").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = entity.Owner{ID: row.ID, Name: row.Name, Avatar: row.Avatar}
	}
	return out, nil
}
