package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"devconnector_backend/internal/feature/profile/usecase"
)

// accountGorm deletes a user and everything they own in one transaction.
type accountGorm struct {
	db *gorm.DB
}

var _ usecase.AccountDeleter = (*accountGorm)(nil)

func NewAccountDeleter(db *gorm.DB) *accountGorm {
	return &accountGorm{db: db}
}

// DeleteAccount removes the user's posts, profile and user row. Either all
// three go or none do.
func (r *accountGorm) DeleteAccount(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM posts WHERE user_id = ?", userID).Error; err != nil {
			return fmt.Errorf("delete posts: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&ProfileModel{}).Error; err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if err := tx.Exec("DELETE FROM users WHERE id = ?", userID).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
