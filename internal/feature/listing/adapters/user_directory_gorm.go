package adapters

import (
	"context"

	"gorm.io/gorm"

	authentity "auction_backend/internal/feature/auth/domain/entity"
	"auction_backend/internal/feature/listing/usecase"
)

// userDirectoryGorm resolves user IDs to usernames from the users table.
type userDirectoryGorm struct {
	db *gorm.DB
}

var _ usecase.UserDirectory = (*userDirectoryGorm)(nil)

// NewUserDirectory creates a new user directory over the given database
// connection.
func NewUserDirectory(db *gorm.DB) *userDirectoryGorm {
	return &userDirectoryGorm{db: db}
}

// UsernamesByID returns the username for each existing user ID. Deleted users
// are simply absent from the result; callers render their own placeholder.
func (r *userDirectoryGorm) UsernamesByID(ctx context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		ID       uint
		Username string
	}
	if err := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Select("id, username").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ID] = row.Username
	}
	return out, nil
}
