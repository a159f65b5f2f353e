// Package adapters provides the GORM repository implementations for the
// listing feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"auction_backend/internal/feature/listing/domain/entity"
	"auction_backend/internal/feature/listing/usecase"
)

// listingGorm is the GORM implementation of the ListingRepository interface.
type listingGorm struct {
	db *gorm.DB
}

// Compile-time check that listingGorm implements ListingRepository.
var _ usecase.ListingRepository = (*listingGorm)(nil)

// NewListingRepository creates a new listing repository over the given
// database connection.
func NewListingRepository(db *gorm.DB) *listingGorm {
	return &listingGorm{db: db}
}

// Create persists a new listing.
func (r *listingGorm) Create(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// FindByID retrieves a listing by ID.
// Returns usecase.ErrListingNotFound when no such listing exists.
func (r *listingGorm) FindByID(ctx context.Context, id uint) (*entity.Listing, error) {
	var listing entity.Listing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// ListActive returns all active listings, newest first.
func (r *listingGorm) ListActive(ctx context.Context) ([]entity.Listing, error) {
	var listings []entity.Listing
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// ListActiveByCategory returns active listings in a category, newest first.
func (r *listingGorm) ListActiveByCategory(ctx context.Context, category entity.Category) ([]entity.Listing, error) {
	var listings []entity.Listing
	if err := r.db.WithContext(ctx).
		Where("active = ? AND category = ?", true, category).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// Close deactivates the listing and records the winner in one UPDATE guarded
// by active = true, so the flag and the winner change together exactly once.
// Returns usecase.ErrAlreadyClosed when the listing was already inactive and
// usecase.ErrListingNotFound when it does not exist.
func (r *listingGorm) Close(ctx context.Context, id uint, winnerID *uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"active":    false,
			"winner_id": winnerID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entity.Listing{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return usecase.ErrListingNotFound
		}
		return usecase.ErrAlreadyClosed
	}
	return nil
}
