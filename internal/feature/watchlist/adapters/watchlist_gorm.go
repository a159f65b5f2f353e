// Package adapters provides the GORM repository implementation for the
// watchlist feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	listingentity "auction_backend/internal/feature/listing/domain/entity"
	listingusecase "auction_backend/internal/feature/listing/usecase"
	"auction_backend/internal/feature/watchlist/domain/entity"
	"auction_backend/internal/feature/watchlist/usecase"
)

// watchlistGorm is the GORM implementation of the WatchlistRepository
// interface. It also serves the listing feature's WatchChecker.
type watchlistGorm struct {
	db *gorm.DB
}

var (
	_ usecase.WatchlistRepository = (*watchlistGorm)(nil)
	_ listingusecase.WatchChecker = (*watchlistGorm)(nil)
)

// NewWatchlistRepository creates a new watchlist repository over the given
// database connection.
func NewWatchlistRepository(db *gorm.DB) *watchlistGorm {
	return &watchlistGorm{db: db}
}

// Add inserts the (user, listing) membership. The user's watchlist row is
// created lazily on first use. Returns false when the pair already existed.
func (r *watchlistGorm) Add(ctx context.Context, userID, listingID uint) (bool, error) {
	watchlist := entity.Watchlist{UserID: userID}
	if err := r.db.WithContext(ctx).
		Where(entity.Watchlist{UserID: userID}).
		FirstOrCreate(&watchlist).Error; err != nil {
		return false, err
	}

	watched, err := r.exists(ctx, watchlist.ID, listingID)
	if err != nil {
		return false, err
	}
	if watched {
		return false, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&watchlist).
		Association("Listings").
		Append(&listingentity.Listing{ID: listingID}); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the (user, listing) membership.
// Returns false when the pair did not exist.
func (r *watchlistGorm) Remove(ctx context.Context, userID, listingID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`DELETE FROM watchlist_listings
		 WHERE listing_id = ?
		   AND watchlist_id IN (SELECT id FROM watchlists WHERE user_id = ?)`,
		listingID, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListListings returns the user's watched listings, newest first.
func (r *watchlistGorm) ListListings(ctx context.Context, userID uint) ([]listingentity.Listing, error) {
	var listings []listingentity.Listing
	if err := r.db.WithContext(ctx).
		Joins("JOIN watchlist_listings ON watchlist_listings.listing_id = listings.id").
		Joins("JOIN watchlists ON watchlists.id = watchlist_listings.watchlist_id").
		Where("watchlists.user_id = ?", userID).
		Order("listings.created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// IsWatched reports whether the user watches the listing.
func (r *watchlistGorm) IsWatched(ctx context.Context, userID, listingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("watchlist_listings").
		Joins("JOIN watchlists ON watchlists.id = watchlist_listings.watchlist_id").
		Where("watchlists.user_id = ? AND watchlist_listings.listing_id = ?", userID, listingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// exists reports whether the join row is already present.
func (r *watchlistGorm) exists(ctx context.Context, watchlistID, listingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("watchlist_listings").
		Where("watchlist_id = ? AND listing_id = ?", watchlistID, listingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
