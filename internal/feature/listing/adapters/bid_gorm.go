package adapters

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"auction_backend/internal/feature/listing/domain/entity"
	"auction_backend/internal/feature/listing/usecase"
)

// bidGorm is the GORM implementation of the BidRepository interface.
type bidGorm struct {
	db *gorm.DB
}

var _ usecase.BidRepository = (*bidGorm)(nil)

// NewBidRepository creates a new bid repository over the given database
// connection.
func NewBidRepository(db *gorm.DB) *bidGorm {
	return &bidGorm{db: db}
}

// Create persists a new bid.
func (r *bidGorm) Create(ctx context.Context, bid *entity.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

// Highest returns the maximum-amount bid for a listing, ties broken by the
// most recent bid ID. Returns usecase.ErrNoBids when none exist.
func (r *bidGorm) Highest(ctx context.Context, listingID uint) (*entity.Bid, error) {
	var bid entity.Bid
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("amount DESC, id DESC").
		First(&bid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoBids
		}
		return nil, err
	}
	return &bid, nil
}

// CountByListing returns the number of bids placed on a listing.
func (r *bidGorm) CountByListing(ctx context.Context, listingID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Bid{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MaxAmounts returns the maximum bid amount per listing in one aggregate
// query. Listings without bids are absent from the result.
func (r *bidGorm) MaxAmounts(ctx context.Context, listingIDs []uint) (map[uint]decimal.Decimal, error) {
	out := make(map[uint]decimal.Decimal, len(listingIDs))
	if len(listingIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ListingID uint
		Max       decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&entity.Bid{}).
		Select("listing_id, MAX(amount) AS max").
		Where("listing_id IN ?", listingIDs).
		Group("listing_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ListingID] = row.Max
	}
	return out, nil
}
