package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is a monetary offer against a listing. Bids are append-only and
// immutable once created; validity is enforced by the bidding usecase, not by
// the storage layer.
type Bid struct {
	ID uint `gorm:"primaryKey"`

	// Amount is the offered price, fixed-point with two fractional digits.
	Amount decimal.Decimal `gorm:"type:decimal(11,2);not null"`

	// BidderID references the user who placed the bid.
	BidderID uint `gorm:"index;not null"`

	// ListingID references the listing the bid was placed on. Bids are
	// cascade-deleted with their listing.
	ListingID uint `gorm:"index;not null;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}
