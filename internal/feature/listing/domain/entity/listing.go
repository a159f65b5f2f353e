// Package entity defines the domain entities for the listing feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing represents an item up for auction.
// A listing is mutable only through new bids and comments and through the
// single irreversible active→inactive transition performed at closing.
type Listing struct {
	// ID is the unique identifier for the listing.
	ID uint `gorm:"primaryKey"`

	// OwnerID references the user who created the listing.
	OwnerID uint `gorm:"index;not null"`

	// Title is a short name for the auctioned item.
	Title string `gorm:"size:128;not null"`

	// Description is the free-form item description.
	Description string `gorm:"type:text;not null"`

	// StartingBid is the minimum acceptable first bid, fixed-point with two
	// fractional digits.
	StartingBid decimal.Decimal `gorm:"type:decimal(11,2);not null"`

	// ImageURL optionally points at an item picture.
	ImageURL string `gorm:"size:512"`

	// Category is the listing's category code (see Category).
	Category Category `gorm:"size:16;not null;default:other"`

	// Active reports whether the auction is still open for bids.
	Active bool `gorm:"not null;default:true;index"`

	// WinnerID is set exactly once, at closing, to the highest bidder.
	// It is nil while the listing is active and stays nil when the listing
	// closed without bids. SET NULL keeps closed listings readable after the
	// winning account is deleted.
	WinnerID *uint `gorm:"constraint:OnDelete:SET NULL"`

	// CreatedAt is set at creation and never updated.
	CreatedAt time.Time
}

// CurrentPrice derives the listing's display price from the highest bid,
// falling back to the starting bid when no bid exists. The value is computed
// at read time and never persisted.
func (l *Listing) CurrentPrice(highest *decimal.Decimal) decimal.Decimal {
	if highest != nil {
		return *highest
	}
	return l.StartingBid
}
