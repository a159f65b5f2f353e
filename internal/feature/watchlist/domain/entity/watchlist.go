// Package entity defines the domain entities for the watchlist feature.
package entity

import (
	"time"

	listingentity "auction_backend/internal/feature/listing/domain/entity"
)

// Watchlist is a user's saved set of listings of interest. Each user has at
// most one watchlist row, created lazily on the first add; membership lives
// in the watchlist_listings join table with no duplicates.
type Watchlist struct {
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user; one watchlist per user.
	UserID uint `gorm:"uniqueIndex;not null"`

	// Listings is the watched set.
	Listings []listingentity.Listing `gorm:"many2many:watchlist_listings"`

	CreatedAt time.Time
}
