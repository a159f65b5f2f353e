package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"auction_backend/internal/feature/listing/domain/entity"
)

// ListingRepository abstracts the persistence layer for listings.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by ID.
	// Returns ErrListingNotFound when no such listing exists.
	FindByID(ctx context.Context, id uint) (*entity.Listing, error)

	// ListActive returns all active listings, newest first.
	ListActive(ctx context.Context) ([]entity.Listing, error)

	// ListActiveByCategory returns active listings in a category, newest first.
	ListActiveByCategory(ctx context.Context, category entity.Category) ([]entity.Listing, error)

	// Close flips the listing to inactive and records the winner in a single
	// conditional write guarded by active = true, so the flag and the winner
	// are never observed out of step. Returns ErrAlreadyClosed when the
	// listing was not active.
	Close(ctx context.Context, id uint, winnerID *uint) error
}

// BidRepository abstracts the persistence layer for bids.
type BidRepository interface {
	// Create persists a new bid.
	Create(ctx context.Context, bid *entity.Bid) error

	// Highest returns the bid with the maximum amount for a listing, ties
	// broken by the most recent bid ID. Returns ErrNoBids when the listing
	// has no bids.
	Highest(ctx context.Context, listingID uint) (*entity.Bid, error)

	// CountByListing returns the number of bids placed on a listing.
	CountByListing(ctx context.Context, listingID uint) (int64, error)

	// MaxAmounts returns the maximum bid amount per listing for the given
	// listing IDs. Listings without bids are absent from the result.
	MaxAmounts(ctx context.Context, listingIDs []uint) (map[uint]decimal.Decimal, error)
}

// CommentRepository abstracts the persistence layer for comments.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByListing returns a listing's comments, oldest first.
	ListByListing(ctx context.Context, listingID uint) ([]entity.Comment, error)
}

// UserDirectory resolves user IDs to usernames for presentation.
type UserDirectory interface {
	// UsernamesByID returns the username for each existing user ID; deleted
	// users are absent from the result.
	UsernamesByID(ctx context.Context, ids []uint) (map[uint]string, error)
}

// WatchChecker reports watchlist membership for the detail view.
type WatchChecker interface {
	IsWatched(ctx context.Context, userID, listingID uint) (bool, error)
}
