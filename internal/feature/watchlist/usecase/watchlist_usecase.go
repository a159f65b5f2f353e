// Package usecase implements the business logic for the watchlist feature.
package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	listingentity "auction_backend/internal/feature/listing/domain/entity"
)

// Outcome identifies the result of a watchlist mutation. Add and remove are
// idempotent; the outcome tells the caller whether anything changed.
type Outcome string

const (
	OutcomeAdded          Outcome = "ADDED"
	OutcomeAlreadyWatched Outcome = "ALREADY_WATCHED"
	OutcomeRemoved        Outcome = "REMOVED"
	OutcomeNotWatched     Outcome = "NOT_WATCHED"
)

// WatchedListing is a watched listing with its derived current price.
type WatchedListing struct {
	Listing listingentity.Listing
	Price   decimal.Decimal
}

// WatchlistRepository abstracts the persistence layer for watchlist
// membership. Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type WatchlistRepository interface {
	// Add inserts the (user, listing) membership, creating the user's
	// watchlist row on first use. Returns false when the pair already existed.
	Add(ctx context.Context, userID, listingID uint) (bool, error)

	// Remove deletes the (user, listing) membership.
	// Returns false when the pair did not exist.
	Remove(ctx context.Context, userID, listingID uint) (bool, error)

	// ListListings returns the user's watched listings, newest first.
	ListListings(ctx context.Context, userID uint) ([]listingentity.Listing, error)
}

// ListingFinder verifies that a listing exists before membership changes.
type ListingFinder interface {
	FindByID(ctx context.Context, id uint) (*listingentity.Listing, error)
}

// PriceResolver derives current prices for watched listings.
type PriceResolver interface {
	MaxAmounts(ctx context.Context, listingIDs []uint) (map[uint]decimal.Decimal, error)
}

// WatchlistUsecase provides idempotent add/remove of watchlist membership and
// the watchlist view.
type WatchlistUsecase struct {
	watchlists WatchlistRepository
	listings   ListingFinder
	prices     PriceResolver
}

// NewWatchlistUsecase creates a new WatchlistUsecase.
func NewWatchlistUsecase(watchlists WatchlistRepository, listings ListingFinder, prices PriceResolver) *WatchlistUsecase {
	return &WatchlistUsecase{
		watchlists: watchlists,
		listings:   listings,
		prices:     prices,
	}
}

// Add puts a listing on the user's watchlist. Watching an already-watched
// listing is a no-op reported as OutcomeAlreadyWatched, not an error.
func (u *WatchlistUsecase) Add(ctx context.Context, userID, listingID uint) (Outcome, error) {
	if _, err := u.listings.FindByID(ctx, listingID); err != nil {
		return "", err
	}
	added, err := u.watchlists.Add(ctx, userID, listingID)
	if err != nil {
		return "", fmt.Errorf("failed to add to watchlist: %w", err)
	}
	if !added {
		return OutcomeAlreadyWatched, nil
	}
	return OutcomeAdded, nil
}

// Remove takes a listing off the user's watchlist. Removing a listing that
// was never watched is a no-op reported as OutcomeNotWatched, not an error.
func (u *WatchlistUsecase) Remove(ctx context.Context, userID, listingID uint) (Outcome, error) {
	if _, err := u.listings.FindByID(ctx, listingID); err != nil {
		return "", err
	}
	removed, err := u.watchlists.Remove(ctx, userID, listingID)
	if err != nil {
		return "", fmt.Errorf("failed to remove from watchlist: %w", err)
	}
	if !removed {
		return OutcomeNotWatched, nil
	}
	return OutcomeRemoved, nil
}

// Listings returns the user's watched listings with their current prices.
func (u *WatchlistUsecase) Listings(ctx context.Context, userID uint) ([]WatchedListing, error) {
	listings, err := u.watchlists.ListListings(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	maxAmounts, err := u.prices.MaxAmounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]WatchedListing, 0, len(listings))
	for _, l := range listings {
		price := l.StartingBid
		if amount, ok := maxAmounts[l.ID]; ok {
			price = amount
		}
		out = append(out, WatchedListing{Listing: l, Price: price})
	}
	return out, nil
}
