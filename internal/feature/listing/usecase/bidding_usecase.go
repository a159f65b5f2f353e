package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"auction_backend/internal/feature/listing/domain/entity"
	"auction_backend/internal/shared/keylock"
)

// CloseResult reports the outcome of closing an auction.
type CloseResult struct {
	// WinnerID is nil when the listing closed without bids.
	WinnerID *uint

	// Winner is the winning user's name, or DeletedUserPlaceholder if the
	// account no longer exists. Empty when there was no winner.
	Winner string
}

// BiddingUsecase implements the bid evaluator and the auction closer.
//
// Both operations are check-then-act sequences over shared state (read the
// current highest bid, then conditionally write). They are serialized per
// listing with a keyed mutex so two concurrent bids can never both pass the
// comparison against a stale price, and two concurrent closers can never both
// succeed.
type BiddingUsecase struct {
	listings ListingRepository
	bids     BidRepository
	users    UserDirectory
	locks    *keylock.KeyedMutex
}

// NewBiddingUsecase creates a new BiddingUsecase.
func NewBiddingUsecase(listings ListingRepository, bids BidRepository, users UserDirectory) *BiddingUsecase {
	return &BiddingUsecase{
		listings: listings,
		bids:     bids,
		users:    users,
		locks:    keylock.NewKeyedMutex(),
	}
}

// PlaceBid evaluates and, when accepted, records a bid.
//
// Acceptance rules:
//   - the listing must exist and be active
//   - once any bid exists, a new bid must strictly exceed the highest one
//     (equality is rejected)
//   - the first bid must be at least the starting bid (equality is accepted)
//
// Rejection leaves no side effect; acceptance persists exactly one bid row.
func (u *BiddingUsecase) PlaceBid(ctx context.Context, listingID, bidderID uint, amount decimal.Decimal) (*entity.Bid, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	unlock := u.locks.Lock(listingID)
	defer unlock()

	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.Active {
		return nil, ErrListingClosed
	}

	highest, err := u.bids.Highest(ctx, listingID)
	switch {
	case err == nil:
		if amount.LessThanOrEqual(highest.Amount) {
			return nil, ErrBidTooLow
		}
	case errors.Is(err, ErrNoBids):
		if amount.LessThan(listing.StartingBid) {
			return nil, ErrBelowStartingPrice
		}
	default:
		return nil, fmt.Errorf("failed to look up highest bid: %w", err)
	}

	bid := &entity.Bid{
		Amount:    amount,
		BidderID:  bidderID,
		ListingID: listingID,
	}
	if err := u.bids.Create(ctx, bid); err != nil {
		return nil, fmt.Errorf("failed to record bid: %w", err)
	}
	return bid, nil
}

// Close deactivates a listing and assigns the winner, if any.
//
// Only the owner may close. The winner is the bidder of the highest bid
// (ties broken by the most recent bid); a listing without bids closes with
// no winner. The active flag and the winner are written together in one
// conditional update, and re-closing yields ErrAlreadyClosed.
func (u *BiddingUsecase) Close(ctx context.Context, listingID, requesterID uint) (*CloseResult, error) {
	unlock := u.locks.Lock(listingID)
	defer unlock()

	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != requesterID {
		return nil, ErrNotOwner
	}
	if !listing.Active {
		return nil, ErrAlreadyClosed
	}

	var winnerID *uint
	highest, err := u.bids.Highest(ctx, listingID)
	switch {
	case err == nil:
		winnerID = &highest.BidderID
	case errors.Is(err, ErrNoBids):
		// Closed with no bids: winner stays nil.
	default:
		return nil, fmt.Errorf("failed to look up highest bid: %w", err)
	}

	if err := u.listings.Close(ctx, listingID, winnerID); err != nil {
		return nil, err
	}

	result := &CloseResult{WinnerID: winnerID}
	if winnerID != nil {
		names, err := u.users.UsernamesByID(ctx, []uint{*winnerID})
		if err != nil {
			return nil, err
		}
		result.Winner = DeletedUserPlaceholder
		if name, ok := names[*winnerID]; ok {
			result.Winner = name
		}
	}
	return result, nil
}
