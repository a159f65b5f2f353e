// Package usecase implements the business logic for the listing feature.
package usecase

import "errors"

var (
	// ErrListingNotFound is returned when no listing exists with the given ID.
	ErrListingNotFound = errors.New("listing not found")

	// ErrNoBids is returned by bid lookups on a listing without bids.
	ErrNoBids = errors.New("no bids placed on listing")

	// ErrInvalidAmount is returned for non-positive bid amounts.
	ErrInvalidAmount = errors.New("bid amount must be positive")

	// ErrBidTooLow is returned when a bid does not strictly exceed the
	// current highest bid.
	ErrBidTooLow = errors.New("bid must exceed current highest bid")

	// ErrBelowStartingPrice is returned when the first bid on a listing is
	// below the starting bid.
	ErrBelowStartingPrice = errors.New("bid must be at least the starting bid")

	// ErrListingClosed is returned when bidding on an inactive listing.
	ErrListingClosed = errors.New("listing is closed")

	// ErrAlreadyClosed is returned when closing a listing that is already
	// inactive.
	ErrAlreadyClosed = errors.New("listing already closed")

	// ErrNotOwner is returned when a requester other than the listing owner
	// attempts to close it.
	ErrNotOwner = errors.New("only the listing owner may close the auction")

	// ErrUnknownCategory is returned for category codes outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")
)
