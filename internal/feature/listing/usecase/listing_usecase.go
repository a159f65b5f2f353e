package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"auction_backend/internal/feature/listing/domain/entity"
)

// DeletedUserPlaceholder is rendered in place of the username when the
// referenced account no longer exists.
const DeletedUserPlaceholder = "deleted user"

// ListingSummary is a listing together with its derived current price, as
// shown on index, category and watchlist pages.
type ListingSummary struct {
	Listing entity.Listing
	Price   decimal.Decimal
}

// CommentView is a comment with its author resolved for presentation.
type CommentView struct {
	Comment entity.Comment
	Author  string
}

// ListingDetail is the full detail view of one listing.
type ListingDetail struct {
	Listing  entity.Listing
	Price    decimal.Decimal
	BidCount int64
	Comments []CommentView

	// Winner is the winning user's name, set only on closed listings that
	// had bids. Falls back to DeletedUserPlaceholder if the account is gone.
	Winner string

	// Viewer flags, populated only when the request carried a valid token.
	IsOwner  bool
	IsWinner bool
	Watched  bool
}

// CategoryView pairs a category code with its human-readable label.
type CategoryView struct {
	Code  entity.Category
	Label string
}

// NewListingInput carries the owner-supplied fields of a new listing.
type NewListingInput struct {
	OwnerID     uint
	Title       string
	Description string
	StartingBid decimal.Decimal
	ImageURL    string
	Category    entity.Category
}

// ListingUsecase provides listing creation, browsing and the detail view.
type ListingUsecase struct {
	listings ListingRepository
	bids     BidRepository
	comments CommentRepository
	users    UserDirectory
	watches  WatchChecker
}

// NewListingUsecase creates a new ListingUsecase.
func NewListingUsecase(listings ListingRepository, bids BidRepository,
	comments CommentRepository, users UserDirectory, watches WatchChecker) *ListingUsecase {
	return &ListingUsecase{
		listings: listings,
		bids:     bids,
		comments: comments,
		users:    users,
		watches:  watches,
	}
}

// Create persists a new listing for the given owner.
func (u *ListingUsecase) Create(ctx context.Context, in NewListingInput) (*entity.Listing, error) {
	if in.Category == "" {
		in.Category = entity.CategoryOther
	}
	if !in.Category.Valid() {
		return nil, ErrUnknownCategory
	}
	if !in.StartingBid.IsPositive() {
		return nil, ErrInvalidAmount
	}
	listing := &entity.Listing{
		OwnerID:     in.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		StartingBid: in.StartingBid,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Active:      true,
	}
	if err := u.listings.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

// ListActive returns all active listings with their current prices.
func (u *ListingUsecase) ListActive(ctx context.Context) ([]ListingSummary, error) {
	listings, err := u.listings.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return u.summarize(ctx, listings)
}

// ListByCategory returns the active listings of one category with their
// current prices. Unknown codes yield ErrUnknownCategory.
func (u *ListingUsecase) ListByCategory(ctx context.Context, category entity.Category) ([]ListingSummary, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	listings, err := u.listings.ListActiveByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return u.summarize(ctx, listings)
}

// Categories returns the fixed category list in presentation order.
func (u *ListingUsecase) Categories() []CategoryView {
	codes := entity.Categories()
	out := make([]CategoryView, 0, len(codes))
	for _, c := range codes {
		out = append(out, CategoryView{Code: c, Label: c.Label()})
	}
	return out
}

// Detail assembles the full detail view of a listing: derived price, bid
// count, comments with resolved authors, winner name, and (when viewerID is
// non-nil) the viewer's ownership, winner and watchlist flags.
func (u *ListingUsecase) Detail(ctx context.Context, id uint, viewerID *uint) (*ListingDetail, error) {
	listing, err := u.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ListingDetail{Listing: *listing, Price: listing.StartingBid}

	highest, err := u.bids.Highest(ctx, id)
	switch {
	case err == nil:
		detail.Price = highest.Amount
	case err != ErrNoBids:
		return nil, err
	}

	if detail.BidCount, err = u.bids.CountByListing(ctx, id); err != nil {
		return nil, err
	}

	comments, err := u.comments.ListByListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail.Comments, err = u.resolveComments(ctx, comments); err != nil {
		return nil, err
	}

	if listing.WinnerID != nil {
		names, err := u.users.UsernamesByID(ctx, []uint{*listing.WinnerID})
		if err != nil {
			return nil, err
		}
		detail.Winner = DeletedUserPlaceholder
		if name, ok := names[*listing.WinnerID]; ok {
			detail.Winner = name
		}
	}

	if viewerID != nil {
		detail.IsOwner = *viewerID == listing.OwnerID
		detail.IsWinner = listing.WinnerID != nil && *listing.WinnerID == *viewerID
		if detail.Watched, err = u.watches.IsWatched(ctx, *viewerID, id); err != nil {
			return nil, err
		}
	}

	return detail, nil
}

// AddComment appends a comment by the given author to a listing.
func (u *ListingUsecase) AddComment(ctx context.Context, listingID, authorID uint, content string) (*entity.Comment, error) {
	if _, err := u.listings.FindByID(ctx, listingID); err != nil {
		return nil, err
	}
	comment := &entity.Comment{
		Content:   content,
		AuthorID:  &authorID,
		ListingID: listingID,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// summarize attaches current prices to listings using one aggregate query.
func (u *ListingUsecase) summarize(ctx context.Context, listings []entity.Listing) ([]ListingSummary, error) {
	ids := make([]uint, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	maxAmounts, err := u.bids.MaxAmounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]ListingSummary, 0, len(listings))
	for _, l := range listings {
		price := l.StartingBid
		if amount, ok := maxAmounts[l.ID]; ok {
			price = amount
		}
		out = append(out, ListingSummary{Listing: l, Price: price})
	}
	return out, nil
}

// resolveComments attaches author usernames, substituting the tombstone
// placeholder for deleted accounts.
func (u *ListingUsecase) resolveComments(ctx context.Context, comments []entity.Comment) ([]CommentView, error) {
	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		if c.AuthorID != nil {
			ids = append(ids, *c.AuthorID)
		}
	}
	names := map[uint]string{}
	if len(ids) > 0 {
		var err error
		if names, err = u.users.UsernamesByID(ctx, ids); err != nil {
			return nil, err
		}
	}
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		author := DeletedUserPlaceholder
		if c.AuthorID != nil {
			if name, ok := names[*c.AuthorID]; ok {
				author = name
			}
		}
		out = append(out, CommentView{Comment: c, Author: author})
	}
	return out, nil
}
