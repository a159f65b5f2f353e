package dto

import (
	"time"

	"auction_backend/internal/feature/listing/usecase"
)

// ListingItem is one listing on index, category and watchlist pages.
// Monetary values are rendered as fixed-point strings.
type ListingItem struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartingBid   string    `json:"starting_bid"`
	CurrentPrice  string    `json:"current_price"`
	ImageURL      string    `json:"image_url,omitempty"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Active        bool      `json:"active"`
	OwnerID       uint      `json:"owner_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// CommentItem is one comment on the detail page. Author is the username or
// the deleted-user placeholder.
type CommentItem struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ListingDetailResponse is the body of the listing detail endpoint. The
// viewer flags are meaningful only when the request carried a valid token.
type ListingDetailResponse struct {
	ListingItem
	BidCount int64         `json:"bid_count"`
	Comments []CommentItem `json:"comments"`
	Winner   string        `json:"winner,omitempty"`
	IsOwner  bool          `json:"is_owner"`
	IsWinner bool          `json:"is_winner"`
	Watched  bool          `json:"watched"`
}

// BidResponse is the body returned for an accepted bid.
type BidResponse struct {
	ID           uint      `json:"id"`
	ListingID    uint      `json:"listing_id"`
	Amount       string    `json:"amount"`
	CurrentPrice string    `json:"current_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// CommentResponse is the body returned for a created comment.
type CommentResponse struct {
	ID        uint      `json:"id"`
	ListingID uint      `json:"listing_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryItem is one entry of the category list.
type CategoryItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CloseResponse is the body returned after closing an auction.
type CloseResponse struct {
	ListingID uint   `json:"listing_id"`
	Winner    string `json:"winner,omitempty"`
	WinnerID  *uint  `json:"winner_id,omitempty"`
}

// NewListingItem converts a usecase summary into its response shape.
func NewListingItem(s usecase.ListingSummary) ListingItem {
	return ListingItem{
		ID:            s.Listing.ID,
		Title:         s.Listing.Title,
		Description:   s.Listing.Description,
		StartingBid:   s.Listing.StartingBid.StringFixed(2),
		CurrentPrice:  s.Price.StringFixed(2),
		ImageURL:      s.Listing.ImageURL,
		Category:      string(s.Listing.Category),
		CategoryLabel: s.Listing.Category.Label(),
		Active:        s.Listing.Active,
		OwnerID:       s.Listing.OwnerID,
		CreatedAt:     s.Listing.CreatedAt,
	}
}

// NewListingDetailResponse converts a usecase detail view into its response
// shape.
func NewListingDetailResponse(d *usecase.ListingDetail) ListingDetailResponse {
	comments := make([]CommentItem, 0, len(d.Comments))
	for _, cv := range d.Comments {
		comments = append(comments, CommentItem{
			ID:        cv.Comment.ID,
			Author:    cv.Author,
			Content:   cv.Comment.Content,
			CreatedAt: cv.Comment.CreatedAt,
		})
	}
	return ListingDetailResponse{
		ListingItem: NewListingItem(usecase.ListingSummary{Listing: d.Listing, Price: d.Price}),
		BidCount:    d.BidCount,
		Comments:    comments,
		Winner:      d.Winner,
		IsOwner:     d.IsOwner,
		IsWinner:    d.IsWinner,
		Watched:     d.Watched,
	}
}
