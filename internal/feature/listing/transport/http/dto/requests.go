// Package dto defines data transfer objects for the listing feature's HTTP
// transport layer.
package dto

import "github.com/shopspring/decimal"

// CreateListingReq represents the request body for creating a listing.
// Monetary amounts are decimal to keep two-digit fixed-point semantics exact;
// clients may send them as JSON numbers or strings.
type CreateListingReq struct {
	Title       string          `json:"title" binding:"required,max=128"`
	Description string          `json:"description" binding:"required"`
	StartingBid decimal.Decimal `json:"starting_bid" binding:"required"`
	ImageURL    string          `json:"image_url" binding:"omitempty,url,max=512"`
	Category    string          `json:"category" binding:"omitempty,max=16"`
}

// BidReq represents the request body for placing a bid.
type BidReq struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CommentReq represents the request body for adding a comment.
type CommentReq struct {
	Content string `json:"content" binding:"required"`
}
