// Package handler provides the HTTP handlers for the listing feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction_backend/internal/api"
	"auction_backend/internal/feature/listing/domain/entity"
	"auction_backend/internal/feature/listing/transport/http/dto"
	"auction_backend/internal/feature/listing/usecase"
	jwtmw "auction_backend/internal/platform/jwt"
)

// ListingUsecase defines the listing browse/create operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ListingUsecase interface {
	Create(ctx context.Context, in usecase.NewListingInput) (*entity.Listing, error)
	ListActive(ctx context.Context) ([]usecase.ListingSummary, error)
	ListByCategory(ctx context.Context, category entity.Category) ([]usecase.ListingSummary, error)
	Categories() []usecase.CategoryView
	Detail(ctx context.Context, id uint, viewerID *uint) (*usecase.ListingDetail, error)
	AddComment(ctx context.Context, listingID, authorID uint, content string) (*entity.Comment, error)
}

// BiddingUsecase defines the bid evaluator and auction closer operations.
type BiddingUsecase interface {
	PlaceBid(ctx context.Context, listingID, bidderID uint, amount decimal.Decimal) (*entity.Bid, error)
	Close(ctx context.Context, listingID, requesterID uint) (*usecase.CloseResult, error)
}

// ListingHandler handles HTTP requests for listings, bids and comments.
type ListingHandler struct {
	listings ListingUsecase
	bidding  BiddingUsecase
}

// NewListingHandler creates a new ListingHandler instance.
func NewListingHandler(listings ListingUsecase, bidding BiddingUsecase) *ListingHandler {
	return &ListingHandler{listings: listings, bidding: bidding}
}

// listingID parses the :id path parameter.
func listingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return 0, false
	}
	return uint(id), true
}

// respondError translates usecase sentinel errors into HTTP statuses with
// stable business codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrListingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error(), Code: api.CodeNotFound})
	case errors.Is(err, usecase.ErrUnknownCategory):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error(), Code: api.CodeUnknownCategory})
	case errors.Is(err, usecase.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: api.CodeInvalidAmount})
	case errors.Is(err, usecase.ErrBidTooLow):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error(), Code: api.CodeBidTooLow})
	case errors.Is(err, usecase.ErrBelowStartingPrice):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error(), Code: api.CodeBelowStartingPrice})
	case errors.Is(err, usecase.ErrListingClosed):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error(), Code: api.CodeListingClosed})
	case errors.Is(err, usecase.ErrAlreadyClosed):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error(), Code: api.CodeAlreadyClosed})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error(), Code: api.CodeNotOwner})
	default:
		slog.Error("listing request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// List returns all active listings with their current prices.
func (h *ListingHandler) List(c *gin.Context) {
	summaries, err := h.listings.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ListingItem, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.NewListingItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// Detail returns one listing with derived price, bid count, comments and,
// for authenticated viewers, ownership/winner/watchlist flags.
func (h *ListingHandler) Detail(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	var viewerID *uint
	if uid, ok := jwtmw.UserID(c); ok {
		viewerID = &uid
	}

	detail, err := h.listings.Detail(c.Request.Context(), id, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListingDetailResponse(detail))
}

// Create handles authenticated listing creation.
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.listings.Create(c.Request.Context(), usecase.NewListingInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		StartingBid: req.StartingBid,
		ImageURL:    req.ImageURL,
		Category:    entity.Category(req.Category),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("listing created", "listing_id", listing.ID, "owner_id", userID)
	c.JSON(http.StatusCreated, dto.NewListingItem(usecase.ListingSummary{
		Listing: *listing,
		Price:   listing.StartingBid,
	}))
}

// PlaceBid handles bid submission on a listing.
func (h *ListingHandler) PlaceBid(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req dto.BidReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	bid, err := h.bidding.PlaceBid(c.Request.Context(), id, userID, req.Amount)
	if err != nil {
		slog.Warn("bid rejected", "listing_id", id, "bidder_id", userID,
			"amount", req.Amount.StringFixed(2), "error", err)
		respondError(c, err)
		return
	}

	slog.Info("bid placed", "listing_id", id, "bidder_id", userID, "amount", bid.Amount.StringFixed(2))
	c.JSON(http.StatusCreated, dto.BidResponse{
		ID:           bid.ID,
		ListingID:    bid.ListingID,
		Amount:       bid.Amount.StringFixed(2),
		CurrentPrice: bid.Amount.StringFixed(2),
		CreatedAt:    bid.CreatedAt,
	})
}

// AddComment handles authenticated comment submission.
func (h *ListingHandler) AddComment(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := listingID(c)
	if !ok {
		return
	}

	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.listings.AddComment(c.Request.Context(), id, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CommentResponse{
		ID:        comment.ID,
		ListingID: comment.ListingID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	})
}

// Close handles owner-only auction closing.
func (h *ListingHandler) Close(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id, ok := listingID(c)
	if !ok {
		return
	}

	result, err := h.bidding.Close(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("auction closed", "listing_id", id, "winner_id", result.WinnerID)
	c.JSON(http.StatusOK, dto.CloseResponse{
		ListingID: id,
		Winner:    result.Winner,
		WinnerID:  result.WinnerID,
	})
}

// Categories returns the fixed category list.
func (h *ListingHandler) Categories(c *gin.Context) {
	views := h.listings.Categories()
	out := make([]dto.CategoryItem, 0, len(views))
	for _, v := range views {
		out = append(out, dto.CategoryItem{Code: string(v.Code), Label: v.Label})
	}
	c.JSON(http.StatusOK, out)
}

// ListByCategory returns the active listings of one category.
func (h *ListingHandler) ListByCategory(c *gin.Context) {
	category := entity.Category(c.Param("code"))
	summaries, err := h.listings.ListByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ListingItem, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.NewListingItem(s))
	}
	c.JSON(http.StatusOK, out)
}
