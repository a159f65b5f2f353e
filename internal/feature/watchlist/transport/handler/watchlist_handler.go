// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auction_backend/internal/api"
	listingdto "auction_backend/internal/feature/listing/transport/http/dto"
	listingusecase "auction_backend/internal/feature/listing/usecase"
	"auction_backend/internal/feature/watchlist/usecase"
	jwtmw "auction_backend/internal/platform/jwt"
)

// WatchlistUsecase defines the watchlist operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type WatchlistUsecase interface {
	Add(ctx context.Context, userID, listingID uint) (usecase.Outcome, error)
	Remove(ctx context.Context, userID, listingID uint) (usecase.Outcome, error)
	Listings(ctx context.Context, userID uint) ([]usecase.WatchedListing, error)
}

// WatchlistHandler handles HTTP requests for watchlist membership.
type WatchlistHandler struct {
	watchlist WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler instance.
func NewWatchlistHandler(watchlist WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

// outcomeMessages maps mutation outcomes to the user-visible notice text.
var outcomeMessages = map[usecase.Outcome]string{
	usecase.OutcomeAdded:          "Added to the watchlist.",
	usecase.OutcomeAlreadyWatched: "This is already on your watchlist.",
	usecase.OutcomeRemoved:        "Removed from watchlist.",
	usecase.OutcomeNotWatched:     "This was not on your watchlist.",
}

// Watch adds a listing to the caller's watchlist. Re-watching is a no-op
// reported with its own code, not an error.
func (h *WatchlistHandler) Watch(c *gin.Context) {
	h.mutate(c, h.watchlist.Add)
}

// Unwatch removes a listing from the caller's watchlist. Unwatching a
// listing that was never watched is likewise a reported no-op.
func (h *WatchlistHandler) Unwatch(c *gin.Context) {
	h.mutate(c, h.watchlist.Remove)
}

// List returns the caller's watched listings with current prices.
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	watched, err := h.watchlist.Listings(c.Request.Context(), userID)
	if err != nil {
		slog.Error("watchlist read failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]listingdto.ListingItem, 0, len(watched))
	for _, w := range watched {
		out = append(out, listingdto.NewListingItem(listingusecase.ListingSummary{
			Listing: w.Listing,
			Price:   w.Price,
		}))
	}
	c.JSON(http.StatusOK, out)
}

// mutate runs one membership change and renders its outcome.
func (h *WatchlistHandler) mutate(c *gin.Context, op func(ctx context.Context, userID, listingID uint) (usecase.Outcome, error)) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return
	}

	outcome, err := op(c.Request.Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, listingusecase.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error(), Code: api.CodeNotFound})
			return
		}
		slog.Error("watchlist update failed", "error", err, "user_id", userID, "listing_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: outcomeMessages[outcome], Code: string(outcome)})
}
