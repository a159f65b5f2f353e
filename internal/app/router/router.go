// Package router assembles the gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "auction_backend/internal/feature/auth/transport/handler"
	listinghandler "auction_backend/internal/feature/listing/transport/handler"
	watchlisthandler "auction_backend/internal/feature/watchlist/transport/handler"
	httphandler "auction_backend/internal/platform/http/handler"
	jwtmw "auction_backend/internal/platform/jwt"
)

// NewRouter wires all feature handlers into a gin engine.
func NewRouter(auth *authhandler.AuthHandler, listings *listinghandler.ListingHandler,
	watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", httphandler.Health)
	r.POST("/signup", auth.Register)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)

	// Public reads
	r.GET("/listings", listings.List)
	r.GET("/categories", listings.Categories)
	r.GET("/categories/:code/listings", listings.ListByCategory)

	// Detail carries viewer flags when a valid token is present, but stays
	// readable anonymously.
	r.GET("/listings/:id", jwtmw.AuthOptional(), listings.Detail)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/logout", auth.Logout)
		authed.POST("/listings", listings.Create)
		authed.POST("/listings/:id/bids", listings.PlaceBid)
		authed.POST("/listings/:id/comments", listings.AddComment)
		authed.POST("/listings/:id/close", listings.Close)
		authed.POST("/listings/:id/watch", watchlist.Watch)
		authed.POST("/listings/:id/unwatch", watchlist.Unwatch)
		authed.GET("/watchlist", watchlist.List)
	}

	return r
}
