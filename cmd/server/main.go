package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"auction_backend/internal/app/di"
	"auction_backend/internal/app/router"
	authadapters "auction_backend/internal/feature/auth/adapters"
	authhandler "auction_backend/internal/feature/auth/transport/handler"
	authusecase "auction_backend/internal/feature/auth/usecase"
	listingadapters "auction_backend/internal/feature/listing/adapters"
	listinghandler "auction_backend/internal/feature/listing/transport/handler"
	listingusecase "auction_backend/internal/feature/listing/usecase"
	watchlistadapters "auction_backend/internal/feature/watchlist/adapters"
	watchlisthandler "auction_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "auction_backend/internal/feature/watchlist/usecase"
	infradb "auction_backend/internal/platform/db"
	infraredis "auction_backend/internal/platform/redis"
	jwtmw "auction_backend/internal/platform/jwt"
)

const accessTokenTTL = 15 * time.Minute

func main() {
	// db
	db := infradb.OpenDB()

	// Redis (optional: sessions fall back to the database without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions will be stored in the database.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	listingRepo := listingadapters.NewListingRepository(db)
	bidRepo := listingadapters.NewBidRepository(db)
	commentRepo := listingadapters.NewCommentRepository(db)
	userDirectory := listingadapters.NewUserDirectory(db)
	watchlistRepo := watchlistadapters.NewWatchlistRepository(db)

	// Usecases
	jwtGen := jwtmw.NewGenerator(secret, accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	listingUC := listingusecase.NewListingUsecase(listingRepo, bidRepo, commentRepo, userDirectory, watchlistRepo)
	biddingUC := listingusecase.NewBiddingUsecase(listingRepo, bidRepo, userDirectory)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo, listingRepo, bidRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	listingH := listinghandler.NewListingHandler(listingUC, biddingUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	r := router.NewRouter(authH, listingH, watchlistH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
