// Package db bootstraps the GORM database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "auction_backend/internal/feature/auth/adapters"
	authentity "auction_backend/internal/feature/auth/domain/entity"
	listingentity "auction_backend/internal/feature/listing/domain/entity"
	watchlistentity "auction_backend/internal/feature/watchlist/domain/entity"
)

// OpenDB connects to Postgres using the DB_* environment variables, retrying
// until the database accepts connections. TranslateError is enabled so
// adapters can match gorm.ErrDuplicatedKey across drivers.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&listingentity.Listing{},
			&listingentity.Bid{},
			&listingentity.Comment{},
			&watchlistentity.Watchlist{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
