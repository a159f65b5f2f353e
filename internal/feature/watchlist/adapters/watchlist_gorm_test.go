package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "auction_backend/internal/feature/auth/domain/entity"
	listingentity "auction_backend/internal/feature/listing/domain/entity"
	"auction_backend/internal/feature/watchlist/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&authentity.User{},
		&listingentity.Listing{},
		&entity.Watchlist{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// createListing persists a listing fixture.
func createListing(t *testing.T, db *gorm.DB, title string, createdAt time.Time) *listingentity.Listing {
	t.Helper()

	listing := &listingentity.Listing{
		OwnerID:     1,
		Title:       title,
		StartingBid: decimal.RequireFromString("10.00"),
		Category:    listingentity.CategoryOther,
		Active:      true,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(listing).Error, "failed to create listing fixture")
	return listing
}

func membershipCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Table("watchlist_listings").Count(&count).Error)
	return count
}

func TestWatchlistGorm_Add(t *testing.T) {
	t.Run("first add creates the membership", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWatchlistRepository(db)
		listing := createListing(t, db, "clock", time.Now())

		added, err := repo.Add(context.Background(), 1, listing.ID)

		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, int64(1), membershipCount(t, db))
	})

	t.Run("repeated add leaves a single membership row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWatchlistRepository(db)
		listing := createListing(t, db, "clock", time.Now())

		added, err := repo.Add(context.Background(), 1, listing.ID)
		require.NoError(t, err)
		require.True(t, added)

		added, err = repo.Add(context.Background(), 1, listing.ID)
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, int64(1), membershipCount(t, db))
	})

	t.Run("watchlists are per user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWatchlistRepository(db)
		listing := createListing(t, db, "clock", time.Now())

		added, err := repo.Add(context.Background(), 1, listing.ID)
		require.NoError(t, err)
		require.True(t, added)

		added, err = repo.Add(context.Background(), 2, listing.ID)
		require.NoError(t, err)
		assert.True(t, added, "another user's add is independent")
		assert.Equal(t, int64(2), membershipCount(t, db))
	})
}

func TestWatchlistGorm_Remove(t *testing.T) {
	t.Run("removes an existing membership", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWatchlistRepository(db)
		listing := createListing(t, db, "clock", time.Now())

		_, err := repo.Add(context.Background(), 1, listing.ID)
		require.NoError(t, err)

		removed, err := repo.Remove(context.Background(), 1, listing.ID)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, int64(0), membershipCount(t, db))
	})

	t.Run("removing an unwatched listing reports false", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWatchlistRepository(db)
		listing := createListing(t, db, "clock", time.Now())

		removed, err := repo.Remove(context.Background(), 1, listing.ID)

		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("does not touch other users' memberships", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWatchlistRepository(db)
		listing := createListing(t, db, "clock", time.Now())

		_, err := repo.Add(context.Background(), 2, listing.ID)
		require.NoError(t, err)

		removed, err := repo.Remove(context.Background(), 1, listing.ID)

		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, int64(1), membershipCount(t, db))
	})
}

func TestWatchlistGorm_ListListings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWatchlistRepository(db)

	older := createListing(t, db, "older", time.Now().Add(-time.Hour))
	newer := createListing(t, db, "newer", time.Now())
	unwatched := createListing(t, db, "unwatched", time.Now())

	for _, l := range []*listingentity.Listing{older, newer} {
		_, err := repo.Add(context.Background(), 1, l.ID)
		require.NoError(t, err)
	}

	listings, err := repo.ListListings(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, newer.ID, listings[0].ID, "newest first")
	assert.Equal(t, older.ID, listings[1].ID)
	for _, l := range listings {
		assert.NotEqual(t, unwatched.ID, l.ID)
	}
}

func TestWatchlistGorm_IsWatched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWatchlistRepository(db)
	listing := createListing(t, db, "clock", time.Now())

	_, err := repo.Add(context.Background(), 1, listing.ID)
	require.NoError(t, err)

	watched, err := repo.IsWatched(context.Background(), 1, listing.ID)
	require.NoError(t, err)
	assert.True(t, watched)

	watched, err = repo.IsWatched(context.Background(), 2, listing.ID)
	require.NoError(t, err)
	assert.False(t, watched, "other users do not watch the listing")
}
