package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auction_backend/internal/feature/listing/domain/entity"
)

func TestCommentGorm_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	listing := createListing(t, db, 1, "10.00", true)

	authorID := uint(4)
	first := &entity.Comment{
		Content:   "first!",
		AuthorID:  &authorID,
		ListingID: listing.ID,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), first))

	second := &entity.Comment{
		Content:   "second",
		AuthorID:  nil, // author deleted
		ListingID: listing.ID,
	}
	require.NoError(t, repo.Create(context.Background(), second))

	comments, err := repo.ListByListing(context.Background(), listing.ID)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first!", comments[0].Content, "comments must be ordered oldest first")
	assert.Equal(t, "second", comments[1].Content)
	assert.Nil(t, comments[1].AuthorID)
}

func TestCommentGorm_ListScopedToListing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	a := createListing(t, db, 1, "10.00", true)
	b := createListing(t, db, 1, "10.00", true)

	authorID := uint(4)
	require.NoError(t, repo.Create(context.Background(), &entity.Comment{
		Content: "on a", AuthorID: &authorID, ListingID: a.ID,
	}))

	comments, err := repo.ListByListing(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Empty(t, comments)
}
