package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auction_backend/internal/feature/auth/domain/entity"
	"auction_backend/internal/feature/auth/usecase"
)

func newSession(userID uint) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSessionGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)

	session := newSession(1)
	require.NoError(t, repo.Create(context.Background(), session))

	found, err := repo.FindByID(context.Background(), session.ID)

	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, uint(1), found.UserID)
	assert.Equal(t, "test-agent", found.UserAgent)
	assert.True(t, found.IsValid())
}

func TestSessionGorm_FindByID_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)

	found, err := repo.FindByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	assert.Nil(t, found)
}

func TestSessionGorm_Revoke(t *testing.T) {
	t.Run("marks the session revoked", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		session := newSession(1)
		require.NoError(t, repo.Create(context.Background(), session))

		require.NoError(t, repo.Revoke(context.Background(), session.ID))

		found, err := repo.FindByID(context.Background(), session.ID)
		require.NoError(t, err)
		assert.True(t, found.IsRevoked())
		assert.False(t, found.IsValid())
	})

	t.Run("revoking twice yields ErrSessionNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		session := newSession(1)
		require.NoError(t, repo.Create(context.Background(), session))

		require.NoError(t, repo.Revoke(context.Background(), session.ID))
		err := repo.Revoke(context.Background(), session.ID)

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("revoking a missing session yields ErrSessionNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		err := repo.Revoke(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}
