package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auction_backend/internal/feature/listing/domain/entity"
)

// mockListingRepository is a mock implementation of the ListingRepository
// interface.
type mockListingRepository struct {
	CreateFunc               func(ctx context.Context, listing *entity.Listing) error
	FindByIDFunc             func(ctx context.Context, id uint) (*entity.Listing, error)
	ListActiveFunc           func(ctx context.Context) ([]entity.Listing, error)
	ListActiveByCategoryFunc func(ctx context.Context, category entity.Category) ([]entity.Listing, error)
	CloseFunc                func(ctx context.Context, id uint, winnerID *uint) error
}

func (m *mockListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, listing)
	}
	return nil
}

func (m *mockListingRepository) FindByID(ctx context.Context, id uint) (*entity.Listing, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrListingNotFound
}

func (m *mockListingRepository) ListActive(ctx context.Context) ([]entity.Listing, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockListingRepository) ListActiveByCategory(ctx context.Context, category entity.Category) ([]entity.Listing, error) {
	if m.ListActiveByCategoryFunc != nil {
		return m.ListActiveByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockListingRepository) Close(ctx context.Context, id uint, winnerID *uint) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, id, winnerID)
	}
	return nil
}

// mockBidRepository is a mock implementation of the BidRepository interface.
type mockBidRepository struct {
	CreateFunc         func(ctx context.Context, bid *entity.Bid) error
	HighestFunc        func(ctx context.Context, listingID uint) (*entity.Bid, error)
	CountByListingFunc func(ctx context.Context, listingID uint) (int64, error)
	MaxAmountsFunc     func(ctx context.Context, listingIDs []uint) (map[uint]decimal.Decimal, error)
}

func (m *mockBidRepository) Create(ctx context.Context, bid *entity.Bid) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bid)
	}
	return nil
}

func (m *mockBidRepository) Highest(ctx context.Context, listingID uint) (*entity.Bid, error) {
	if m.HighestFunc != nil {
		return m.HighestFunc(ctx, listingID)
	}
	return nil, ErrNoBids
}

func (m *mockBidRepository) CountByListing(ctx context.Context, listingID uint) (int64, error) {
	if m.CountByListingFunc != nil {
		return m.CountByListingFunc(ctx, listingID)
	}
	return 0, nil
}

func (m *mockBidRepository) MaxAmounts(ctx context.Context, listingIDs []uint) (map[uint]decimal.Decimal, error) {
	if m.MaxAmountsFunc != nil {
		return m.MaxAmountsFunc(ctx, listingIDs)
	}
	return map[uint]decimal.Decimal{}, nil
}

// mockUserDirectory is a mock implementation of the UserDirectory interface.
type mockUserDirectory struct {
	UsernamesByIDFunc func(ctx context.Context, ids []uint) (map[uint]string, error)
}

func (m *mockUserDirectory) UsernamesByID(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.UsernamesByIDFunc != nil {
		return m.UsernamesByIDFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func activeListing(id uint, startingBid string) *entity.Listing {
	return &entity.Listing{
		ID:          id,
		OwnerID:     1,
		Title:       "test listing",
		StartingBid: decimal.RequireFromString(startingBid),
		Active:      true,
	}
}

func TestBiddingUsecase_PlaceBid(t *testing.T) {
	tests := []struct {
		name        string
		listing     *entity.Listing
		highest     string // existing highest bid amount; empty means no bids
		amount      string
		expectedErr error
	}{
		{
			name:    "first bid above starting bid accepted",
			listing: activeListing(1, "100.46"),
			amount:  "200.32",
		},
		{
			name:    "first bid equal to starting bid accepted",
			listing: activeListing(1, "50.43"),
			amount:  "50.43",
		},
		{
			name:        "first bid below starting bid rejected",
			listing:     activeListing(1, "50.43"),
			amount:      "2",
			expectedErr: ErrBelowStartingPrice,
		},
		{
			name:    "bid above current highest accepted",
			listing: activeListing(1, "100.46"),
			highest: "200.32",
			amount:  "400.32",
		},
		{
			name:        "bid equal to current highest rejected",
			listing:     activeListing(1, "100.46"),
			highest:     "200.32",
			amount:      "200.32",
			expectedErr: ErrBidTooLow,
		},
		{
			name:        "bid below current highest rejected",
			listing:     activeListing(1, "100.46"),
			highest:     "200.32",
			amount:      "150.00",
			expectedErr: ErrBidTooLow,
		},
		{
			name: "bid on closed listing rejected",
			listing: &entity.Listing{
				ID:          1,
				OwnerID:     1,
				StartingBid: decimal.RequireFromString("100.46"),
				Active:      false,
			},
			amount:      "500.00",
			expectedErr: ErrListingClosed,
		},
		{
			name:        "non-positive amount rejected",
			listing:     activeListing(1, "100.46"),
			amount:      "0",
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "unknown listing",
			listing:     nil,
			amount:      "10.00",
			expectedErr: ErrListingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *entity.Bid

			listings := &mockListingRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*entity.Listing, error) {
					if tt.listing == nil {
						return nil, ErrListingNotFound
					}
					return tt.listing, nil
				},
			}
			bids := &mockBidRepository{
				HighestFunc: func(ctx context.Context, listingID uint) (*entity.Bid, error) {
					if tt.highest == "" {
						return nil, ErrNoBids
					}
					return &entity.Bid{
						ID:        1,
						Amount:    decimal.RequireFromString(tt.highest),
						BidderID:  7,
						ListingID: listingID,
					}, nil
				},
				CreateFunc: func(ctx context.Context, bid *entity.Bid) error {
					created = bid
					return nil
				},
			}

			uc := NewBiddingUsecase(listings, bids, &mockUserDirectory{})
			bid, err := uc.PlaceBid(context.Background(), 1, 42, decimal.RequireFromString(tt.amount))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, bid, "rejected bid must not be returned")
				assert.Nil(t, created, "rejection must leave no side effect")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, created, "accepted bid must be persisted")
			assert.True(t, created.Amount.Equal(decimal.RequireFromString(tt.amount)), "persisted amount mismatch")
			assert.Equal(t, uint(42), created.BidderID)
			assert.Equal(t, uint(1), created.ListingID)
		})
	}
}

// The bidding scenario from the behavior contract: starting bid 100.46, a bid
// of 200.32 is accepted, repeating 200.32 is rejected, 400.32 is accepted,
// and closing crowns the 400.32 bidder.
func TestBiddingUsecase_Scenario(t *testing.T) {
	listing := activeListing(1, "100.46")

	var stored []entity.Bid
	listings := &mockListingRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Listing, error) {
			return listing, nil
		},
		CloseFunc: func(ctx context.Context, id uint, winnerID *uint) error {
			listing.Active = false
			listing.WinnerID = winnerID
			return nil
		},
	}
	bids := &mockBidRepository{
		HighestFunc: func(ctx context.Context, listingID uint) (*entity.Bid, error) {
			if len(stored) == 0 {
				return nil, ErrNoBids
			}
			best := stored[0]
			for _, b := range stored[1:] {
				if b.Amount.GreaterThan(best.Amount) {
					best = b
				}
			}
			return &best, nil
		},
		CreateFunc: func(ctx context.Context, bid *entity.Bid) error {
			bid.ID = uint(len(stored) + 1)
			stored = append(stored, *bid)
			return nil
		},
	}
	users := &mockUserDirectory{
		UsernamesByIDFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{2: "alice", 3: "bob"}, nil
		},
	}

	uc := NewBiddingUsecase(listings, bids, users)
	ctx := context.Background()

	_, err := uc.PlaceBid(ctx, 1, 2, decimal.RequireFromString("200.32"))
	require.NoError(t, err, "bid 200.32 should be accepted")

	_, err = uc.PlaceBid(ctx, 1, 3, decimal.RequireFromString("200.32"))
	assert.ErrorIs(t, err, ErrBidTooLow, "repeated 200.32 should be rejected")

	_, err = uc.PlaceBid(ctx, 1, 3, decimal.RequireFromString("400.32"))
	require.NoError(t, err, "bid 400.32 should be accepted")

	result, err := uc.Close(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, uint(3), *result.WinnerID, "winner should be the 400.32 bidder")
	assert.Equal(t, "bob", result.Winner)
	assert.False(t, listing.Active)
}

func TestBiddingUsecase_Close(t *testing.T) {
	t.Run("close with bids sets winner", func(t *testing.T) {
		listing := activeListing(1, "10.00")

		var closedWinner *uint
		closed := false
		listings := &mockListingRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Listing, error) {
				return listing, nil
			},
			CloseFunc: func(ctx context.Context, id uint, winnerID *uint) error {
				closed = true
				closedWinner = winnerID
				return nil
			},
		}
		bids := &mockBidRepository{
			HighestFunc: func(ctx context.Context, listingID uint) (*entity.Bid, error) {
				return &entity.Bid{ID: 9, Amount: decimal.RequireFromString("25.00"), BidderID: 5}, nil
			},
		}
		users := &mockUserDirectory{
			UsernamesByIDFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
				return map[uint]string{5: "carol"}, nil
			},
		}

		uc := NewBiddingUsecase(listings, bids, users)
		result, err := uc.Close(context.Background(), 1, 1)

		require.NoError(t, err)
		assert.True(t, closed)
		require.NotNil(t, closedWinner)
		assert.Equal(t, uint(5), *closedWinner)
		assert.Equal(t, "carol", result.Winner)
	})

	t.Run("close without bids has no winner", func(t *testing.T) {
		listing := activeListing(1, "10.00")

		var closedWinner *uint
		closed := false
		listings := &mockListingRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Listing, error) {
				return listing, nil
			},
			CloseFunc: func(ctx context.Context, id uint, winnerID *uint) error {
				closed = true
				closedWinner = winnerID
				return nil
			},
		}

		uc := NewBiddingUsecase(listings, &mockBidRepository{}, &mockUserDirectory{})
		result, err := uc.Close(context.Background(), 1, 1)

		require.NoError(t, err)
		assert.True(t, closed)
		assert.Nil(t, closedWinner)
		assert.Nil(t, result.WinnerID)
		assert.Empty(t, result.Winner)
	})

	t.Run("only the owner may close", func(t *testing.T) {
		listings := &mockListingRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Listing, error) {
				return activeListing(1, "10.00"), nil
			},
			CloseFunc: func(ctx context.Context, id uint, winnerID *uint) error {
				t.Fatal("close must not be called for a non-owner")
				return nil
			},
		}

		uc := NewBiddingUsecase(listings, &mockBidRepository{}, &mockUserDirectory{})
		_, err := uc.Close(context.Background(), 1, 99)

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("re-closing is rejected", func(t *testing.T) {
		inactive := activeListing(1, "10.00")
		inactive.Active = false

		listings := &mockListingRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Listing, error) {
				return inactive, nil
			},
		}

		uc := NewBiddingUsecase(listings, &mockBidRepository{}, &mockUserDirectory{})
		_, err := uc.Close(context.Background(), 1, 1)

		assert.ErrorIs(t, err, ErrAlreadyClosed)
	})

	t.Run("winner account deleted renders placeholder", func(t *testing.T) {
		listings := &mockListingRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Listing, error) {
				return activeListing(1, "10.00"), nil
			},
		}
		bids := &mockBidRepository{
			HighestFunc: func(ctx context.Context, listingID uint) (*entity.Bid, error) {
				return &entity.Bid{ID: 3, Amount: decimal.RequireFromString("11.00"), BidderID: 8}, nil
			},
		}

		uc := NewBiddingUsecase(listings, bids, &mockUserDirectory{})
		result, err := uc.Close(context.Background(), 1, 1)

		require.NoError(t, err)
		assert.Equal(t, DeletedUserPlaceholder, result.Winner)
	})
}
