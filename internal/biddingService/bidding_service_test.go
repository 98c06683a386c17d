package bidding

import (
	"auction-house/internal/auction"
	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	now := time.Now().UTC()
	bidder := &model.User{UserID: "user1", Username: "alice"}

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		userID        string
		amount        float64
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectError   bool
		expectedError error
	}{
		{
			name:      "valid_first_bid",
			auctionID: "auction1",
			userID:    "user1",
			amount:    150,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(auction.New("Vase", 100), nil)
			},
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			userID:        "user1",
			amount:        50,
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:          "empty_userID",
			auctionID:     "auction1",
			userID:        "",
			amount:        50,
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:      "unknown_user",
			auctionID: "auction1",
			userID:    "userX",
			amount:    150,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUser("userX").Return(nil, biddingerrors.ErrUserNotFound)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrUserNotFound,
		},
		{
			name:      "unknown_auction",
			auctionID: "auctionX",
			userID:    "user1",
			amount:    150,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetAuction("auctionX").Return(nil, biddingerrors.ErrAuctionNotFound)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrAuctionNotFound,
		},
		{
			name:      "bid_equal_to_current",
			auctionID: "auction1",
			userID:    "user1",
			amount:    100,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(auction.New("Vase", 100), nil)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name:      "auction_closed",
			auctionID: "auction1",
			userID:    "user1",
			amount:    500,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				closed := auction.New("Vase", 100)
				closed.End()
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(closed, nil)
			},
			expectError:   true,
			expectedError: biddingerrors.ErrAuctionClosed,
		},
		{
			name:      "negative_amount_over_negative_start",
			auctionID: "auction1",
			userID:    "user1",
			amount:    -5,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(auction.New("Junk", -10), nil)
			},
		},
		{
			name:      "bid_max_float",
			auctionID: "auction1",
			userID:    "user1",
			amount:    math.MaxFloat64,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetUser("user1").Return(bidder, nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(auction.New("Vase", 100), nil)
			},
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			service := NewBiddingService(mockRepo)

			tc.mockSetup(mockRepo)

			bid, err := service.PlaceBid(tc.auctionID, tc.userID, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				// Validate generated BidID
				_, parseErr := uuid.Parse(bid.BidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")

				require.Same(t, bidder, bid.Bidder)
				require.Equal(t, tc.amount, bid.Amount)
				require.WithinDuration(t, now, bid.CreatedAt, 2*time.Second)
			}
		})
	}
}

// Tests FindUser
func TestBiddingService_FindUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo)

	alice := &model.User{UserID: "user1", Username: "alice"}
	mockRepo.EXPECT().FindUser("alice").Return(alice, nil)
	mockRepo.EXPECT().FindUser("bob").Return(nil, fmt.Errorf("find user: %w", biddingerrors.ErrUserNotFound))

	got, err := service.FindUser("alice")
	require.NoError(t, err)
	require.Equal(t, *alice, got)

	_, err = service.FindUser("bob")
	require.True(t, errors.Is(err, biddingerrors.ErrUserNotFound), "got: %v", err)
}

// Tests ListAuctions
func TestBiddingService_ListAuctions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo)

	open := auction.New("Vase", 100)
	closed := auction.New("Car", 5000)
	closed.End()

	mockRepo.EXPECT().ActiveAuctions().Return([]*auction.Auction{open})
	mockRepo.EXPECT().Auctions().Return([]*auction.Auction{open, closed})

	active := service.ListAuctions(true)
	require.Len(t, active, 1)
	require.Equal(t, open.ID(), active[0].AuctionID)

	all := service.ListAuctions(false)
	require.Len(t, all, 2)
	require.True(t, all[0].Active)
	require.False(t, all[1].Active)
}

// Tests GetWinningBid
func TestBiddingService_GetWinningBid(t *testing.T) {
	bidder := &model.User{UserID: "user1", Username: "alice"}

	withBids := auction.New("Vase", 100)
	require.True(t, withBids.PlaceBid(bidder, 150))
	require.True(t, withBids.PlaceBid(bidder, 175))

	tests := []struct {
		name          string
		auctionID     string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectedError error
		expectedBid   float64
	}{
		{
			name:      "auction_with_bids",
			auctionID: "auction1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetAuction("auction1").Return(withBids, nil)
			},
			expectedBid: 175,
		},
		{
			name:      "auction_without_bids",
			auctionID: "auction2",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetAuction("auction2").Return(auction.New("Car", 5000), nil)
			},
			expectedError: biddingerrors.ErrNoBids,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			service := NewBiddingService(mockRepo)
			tc.mockSetup(mockRepo)

			bid, err := service.GetWinningBid(tc.auctionID)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedBid, bid.Amount)
		})
	}
}

// Runs the full flow against the in-memory repository
func TestBiddingService_MemoryRepoFlow(t *testing.T) {
	repo := repository.NewMemoryRepo()
	service := NewBiddingService(repo)

	u1 := service.RegisterUser("alice")
	u2 := service.RegisterUser("bob")
	view := service.CreateAuction("Vase", 100)
	require.Equal(t, 100.0, view.CurrentBid)
	require.True(t, view.Active)

	_, err := service.PlaceBid(view.AuctionID, u1.UserID, 100)
	require.True(t, errors.Is(err, biddingerrors.ErrBidTooLow))

	bid, err := service.PlaceBid(view.AuctionID, u1.UserID, 150)
	require.NoError(t, err)
	require.Equal(t, u1.UserID, bid.Bidder.UserID)

	_, err = service.PlaceBid(view.AuctionID, u2.UserID, 120)
	require.True(t, errors.Is(err, biddingerrors.ErrBidTooLow))

	ended, err := service.EndAuction(view.AuctionID)
	require.NoError(t, err)
	require.False(t, ended.Active)

	_, err = service.PlaceBid(view.AuctionID, u2.UserID, 500)
	require.True(t, errors.Is(err, biddingerrors.ErrAuctionClosed))

	got, err := service.GetAuction(view.AuctionID)
	require.NoError(t, err)
	require.Equal(t, 150.0, got.CurrentBid)
	require.Equal(t, 1, got.BidCount)

	// Ending twice is a no-op
	_, err = service.EndAuction(view.AuctionID)
	require.NoError(t, err)

	bids, err := service.GetBids(view.AuctionID)
	require.NoError(t, err)
	require.Len(t, bids, 1)

	require.Empty(t, service.ListAuctions(true))
	require.Len(t, service.ListAuctions(false), 1)

	_, err = service.GetBids("missing")
	require.True(t, errors.Is(err, biddingerrors.ErrAuctionNotFound))
}
