package bidding

import (
	"auction-house/internal/auction"
	"auction-house/internal/biddingerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
	"fmt"
)

// BiddingService defines the business logic for registering users, listing
// auctions and bidding on them
type BiddingService struct {
	repo repository.AuctionDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// RegisterUser registers a new user. Duplicate usernames are allowed.
func (s *BiddingService) RegisterUser(username string) models.User {
	user := s.repo.RegisterUser(username)
	utils.Info("user registered", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
	return *user
}

// FindUser returns the first user registered under username
func (s *BiddingService) FindUser(username string) (models.User, error) {
	user, err := s.repo.FindUser(username)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to find user %q: %w", username, err)
	}
	return *user, nil
}

// CreateAuction lists a new item with the given starting bid
func (s *BiddingService) CreateAuction(item string, startingBid float64) models.AuctionView {
	a := s.repo.CreateAuction(item, startingBid)
	utils.Info("auction created", map[string]any{
		"auction_id":   a.ID(),
		"item":         item,
		"starting_bid": startingBid,
	})
	return a.Snapshot()
}

// ListAuctions returns auctions in creation order, optionally only open ones
func (s *BiddingService) ListAuctions(activeOnly bool) []models.AuctionView {
	var auctions []*auction.Auction
	if activeOnly {
		auctions = s.repo.ActiveAuctions()
	} else {
		auctions = s.repo.Auctions()
	}

	views := make([]models.AuctionView, 0, len(auctions))
	for _, a := range auctions {
		views = append(views, a.Snapshot())
	}
	return views
}

// GetAuction returns a snapshot of a single auction
func (s *BiddingService) GetAuction(auctionID string) (models.AuctionView, error) {
	a, err := s.auction(auctionID)
	if err != nil {
		return models.AuctionView{}, err
	}
	return a.Snapshot(), nil
}

// PlaceBid validates and records a user's bid on an auction
func (s *BiddingService) PlaceBid(auctionID, userID string, amount float64) (models.Bid, error) {
	if auctionID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidBid)
	}

	user, err := s.repo.GetUser(userID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to resolve bidder %s: %w", userID, err)
	}

	a, err := s.auction(auctionID)
	if err != nil {
		return models.Bid{}, err
	}

	bid, err := a.Submit(user, amount)
	if err != nil {
		utils.Warn("bid rejected", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"amount":     amount,
			"error":      err.Error(),
		})
		return models.Bid{}, fmt.Errorf("service: bid on auction %s by user %s rejected: %w", auctionID, userID, err)
	}

	utils.Info("bid accepted", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"user_id":    userID,
		"amount":     amount,
	})
	return bid, nil
}

// EndAuction closes an auction. Ending a closed auction is a no-op.
func (s *BiddingService) EndAuction(auctionID string) (models.AuctionView, error) {
	a, err := s.auction(auctionID)
	if err != nil {
		return models.AuctionView{}, err
	}

	a.End()
	view := a.Snapshot()
	utils.Info("auction ended", map[string]any{
		"auction_id":  auctionID,
		"item":        view.Item,
		"current_bid": view.CurrentBid,
		"bid_count":   view.BidCount,
	})
	return view, nil
}

// GetBids returns all accepted bids for an auction in the order they were placed
func (s *BiddingService) GetBids(auctionID string) ([]models.Bid, error) {
	a, err := s.auction(auctionID)
	if err != nil {
		return nil, err
	}
	return a.Bids(), nil
}

// GetWinningBid returns the highest accepted bid for an auction
func (s *BiddingService) GetWinningBid(auctionID string) (models.Bid, error) {
	a, err := s.auction(auctionID)
	if err != nil {
		return models.Bid{}, err
	}

	bid, ok := a.HighestBid()
	if !ok {
		return models.Bid{}, fmt.Errorf("service: get winning bid for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return bid, nil
}

func (s *BiddingService) auction(auctionID string) (*auction.Auction, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return a, nil
}
