package helpers

// Request/Response DTOs
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// StartingBid is a pointer so that zero and negative values pass "required"
type CreateAuctionRequest struct {
	Item        string   `json:"item" binding:"required"`
	StartingBid *float64 `json:"starting_bid" binding:"required"`
}

type PlaceBidRequest struct {
	UserID string   `json:"user_id" binding:"required"`
	Amount *float64 `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}
