package models

import "time"

// User represents a registered participant. Two users may share a username;
// identity is the pointer held by the registry.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Bid represents an accepted bid on an auction
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	Bidder    *User     `json:"bidder"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AuctionView is a read-only snapshot of an auction's state
type AuctionView struct {
	AuctionID   string    `json:"auction_id"`
	Item        string    `json:"item"`
	StartingBid float64   `json:"starting_bid"`
	CurrentBid  float64   `json:"current_bid"`
	Active      bool      `json:"active"`
	BidCount    int       `json:"bid_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// SeedAuction describes an auction pre-loaded at startup
type SeedAuction struct {
	Item        string  `mapstructure:"item" json:"item"`
	StartingBid float64 `mapstructure:"starting_bid" json:"starting_bid"`
}
