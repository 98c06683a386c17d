package repository

import (
	"auction-house/internal/auction"
	model "auction-house/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the user and auction storage interface for the auction system
type AuctionDB interface {
	RegisterUser(username string) *model.User
	FindUser(username string) (*model.User, error)
	GetUser(userID string) (*model.User, error)
	CreateAuction(item string, startingBid float64) *auction.Auction
	GetAuction(auctionID string) (*auction.Auction, error)
	ActiveAuctions() []*auction.Auction
	Auctions() []*auction.Auction
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	*UserRegistry
	*Catalog
}

// NewMemoryRepo creates a new in-memory repository instance with no seed auctions
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		UserRegistry: NewUserRegistry(),
		Catalog:      NewCatalog(),
	}
}
