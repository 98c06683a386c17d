package repository

import (
	"auction-house/internal/auction"
	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"fmt"
	"sync"
)

// Catalog owns every auction in creation order. Closed auctions stay in the
// catalog and are only filtered out of ActiveAuctions.
type Catalog struct {
	mu       sync.RWMutex
	auctions []*auction.Auction
	byID     map[string]*auction.Auction // key: auctionID -> value: auction
}

func NewCatalog() *Catalog {
	return &Catalog{
		auctions: []*auction.Auction{},
		byID:     make(map[string]*auction.Auction),
	}
}

// CreateAuction appends a new open auction to the catalog
func (c *Catalog) CreateAuction(item string, startingBid float64) *auction.Auction {
	a := auction.New(item, startingBid)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.auctions = append(c.auctions, a)
	c.byID[a.ID()] = a
	return a
}

// Seed pre-populates the catalog with the given auctions
func (c *Catalog) Seed(seeds []model.SeedAuction) {
	for _, s := range seeds {
		c.CreateAuction(s.Item, s.StartingBid)
	}
}

// GetAuction returns the auction with the given ID
func (c *Catalog) GetAuction(auctionID string) (*auction.Auction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.byID[auctionID]
	if !ok {
		return nil, fmt.Errorf("get auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// ActiveAuctions filters the catalog to open auctions on every call
func (c *Catalog) ActiveAuctions() []*auction.Auction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := make([]*auction.Auction, 0, len(c.auctions))
	for _, a := range c.auctions {
		if a.IsActive() {
			active = append(active, a)
		}
	}
	return active
}

// Auctions returns every auction, open or closed, in creation order
func (c *Catalog) Auctions() []*auction.Auction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*auction.Auction(nil), c.auctions...)
}
