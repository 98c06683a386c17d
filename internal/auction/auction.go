package auction

import (
	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
	"fmt"
	"sync"
	"time"
)

// Auction is a single item up for bidding. It owns its bid history and the
// current high bid. All methods are safe for concurrent use.
type Auction struct {
	mu          sync.Mutex
	id          string
	item        string
	startingBid float64
	currentBid  float64
	bids        []model.Bid
	active      bool
	createdAt   time.Time
}

// New creates an open auction with no bids. The starting bid is not validated.
func New(item string, startingBid float64) *Auction {
	return &Auction{
		id:          utils.GenerateID(),
		item:        item,
		startingBid: startingBid,
		currentBid:  startingBid,
		bids:        []model.Bid{},
		active:      true,
		createdAt:   time.Now().UTC(),
	}
}

func (a *Auction) ID() string {
	return a.id
}

func (a *Auction) Item() string {
	return a.item
}

func (a *Auction) StartingBid() float64 {
	return a.startingBid
}

func (a *Auction) CreatedAt() time.Time {
	return a.createdAt
}

// CurrentBid returns the amount of the last accepted bid, or the starting bid
// if none was accepted yet
func (a *Auction) CurrentBid() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentBid
}

// IsActive reports whether the auction still accepts bids
func (a *Auction) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Bids returns a copy of the accepted bids in the order they were placed
func (a *Auction) Bids() []model.Bid {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.Bid(nil), a.bids...)
}

// HighestBid returns the last accepted bid
func (a *Auction) HighestBid() (model.Bid, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.bids) == 0 {
		return model.Bid{}, false
	}
	return a.bids[len(a.bids)-1], true
}

// PlaceBid accepts the bid iff the auction is open and amount is strictly
// greater than the current bid. A rejected bid leaves the auction untouched.
func (a *Auction) PlaceBid(bidder *model.User, amount float64) bool {
	_, err := a.Submit(bidder, amount)
	return err == nil
}

// Submit is PlaceBid with the rejection reason: ErrAuctionClosed when the
// auction has ended, ErrBidTooLow when amount does not beat the current bid.
func (a *Auction) Submit(bidder *model.User, amount float64) (model.Bid, error) {
	if bidder == nil {
		return model.Bid{}, fmt.Errorf("auction %s: %w - missing bidder", a.id, biddingerrors.ErrInvalidBid)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.active {
		return model.Bid{}, fmt.Errorf("auction %s: %w", a.id, biddingerrors.ErrAuctionClosed)
	}
	// NaN never compares greater, so it is rejected here too
	if !(amount > a.currentBid) {
		return model.Bid{}, fmt.Errorf("auction %s: %w - current bid is %.2f", a.id, biddingerrors.ErrBidTooLow, a.currentBid)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: a.id,
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	a.bids = append(a.bids, bid)
	a.currentBid = amount

	return bid, nil
}

// End closes the auction. Closing is terminal and repeated calls are no-ops.
func (a *Auction) End() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = false
}

// Snapshot returns a consistent read-only view of the auction
func (a *Auction) Snapshot() model.AuctionView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return model.AuctionView{
		AuctionID:   a.id,
		Item:        a.item,
		StartingBid: a.startingBid,
		CurrentBid:  a.currentBid,
		Active:      a.active,
		BidCount:    len(a.bids),
		CreatedAt:   a.createdAt,
	}
}
