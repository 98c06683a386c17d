package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
)

// EndAuctionSentinel entered as a bid amount closes the auction instead of bidding
const EndAuctionSentinel = -1.0

// Menu choices
const (
	ChoiceExit    = 0
	ChoiceList    = 1
	ChoiceBidding = 2
)

// AuctionService is the part of the bidding service the console drives
type AuctionService interface {
	RegisterUser(username string) model.User
	FindUser(username string) (model.User, error)
	CreateAuction(item string, startingBid float64) model.AuctionView
	ListAuctions(activeOnly bool) []model.AuctionView
	PlaceBid(auctionID, userID string, amount float64) (model.Bid, error)
	EndAuction(auctionID string) (model.AuctionView, error)
}

// Session runs the interactive auction loop over line-oriented input.
// It does all parsing and printing; the service does no I/O.
type Session struct {
	service AuctionService
	in      *bufio.Scanner
	out     io.Writer
}

func NewSession(service AuctionService, in io.Reader, out io.Writer) *Session {
	return &Session{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the session until the user exits or input ends
func (s *Session) Run() error {
	err := s.run()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err == nil {
		s.println("Exiting the auction system. Goodbye!")
	}
	return err
}

func (s *Session) run() error {
	username, err := s.readLine("Enter your username to register: ")
	if err != nil {
		return err
	}
	s.service.RegisterUser(username)
	s.printf("Registration successful! Welcome, %s!\n", username)

	for {
		choice, err := s.readInt("Are you here to (1) Conduct an auction or (2) Participate in an auction? (Enter 1 or 2, or 0 to exit): ")
		if err != nil {
			return err
		}

		switch choice {
		case ChoiceList:
			err = s.listItem()
		case ChoiceBidding:
			err = s.biddingRound()
		case ChoiceExit:
			return nil
		default:
			s.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) listItem() error {
	item, err := s.readLine("Enter the item name: ")
	if err != nil {
		return err
	}
	startingBid, err := s.readFloat("Enter the starting bid: ")
	if err != nil {
		return err
	}

	view := s.service.CreateAuction(item, startingBid)
	s.printf("Auction created for item: %s with starting bid: %s\n", view.Item, formatAmount(view.StartingBid))
	return nil
}

func (s *Session) biddingRound() error {
	count, err := s.readInt("Enter the number of bidders: ")
	if err != nil {
		return err
	}
	if count < 0 {
		count = 0
	}

	bidders := make([]model.User, 0, count)
	for i := 0; i < count; i++ {
		name, err := s.readLine(fmt.Sprintf("Enter username for bidder %d: ", i+1))
		if err != nil {
			return err
		}
		s.service.RegisterUser(name)
		// duplicate usernames resolve to the first registered user
		bidder, err := s.service.FindUser(name)
		if err != nil {
			return fmt.Errorf("console: bidder %q vanished after registration: %w", name, err)
		}
		bidders = append(bidders, bidder)
	}

	active := s.service.ListAuctions(true)
	s.println("Active Auctions:")
	for i, a := range active {
		s.printf("%d. Item: %s, Current Bid: %s\n", i+1, a.Item, formatAmount(a.CurrentBid))
	}

	if len(bidders) == 0 {
		s.println("No bidders entered, skipping bidding.")
		return nil
	}

	for _, a := range active {
		if err := s.runAuction(a, bidders); err != nil {
			return err
		}
	}
	return nil
}

// runAuction polls bidders round-robin until one of them enters the sentinel
func (s *Session) runAuction(a model.AuctionView, bidders []model.User) error {
	for {
		for _, bidder := range bidders {
			amount, err := s.readFloat(fmt.Sprintf("%s, enter your bid for %s (or -1 to end the auction): ", bidder.Username, a.Item))
			if err != nil {
				return err
			}

			if amount == EndAuctionSentinel {
				if _, err := s.service.EndAuction(a.AuctionID); err != nil {
					return fmt.Errorf("console: end auction %s: %w", a.AuctionID, err)
				}
				s.printf("Auction ended for item: %s\n", a.Item)
				return nil
			}

			if _, err := s.service.PlaceBid(a.AuctionID, bidder.UserID, amount); err != nil {
				s.println(rejectionMessage(err))
				continue
			}
			s.println("Bid placed successfully!")
		}
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return "Bid failed. Your bid must be higher than the current bid."
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return "Bid failed. The auction is no longer active."
	default:
		utils.Warn("console: unexpected bid failure", map[string]any{"error": err.Error()})
		return "Bid failed. Ensure it's higher than the current bid or auction is active."
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		s.println("Please enter a whole number.")
	}
}

func (s *Session) readFloat(prompt string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, nil
		}
		s.println("Please enter a number.")
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
