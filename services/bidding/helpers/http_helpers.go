package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ToBidResponse flattens a bid for the wire
func ToBidResponse(bid model.Bid) BidResponse {
	resp := BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
	if bid.Bidder != nil {
		resp.UserID = bid.Bidder.UserID
		resp.Username = bid.Bidder.Username
	}
	return resp
}

// AuctionIDParam reads :auction_id and rejects malformed IDs with 400
func AuctionIDParam(c *gin.Context, handlerName string) (string, bool) {
	auctionID := c.Param("auction_id")
	if !utils.IsValidID(auctionID) {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("malformed auction id %q", auctionID), "invalid auction id")
		utils.Warn(handlerName+": malformed auction id", map[string]any{"auction_id": auctionID})
		return "", false
	}
	return auctionID, true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
