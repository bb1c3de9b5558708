package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "sharedbid/internal/models"
	"sharedbid/services/auction/helpers"
	"sharedbid/utils"
)

// GetListingsByUserHandler handles GET /users/:user_id/listings
func (h *AuctionHandler) GetListingsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	listings, err := h.ledger.ListingsBySeller(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingsByUserHandler", "error retrieving listings", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponses(listings, h.ledger.Now()), "listings retrieved successfully")
	helpers.LogSuccess("GetListingsByUserHandler", "listings retrieved successfully", map[string]any{
		"user_id":        userID,
		"listings_count": len(listings),
	})
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetBidsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids, err := h.ledger.BidsByBidder(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsByUserHandler", "error retrieving bids", err, map[string]any{"user_id": userID})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByUserHandler", "bids retrieved successfully", map[string]any{
		"user_id":    userID,
		"bids_count": len(bids),
	})
}

// GetPoolsByUserHandler handles GET /users/:user_id/pools
func (h *AuctionHandler) GetPoolsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	pools, err := h.ledger.PoolsForUser(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetPoolsByUserHandler", "error retrieving pools", err, map[string]any{"user_id": userID})
		return
	}

	if pools == nil {
		pools = []model.PoolSummary{}
	}

	utils.JSONResponse(c, http.StatusOK, pools, "pools retrieved successfully")
}

// GetUserStatsHandler handles GET /users/:user_id/stats
func (h *AuctionHandler) GetUserStatsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	ctx := c.Request.Context()

	seller, err := h.ledger.SellerStats(ctx, userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserStatsHandler", "error computing seller stats", err, map[string]any{"user_id": userID})
		return
	}
	bidder, err := h.ledger.BidderStats(ctx, userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserStatsHandler", "error computing bidder stats", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.StatsResponse{Seller: seller, Bidder: bidder}, "stats retrieved successfully")
}
