package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sharedbid/internal/auth"
	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
	"sharedbid/services/auction/helpers"
	"sharedbid/utils"
)

//go:generate mockgen -destination=mock_auction_ledger.go -package=handler sharedbid/services/auction/handler AuctionLedgerInterface

type AuctionLedgerInterface interface {
	Now() time.Time

	CreateListing(ctx context.Context, spec model.ListingSpec) (model.Listing, error)
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
	ListListings(ctx context.Context, filter model.ListingFilter) ([]model.Listing, error)
	Categories(ctx context.Context) ([]string, error)
	PlaceBid(ctx context.Context, listingID, bidderID, bidderName string, amount float64) (model.Bid, error)
	BidsForListing(ctx context.Context, listingID string) ([]model.Bid, error)
	CompleteAuction(ctx context.Context, listingID string) (model.Listing, error)

	CreateCollaborativePool(ctx context.Context, listingID, userID, userName string, contribution float64) (model.CollaborativePool, error)
	JoinCollaborativePool(ctx context.Context, listingID, userID, userName string, contribution float64) (model.CollaborativePool, error)

	ListingsBySeller(ctx context.Context, sellerID string) ([]model.Listing, error)
	BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error)
	PoolsForUser(ctx context.Context, userID string) ([]model.PoolSummary, error)
	SellerStats(ctx context.Context, sellerID string) (model.SellerStats, error)
	BidderStats(ctx context.Context, userID string) (model.BidderStats, error)
}

type AuctionHandler struct {
	ledger AuctionLedgerInterface
}

func NewAuctionHandler(ledger AuctionLedgerInterface) *AuctionHandler {
	return &AuctionHandler{ledger: ledger}
}

// ListListingsHandler handles GET /listings
func (h *AuctionHandler) ListListingsHandler(c *gin.Context) {
	var query helpers.ListingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		helpers.HandleBindError(c, "ListListingsHandler", err)
		return
	}

	listings, err := h.ledger.ListListings(c.Request.Context(), query.Filter())
	if err != nil {
		helpers.HandleServiceError(c, "ListListingsHandler", "failed to list listings", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponses(listings, h.ledger.Now()), "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"status":   query.Status,
		"category": query.Category,
		"count":    len(listings),
	})
}

// CategoriesHandler handles GET /listings/categories
func (h *AuctionHandler) CategoriesHandler(c *gin.Context) {
	categories, err := h.ledger.Categories(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "CategoriesHandler", "failed to list categories", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	claims, ok := requireClaims(c, "CreateListingHandler")
	if !ok {
		return
	}

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	listing, err := h.ledger.CreateListing(c.Request.Context(), model.ListingSpec{
		SellerID:    claims.UserID(),
		SellerName:  claims.Name,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		BasePrice:   req.BasePrice,
		Category:    req.Category,
		Condition:   req.Condition,
		EndTime:     req.EndTime,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", "failed to create listing", err, map[string]any{
			"seller_id": claims.UserID(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewListingResponse(listing, h.ledger.Now()), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller_id":  listing.SellerID,
		"base_price": listing.BasePrice,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.ledger.GetListing(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", "error retrieving listing", err, map[string]any{"listing_id": listingID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponse(listing, h.ledger.Now()), "listing retrieved successfully")
}

// GetBidsByListingHandler handles GET /listings/:listing_id/bids
func (h *AuctionHandler) GetBidsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	ctx := c.Request.Context()

	// unknown listings are a 404, not an empty history
	if _, err := h.ledger.GetListing(ctx, listingID); err != nil {
		helpers.HandleServiceError(c, "GetBidsByListingHandler", "error retrieving bids", err, map[string]any{"listing_id": listingID})
		return
	}
	bids, err := h.ledger.BidsForListing(ctx, listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsByListingHandler", "error retrieving bids", err, map[string]any{"listing_id": listingID})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByListingHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(bids),
	})
}

// PlaceBidHandler handles POST /listings/:listing_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	claims, ok := requireClaims(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	listingID := c.Param("listing_id")
	bid, err := h.ledger.PlaceBid(c.Request.Context(), listingID, claims.UserID(), claims.Name, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", "failed to place bid", err, map[string]any{
			"listing_id": listingID,
			"bidder_id":  claims.UserID(),
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// CompleteAuctionHandler handles POST /listings/:listing_id/complete. Only the
// listing's seller may complete it.
func (h *AuctionHandler) CompleteAuctionHandler(c *gin.Context) {
	claims, ok := requireClaims(c, "CompleteAuctionHandler")
	if !ok {
		return
	}

	listingID := c.Param("listing_id")
	ctx := c.Request.Context()
	fields := map[string]any{"listing_id": listingID, "user_id": claims.UserID()}

	listing, err := h.ledger.GetListing(ctx, listingID)
	if err != nil {
		helpers.HandleServiceError(c, "CompleteAuctionHandler", "failed to complete auction", err, fields)
		return
	}
	if listing.SellerID != claims.UserID() {
		err := fmt.Errorf("%w - listing %s belongs to another seller", biddingerrors.ErrForbidden, listingID)
		helpers.HandleServiceError(c, "CompleteAuctionHandler", "failed to complete auction", err, fields)
		return
	}

	sold, err := h.ledger.CompleteAuction(ctx, listingID)
	if err != nil {
		helpers.HandleServiceError(c, "CompleteAuctionHandler", "failed to complete auction", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingResponse(sold, h.ledger.Now()), "auction completed successfully")
	helpers.LogSuccess("CompleteAuctionHandler", "auction completed successfully", fields)
}

// CreatePoolHandler handles POST /listings/:listing_id/pool
func (h *AuctionHandler) CreatePoolHandler(c *gin.Context) {
	h.contribute(c, "CreatePoolHandler", http.StatusCreated, "collaborative pool created successfully", h.ledger.CreateCollaborativePool)
}

// JoinPoolHandler handles POST /listings/:listing_id/pool/join
func (h *AuctionHandler) JoinPoolHandler(c *gin.Context) {
	h.contribute(c, "JoinPoolHandler", http.StatusOK, "joined collaborative pool successfully", h.ledger.JoinCollaborativePool)
}

type contributeFunc func(ctx context.Context, listingID, userID, userName string, contribution float64) (model.CollaborativePool, error)

func (h *AuctionHandler) contribute(c *gin.Context, handlerName string, status int, message string, fn contributeFunc) {
	claims, ok := requireClaims(c, handlerName)
	if !ok {
		return
	}

	var req helpers.ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	listingID := c.Param("listing_id")
	pool, err := fn(c.Request.Context(), listingID, claims.UserID(), claims.Name, req.Contribution)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, "pool contribution failed", err, map[string]any{
			"listing_id":   listingID,
			"user_id":      claims.UserID(),
			"contribution": req.Contribution,
		})
		return
	}

	utils.JSONResponse(c, status, pool, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"listing_id":        listingID,
		"pool_id":           pool.PoolID,
		"user_id":           claims.UserID(),
		"total_amount":      pool.TotalAmount,
		"participant_count": pool.ParticipantCount,
		"pool_status":       pool.Status,
	})
}

// requireClaims fetches the caller's claims or answers 401
func requireClaims(c *gin.Context, handlerName string) (*auth.Claims, bool) {
	claims, ok := helpers.ClaimsFrom(c)
	if !ok {
		err := fmt.Errorf("%w - missing session", biddingerrors.ErrUnauthorized)
		helpers.HandleServiceError(c, handlerName, "unauthenticated request", err, nil)
		return nil, false
	}
	return claims, true
}
