package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	model "sharedbid/internal/models"
)

// Request DTOs
type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateListingRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=5000"`
	ImageURL    string    `json:"image_url" binding:"omitempty,url"`
	BasePrice   float64   `json:"base_price" binding:"required,gt=0"`
	Category    string    `json:"category" binding:"max=100"`
	Condition   string    `json:"condition" binding:"max=100"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type ContributionRequest struct {
	Contribution float64 `json:"contribution" binding:"required,gt=0"`
}

type RegisterRequest struct {
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8"`
	Role     model.Role `json:"role" binding:"required,oneof=seller bidder"`
}

type LoginRequest struct {
	Email    string     `json:"email" binding:"required"`
	Password string     `json:"password" binding:"required"`
	Role     model.Role `json:"role" binding:"required,oneof=seller bidder"`
}

// ListingQuery is the query string accepted by GET /listings
type ListingQuery struct {
	Status        string `form:"status" binding:"omitempty,oneof=active sold expired"`
	Category      string `form:"category"`
	Query         string `form:"q"`
	Collaborative *bool  `form:"collaborative"`
}

// Filter converts the query to a ledger filter
func (q ListingQuery) Filter() model.ListingFilter {
	return model.ListingFilter{
		Status:        model.ListingStatus(q.Status),
		Category:      q.Category,
		Query:         q.Query,
		Collaborative: q.Collaborative,
	}
}

// Response DTOs
type ListingResponse struct {
	model.Listing
	EffectiveStatus model.ListingStatus `json:"effective_status"`
	MinNextBid      float64             `json:"min_next_bid"`
}

type StatsResponse struct {
	Seller model.SellerStats `json:"seller"`
	Bidder model.BidderStats `json:"bidder"`
}

// NewListingResponse decorates a listing with values computed at now
func NewListingResponse(listing model.Listing, now time.Time) ListingResponse {
	next, _ := decimal.NewFromFloat(listing.CurrentBid).Add(decimal.NewFromInt(1)).Round(2).Float64()
	return ListingResponse{
		Listing:         listing,
		EffectiveStatus: listing.EffectiveStatus(now),
		MinNextBid:      next,
	}
}

// NewListingResponses decorates every listing with values computed at now
func NewListingResponses(listings []model.Listing, now time.Time) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, listing := range listings {
		out = append(out, NewListingResponse(listing, now))
	}
	return out
}
