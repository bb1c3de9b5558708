package models

import "time"

// Role is the marketplace role a user signs in with
type Role string

const (
	RoleSeller Role = "seller"
	RoleBidder Role = "bidder"
)

// ListingStatus is the stored lifecycle state of a listing
type ListingStatus string

const (
	ListingActive  ListingStatus = "active"
	ListingSold    ListingStatus = "sold"
	ListingExpired ListingStatus = "expired"
)

// PoolStatus is the lifecycle state of a collaborative pool
type PoolStatus string

const (
	PoolForming PoolStatus = "forming"
	PoolActive  PoolStatus = "active"
	PoolWon     PoolStatus = "won"
	PoolLost    PoolStatus = "lost"
)

// User represents a registered marketplace participant
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns the user without credentials
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// ListingSpec is the seller input for a new listing
type ListingSpec struct {
	SellerID    string    `json:"seller_id" validate:"required"`
	SellerName  string    `json:"seller_name" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	BasePrice   float64   `json:"base_price" validate:"gt=0"`
	Category    string    `json:"category" validate:"max=100"`
	Condition   string    `json:"condition" validate:"max=100"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}

// Listing represents a product up for auction
type Listing struct {
	ListingID         string             `json:"listing_id"`
	SellerID          string             `json:"seller_id"`
	SellerName        string             `json:"seller_name"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	ImageURL          string             `json:"image_url"`
	Category          string             `json:"category"`
	Condition         string             `json:"condition"`
	BasePrice         float64            `json:"base_price"`
	CurrentBid        float64            `json:"current_bid"`
	BidCount          int                `json:"bid_count"`
	EndTime           time.Time          `json:"end_time"`
	CreatedAt         time.Time          `json:"created_at"`
	Status            ListingStatus      `json:"status"`
	CollaborativePool *CollaborativePool `json:"collaborative_pool,omitempty"`
}

// Clone returns a deep copy, including the embedded pool and its participants
func (l Listing) Clone() Listing {
	if l.CollaborativePool != nil {
		pool := l.CollaborativePool.Clone()
		l.CollaborativePool = &pool
	}
	return l
}

// AcceptsBids reports whether the listing is active and not yet past its end time
func (l Listing) AcceptsBids(now time.Time) bool {
	return l.Status == ListingActive && now.Before(l.EndTime)
}

// EffectiveStatus reports expired for an active listing whose end time has passed.
// Expiry is never written back to Status.
func (l Listing) EffectiveStatus(now time.Time) ListingStatus {
	if l.Status == ListingActive && !now.Before(l.EndTime) {
		return ListingExpired
	}
	return l.Status
}

// Bid represents a single offer against a listing
type Bid struct {
	BidID            string    `json:"bid_id"`
	ListingID        string    `json:"listing_id"`
	BidderID         string    `json:"bidder_id"`
	BidderName       string    `json:"bidder_name"`
	Amount           float64   `json:"amount"`
	CreatedAt        time.Time `json:"created_at"`
	IsCollaborative  bool      `json:"is_collaborative,omitempty"`
	CollaborationID  string    `json:"collaboration_id,omitempty"`
	ParticipantCount int       `json:"participant_count,omitempty"`
}

// CollaborativePool pools contributions from several users toward one bid
type CollaborativePool struct {
	PoolID           string        `json:"pool_id"`
	ListingID        string        `json:"listing_id"`
	Status           PoolStatus    `json:"status"`
	TotalAmount      float64       `json:"total_amount"`
	ParticipantCount int           `json:"participant_count"`
	Participants     []Participant `json:"participants"`
	CreatedAt        time.Time     `json:"created_at"`
	// Set once, when the pool is promoted to a bid
	PromotedBidID  string     `json:"promoted_bid_id,omitempty"`
	PromotedAmount float64    `json:"promoted_amount,omitempty"`
	PromotedAt     *time.Time `json:"promoted_at,omitempty"`
}

// Clone returns a copy that does not share the participants slice
func (p CollaborativePool) Clone() CollaborativePool {
	p.Participants = append([]Participant(nil), p.Participants...)
	if p.PromotedAt != nil {
		at := *p.PromotedAt
		p.PromotedAt = &at
	}
	return p
}

// Participant returns the index of userID in the pool, or -1
func (p *CollaborativePool) Participant(userID string) int {
	for i := range p.Participants {
		if p.Participants[i].UserID == userID {
			return i
		}
	}
	return -1
}

// Participant is a user who has contributed to a pool
type Participant struct {
	UserID             string    `json:"user_id"`
	UserName           string    `json:"user_name"`
	ContributionAmount float64   `json:"contribution_amount"`
	JoinedAt           time.Time `json:"joined_at"`
}

// PoolSummary is a pool joined with the listing data a participant needs to see
type PoolSummary struct {
	CollaborativePool
	ListingTitle string  `json:"listing_title"`
	ListingImage string  `json:"listing_image"`
	CurrentBid   float64 `json:"current_bid"`
}

// ListingFilter narrows ListListings. Zero values match everything.
type ListingFilter struct {
	Status        ListingStatus
	Category      string
	Query         string
	SellerID      string
	Collaborative *bool
}

// SellerStats summarizes a seller's listings
type SellerStats struct {
	TotalSales      float64 `json:"total_sales"`
	ActiveListings  int     `json:"active_listings"`
	SoldListings    int     `json:"sold_listings"`
	TotalBids       int     `json:"total_bids"`
	AverageBidPrice float64 `json:"average_bid_price"`
}

// BidderStats summarizes a bidder's activity
type BidderStats struct {
	ParticipatedBids     int     `json:"participated_bids"`
	WonAuctions          int     `json:"won_auctions"`
	ActiveCollaborations int     `json:"active_collaborations"`
	TotalSpent           float64 `json:"total_spent"`
}
