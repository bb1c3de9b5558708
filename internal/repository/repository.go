package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository sharedbid/internal/repository AuctionDB

// ListingTxFunc mutates a listing inside a transaction and returns the bids to record
// alongside it. Returning an error aborts the transaction with nothing persisted.
type ListingTxFunc func(listing *model.Listing) ([]model.Bid, error)

// AuctionDB defines the storage interface for listings, bids and users
type AuctionDB interface {
	CreateListing(ctx context.Context, listing model.Listing) error
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
	ListListings(ctx context.Context, filter model.ListingFilter) ([]model.Listing, error)
	UpdateListing(ctx context.Context, listingID string, fn ListingTxFunc) (model.Listing, error)

	BidsByListing(ctx context.Context, listingID string) ([]model.Bid, error)
	BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error)
	PoolsForUser(ctx context.Context, userID string) ([]model.PoolSummary, error)

	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, userID string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	listings     map[string]model.Listing // key: listingID -> value: listing
	listingOrder []string                 // listing IDs in creation order
	bids         map[string][]model.Bid   // key: listingID -> value: bids in arrival order
	bidderBids   map[string][]model.Bid   // key: bidderID -> value: bids in arrival order
	users        map[string]model.User    // key: userID -> value: user
	emails       map[string]string        // key: lowercased email -> value: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings:   make(map[string]model.Listing),
		bids:       make(map[string][]model.Bid),
		bidderBids: make(map[string][]model.Bid),
		users:      make(map[string]model.User),
		emails:     make(map[string]string),
	}
}

// CreateListing stores a new listing
func (r *MemoryRepo) CreateListing(_ context.Context, listing model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ListingID]; ok {
		return fmt.Errorf("create listing %s: %w", listing.ListingID, biddingerrors.ErrListingExists)
	}
	r.listings[listing.ListingID] = listing.Clone()
	r.listingOrder = append(r.listingOrder, listing.ListingID)
	return nil
}

// GetListing returns a copy of a listing
func (r *MemoryRepo) GetListing(_ context.Context, listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	return listing.Clone(), nil
}

// ListListings returns listings matching filter in creation order
func (r *MemoryRepo) ListListings(_ context.Context, filter model.ListingFilter) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.Listing, 0, len(r.listingOrder))
	for _, id := range r.listingOrder {
		listing := r.listings[id]
		if matchesFilter(listing, filter) {
			listings = append(listings, listing.Clone())
		}
	}
	return listings, nil
}

// UpdateListing runs fn against a copy of the listing under the write lock and
// commits the listing and the returned bids together
func (r *MemoryRepo) UpdateListing(_ context.Context, listingID string, fn ListingTxFunc) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("update listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}

	working := current.Clone()
	newBids, err := fn(&working)
	if err != nil {
		return model.Listing{}, err
	}

	working.ListingID = listingID
	r.listings[listingID] = working
	for _, bid := range newBids {
		bid.ListingID = listingID
		r.bids[listingID] = append(r.bids[listingID], bid)
		r.bidderBids[bid.BidderID] = append(r.bidderBids[bid.BidderID], bid)
	}
	return working.Clone(), nil
}

// BidsByListing returns all bids recorded for a listing
func (r *MemoryRepo) BidsByListing(_ context.Context, listingID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Bid{}, r.bids[listingID]...), nil
}

// BidsByBidder returns all bids placed by a bidder
func (r *MemoryRepo) BidsByBidder(_ context.Context, bidderID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Bid{}, r.bidderBids[bidderID]...), nil
}

// PoolsForUser returns every pool the user participates in, joined with listing data
func (r *MemoryRepo) PoolsForUser(_ context.Context, userID string) ([]model.PoolSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pools := make([]model.PoolSummary, 0)
	for _, id := range r.listingOrder {
		listing := r.listings[id]
		pool := listing.CollaborativePool
		if pool == nil || pool.Participant(userID) < 0 {
			continue
		}
		pools = append(pools, model.PoolSummary{
			CollaborativePool: pool.Clone(),
			ListingTitle:      listing.Title,
			ListingImage:      listing.ImageURL,
			CurrentBid:        listing.CurrentBid,
		})
	}
	return pools, nil
}

// CreateUser stores a user, rejecting duplicate emails
func (r *MemoryRepo) CreateUser(_ context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := r.emails[key]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, biddingerrors.ErrUserAlreadyExists)
	}
	if _, ok := r.users[user.UserID]; ok {
		return fmt.Errorf("create user %s: %w", user.UserID, biddingerrors.ErrUserAlreadyExists)
	}
	r.users[user.UserID] = user
	r.emails[key] = user.UserID
	return nil
}

// GetUser returns a user by ID
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns a user by email, ignoring case
func (r *MemoryRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[strings.ToLower(email)]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, biddingerrors.ErrUserNotFound)
	}
	return r.users[id], nil
}

func matchesFilter(listing model.Listing, filter model.ListingFilter) bool {
	if filter.Status != "" && listing.Status != filter.Status {
		return false
	}
	if filter.Category != "" && listing.Category != filter.Category {
		return false
	}
	if filter.SellerID != "" && listing.SellerID != filter.SellerID {
		return false
	}
	if filter.Collaborative != nil && (listing.CollaborativePool != nil) != *filter.Collaborative {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(listing.Title), q) &&
			!strings.Contains(strings.ToLower(listing.Description), q) {
			return false
		}
	}
	return true
}
