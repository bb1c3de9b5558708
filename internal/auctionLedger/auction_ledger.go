package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
	"sharedbid/internal/repository"
	"sharedbid/utils"
)

// AuctionLedger is the single authority over listings, bids and collaborative
// pools. Every mutation is one repository transaction on one listing.
type AuctionLedger struct {
	repo     repository.AuctionDB
	validate *validator.Validate
	now      func() time.Time
	newID    utils.IDFunc
}

// Option configures an AuctionLedger
type Option func(*AuctionLedger)

// WithClock replaces the wall clock used for expiry checks and timestamps
func WithClock(now func() time.Time) Option {
	return func(l *AuctionLedger) {
		l.now = now
	}
}

// WithIDs replaces the generator of listing, bid and pool ids
func WithIDs(newID utils.IDFunc) Option {
	return func(l *AuctionLedger) {
		l.newID = newID
	}
}

// NewAuctionLedger creates a new AuctionLedger instance
func NewAuctionLedger(repo repository.AuctionDB, opts ...Option) *AuctionLedger {
	l := &AuctionLedger{
		repo:     repo,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    utils.GenerateID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the ledger's current time
func (l *AuctionLedger) Now() time.Time {
	return l.now()
}

// CreateListing validates a seller's spec and opens a new auction
func (l *AuctionLedger) CreateListing(ctx context.Context, spec model.ListingSpec) (model.Listing, error) {
	spec.SellerID = strings.TrimSpace(spec.SellerID)
	spec.SellerName = strings.TrimSpace(spec.SellerName)
	spec.Title = strings.TrimSpace(spec.Title)
	spec.Category = strings.TrimSpace(spec.Category)
	spec.Condition = strings.TrimSpace(spec.Condition)

	now := l.now()
	basePrice, err := l.validateListingSpec(spec, now)
	if err != nil {
		return model.Listing{}, err
	}

	listing := model.Listing{
		ListingID:   l.newID(),
		SellerID:    spec.SellerID,
		SellerName:  spec.SellerName,
		Title:       spec.Title,
		Description: spec.Description,
		ImageURL:    spec.ImageURL,
		Category:    spec.Category,
		Condition:   spec.Condition,
		BasePrice:   basePrice,
		CurrentBid:  basePrice,
		BidCount:    0,
		EndTime:     spec.EndTime.UTC(),
		CreatedAt:   now,
		Status:      model.ListingActive,
	}

	if err := l.repo.CreateListing(ctx, listing); err != nil {
		return model.Listing{}, fmt.Errorf("ledger: failed to create listing for seller %s: %w", spec.SellerID, err)
	}
	return listing, nil
}

func (l *AuctionLedger) validateListingSpec(spec model.ListingSpec, now time.Time) (float64, error) {
	if err := l.validate.Struct(spec); err != nil {
		return 0, fmt.Errorf("ledger: %w - %v", biddingerrors.ErrInvalidListingSpec, err)
	}
	basePrice, ok := normalizeAmount(spec.BasePrice)
	if !ok {
		return 0, fmt.Errorf("ledger: %w - base price must be positive", biddingerrors.ErrInvalidListingSpec)
	}
	if !spec.EndTime.After(now) {
		return 0, fmt.Errorf("ledger: %w - end time must be in the future", biddingerrors.ErrInvalidListingSpec)
	}
	return basePrice, nil
}

// PlaceBid records a bid that strictly exceeds the listing's current bid.
// Failures are checked in order: unknown listing, closed auction, low amount.
func (l *AuctionLedger) PlaceBid(ctx context.Context, listingID, bidderID, bidderName string, amount float64) (model.Bid, error) {
	var bid model.Bid
	_, err := l.repo.UpdateListing(ctx, listingID, func(listing *model.Listing) ([]model.Bid, error) {
		now := l.now()
		if !listing.AcceptsBids(now) {
			return nil, fmt.Errorf("%w - listing is %s", biddingerrors.ErrAuctionNotActive, listing.EffectiveStatus(now))
		}
		normalized, ok := normalizeAmount(amount)
		if !ok || !exceeds(normalized, listing.CurrentBid) {
			return nil, fmt.Errorf("%w - current bid is %.2f", biddingerrors.ErrBidTooLow, listing.CurrentBid)
		}

		bid = model.Bid{
			BidID:      l.newID(),
			ListingID:  listingID,
			BidderID:   bidderID,
			BidderName: bidderName,
			Amount:     normalized,
			CreatedAt:  now,
		}
		listing.CurrentBid = normalized
		listing.BidCount++
		return []model.Bid{bid}, nil
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("ledger: failed to place bid on listing %s by %s: %w", listingID, bidderID, err)
	}
	utils.Debug("bid placed", map[string]any{
		"listing_id": listingID,
		"bid_id":     bid.BidID,
		"bidder_id":  bidderID,
		"amount":     bid.Amount,
	})
	return bid, nil
}

// CompleteAuction marks a listing sold regardless of its end time and settles
// its collaborative pool, if any
func (l *AuctionLedger) CompleteAuction(ctx context.Context, listingID string) (model.Listing, error) {
	listing, err := l.repo.UpdateListing(ctx, listingID, func(listing *model.Listing) ([]model.Bid, error) {
		listing.Status = model.ListingSold
		settlePool(listing)
		return nil, nil
	})
	if err != nil {
		return model.Listing{}, fmt.Errorf("ledger: failed to complete auction %s: %w", listingID, err)
	}

	fields := map[string]any{
		"listing_id":  listingID,
		"current_bid": listing.CurrentBid,
		"bid_count":   listing.BidCount,
	}
	if listing.CollaborativePool != nil {
		fields["pool_status"] = listing.CollaborativePool.Status
	}
	utils.Info("auction completed", fields)
	return listing, nil
}

// settlePool resolves a live pool once its listing is sold: it won if its
// promoted bid is still the current bid, otherwise it lost
func settlePool(listing *model.Listing) {
	pool := listing.CollaborativePool
	if pool == nil {
		return
	}
	switch pool.Status {
	case model.PoolActive:
		if pool.PromotedBidID != "" && reaches(pool.PromotedAmount, listing.CurrentBid) {
			pool.Status = model.PoolWon
		} else {
			pool.Status = model.PoolLost
		}
	case model.PoolForming:
		pool.Status = model.PoolLost
	}
}

// GetListing returns a single listing
func (l *AuctionLedger) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	listing, err := l.repo.GetListing(ctx, listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("ledger: failed to get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ListListings returns listings matching filter. Status is matched against the
// effective status, so an active listing past its end time counts as expired.
func (l *AuctionLedger) ListListings(ctx context.Context, filter model.ListingFilter) ([]model.Listing, error) {
	wantStatus := filter.Status
	if wantStatus == model.ListingExpired {
		filter.Status = model.ListingActive
	}

	listings, err := l.repo.ListListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list listings: %w", err)
	}
	if wantStatus != model.ListingActive && wantStatus != model.ListingExpired {
		return listings, nil
	}

	now := l.now()
	filtered := make([]model.Listing, 0, len(listings))
	for _, listing := range listings {
		if listing.EffectiveStatus(now) == wantStatus {
			filtered = append(filtered, listing)
		}
	}
	return filtered, nil
}

// Categories returns the sorted set of categories in use
func (l *AuctionLedger) Categories(ctx context.Context) ([]string, error) {
	listings, err := l.repo.ListListings(ctx, model.ListingFilter{})
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list categories: %w", err)
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, listing := range listings {
		if listing.Category == "" {
			continue
		}
		if _, ok := seen[listing.Category]; ok {
			continue
		}
		seen[listing.Category] = struct{}{}
		categories = append(categories, listing.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// ListingsBySeller returns every listing created by a seller
func (l *AuctionLedger) ListingsBySeller(ctx context.Context, sellerID string) ([]model.Listing, error) {
	listings, err := l.repo.ListListings(ctx, model.ListingFilter{SellerID: sellerID})
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get listings for seller %s: %w", sellerID, err)
	}
	return listings, nil
}

// BidsByBidder returns every bid placed by a bidder
func (l *AuctionLedger) BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	bids, err := l.repo.BidsByBidder(ctx, bidderID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for bidder %s: %w", bidderID, err)
	}
	return bids, nil
}

// BidsForListing returns every bid recorded against a listing, oldest first
func (l *AuctionLedger) BidsForListing(ctx context.Context, listingID string) ([]model.Bid, error) {
	bids, err := l.repo.BidsByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// HighestBid returns the highest bid on a listing; ties go to the earlier bid.
// ok is false when the listing has no bids.
func (l *AuctionLedger) HighestBid(ctx context.Context, listingID string) (bid model.Bid, ok bool, err error) {
	bids, err := l.BidsForListing(ctx, listingID)
	if err != nil {
		return model.Bid{}, false, err
	}
	if len(bids) == 0 {
		return model.Bid{}, false, nil
	}
	return highest(bids), true, nil
}

func highest(bids []model.Bid) model.Bid {
	winning := bids[0]
	for _, b := range bids[1:] {
		if exceeds(b.Amount, winning.Amount) {
			winning = b
		}
	}
	return winning
}

// PoolsForUser returns every pool the user participates in with listing summary data
func (l *AuctionLedger) PoolsForUser(ctx context.Context, userID string) ([]model.PoolSummary, error) {
	pools, err := l.repo.PoolsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get pools for user %s: %w", userID, err)
	}
	return pools, nil
}
