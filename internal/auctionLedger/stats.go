package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
)

// SellerStats summarizes a seller's listings for the dashboard
func (l *AuctionLedger) SellerStats(ctx context.Context, sellerID string) (model.SellerStats, error) {
	listings, err := l.ListingsBySeller(ctx, sellerID)
	if err != nil {
		return model.SellerStats{}, err
	}

	var (
		stats = model.SellerStats{}
		sales = decimal.Zero
		all   = decimal.Zero
		now   = l.now()
	)
	for _, listing := range listings {
		switch listing.EffectiveStatus(now) {
		case model.ListingActive:
			stats.ActiveListings++
		case model.ListingSold:
			stats.SoldListings++
			sales = sales.Add(toMoney(listing.CurrentBid))
		}
		stats.TotalBids += listing.BidCount
		all = all.Add(toMoney(listing.CurrentBid))
	}

	stats.TotalSales = fromMoney(sales)
	if len(listings) > 0 {
		stats.AverageBidPrice = fromMoney(all.Div(decimal.NewFromInt(int64(len(listings)))).Round(monetaryPrecision))
	}
	return stats, nil
}

// BidderStats summarizes a bidder's activity. An auction counts as won when the
// listing is sold and the user's highest bid on it equals the final bid.
func (l *AuctionLedger) BidderStats(ctx context.Context, userID string) (model.BidderStats, error) {
	bids, err := l.BidsByBidder(ctx, userID)
	if err != nil {
		return model.BidderStats{}, err
	}
	pools, err := l.PoolsForUser(ctx, userID)
	if err != nil {
		return model.BidderStats{}, err
	}

	stats := model.BidderStats{ParticipatedBids: len(bids)}

	// highest bid per listing, in first-bid order
	best := make(map[string]float64)
	order := make([]string, 0)
	for _, bid := range bids {
		prev, seen := best[bid.ListingID]
		if !seen {
			order = append(order, bid.ListingID)
		}
		if !seen || exceeds(bid.Amount, prev) {
			best[bid.ListingID] = bid.Amount
		}
	}

	spent := make([]float64, 0)
	for _, listingID := range order {
		listing, err := l.repo.GetListing(ctx, listingID)
		if errors.Is(err, biddingerrors.ErrListingNotFound) {
			continue
		}
		if err != nil {
			return model.BidderStats{}, fmt.Errorf("ledger: failed to get stats for bidder %s: %w", userID, err)
		}
		if listing.Status == model.ListingSold && !exceeds(listing.CurrentBid, best[listingID]) {
			stats.WonAuctions++
			spent = append(spent, listing.CurrentBid)
		}
	}
	stats.TotalSpent = fromMoney(sumAmounts(spent...))

	for _, pool := range pools {
		if pool.Status == model.PoolForming || pool.Status == model.PoolActive {
			stats.ActiveCollaborations++
		}
	}
	return stats, nil
}
