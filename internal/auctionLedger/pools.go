package ledger

import (
	"context"
	"fmt"
	"time"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
	"sharedbid/utils"
)

const poolBidderName = "Collaborative Bid"

// CreateCollaborativePool opens a forming pool on a listing with its first participant
func (l *AuctionLedger) CreateCollaborativePool(ctx context.Context, listingID, userID, userName string, contribution float64) (model.CollaborativePool, error) {
	var pool model.CollaborativePool
	_, err := l.repo.UpdateListing(ctx, listingID, func(listing *model.Listing) ([]model.Bid, error) {
		now := l.now()
		if !listing.AcceptsBids(now) {
			return nil, fmt.Errorf("%w - listing is %s", biddingerrors.ErrAuctionNotActive, listing.EffectiveStatus(now))
		}
		if listing.CollaborativePool != nil {
			return nil, fmt.Errorf("%w - pool %s", biddingerrors.ErrPoolAlreadyExists, listing.CollaborativePool.PoolID)
		}
		amount, err := validateContribution(contribution)
		if err != nil {
			return nil, err
		}

		pool = model.CollaborativePool{
			PoolID:    l.newID(),
			ListingID: listingID,
			Status:    model.PoolForming,
			Participants: []model.Participant{{
				UserID:             userID,
				UserName:           userName,
				ContributionAmount: amount,
				JoinedAt:           now,
			}},
			CreatedAt: now,
		}
		recomputePool(&pool)

		attached := pool.Clone()
		listing.CollaborativePool = &attached
		return nil, nil
	})
	if err != nil {
		return model.CollaborativePool{}, fmt.Errorf("ledger: failed to create pool on listing %s for user %s: %w", listingID, userID, err)
	}
	return pool, nil
}

// JoinCollaborativePool sets a participant's contribution, replacing any earlier
// stake from the same user. The first join that brings the total to the current
// bid promotes the pool into a bid.
func (l *AuctionLedger) JoinCollaborativePool(ctx context.Context, listingID, userID, userName string, contribution float64) (model.CollaborativePool, error) {
	var (
		pool     model.CollaborativePool
		promoted *model.Bid
	)
	_, err := l.repo.UpdateListing(ctx, listingID, func(listing *model.Listing) ([]model.Bid, error) {
		if listing.CollaborativePool == nil {
			return nil, fmt.Errorf("%w - listing %s has no pool", biddingerrors.ErrPoolNotFound, listingID)
		}
		now := l.now()
		if !listing.AcceptsBids(now) {
			return nil, fmt.Errorf("%w - listing is %s", biddingerrors.ErrAuctionNotActive, listing.EffectiveStatus(now))
		}
		amount, err := validateContribution(contribution)
		if err != nil {
			return nil, err
		}

		p := listing.CollaborativePool
		if i := p.Participant(userID); i >= 0 {
			p.Participants[i].ContributionAmount = amount
		} else {
			p.Participants = append(p.Participants, model.Participant{
				UserID:             userID,
				UserName:           userName,
				ContributionAmount: amount,
				JoinedAt:           now,
			})
		}
		recomputePool(p)

		var bids []model.Bid
		if bid, ok := l.promote(listing, now); ok {
			promoted = &bid
			bids = append(bids, bid)
		}
		pool = p.Clone()
		return bids, nil
	})
	if err != nil {
		return model.CollaborativePool{}, fmt.Errorf("ledger: failed to join pool on listing %s for user %s: %w", listingID, userID, err)
	}

	if promoted != nil {
		utils.Info("collaborative pool promoted to bid", map[string]any{
			"listing_id":        listingID,
			"pool_id":           pool.PoolID,
			"bid_id":            promoted.BidID,
			"amount":            promoted.Amount,
			"participant_count": promoted.ParticipantCount,
		})
	}
	return pool, nil
}

// promote turns a forming pool whose total reaches the current bid into a bid.
// It fires at most once per pool.
func (l *AuctionLedger) promote(listing *model.Listing, now time.Time) (model.Bid, bool) {
	p := listing.CollaborativePool
	if p.Status != model.PoolForming || !reaches(p.TotalAmount, listing.CurrentBid) {
		return model.Bid{}, false
	}

	bid := model.Bid{
		BidID:            l.newID(),
		ListingID:        listing.ListingID,
		BidderID:         p.PoolID,
		BidderName:       poolBidderName,
		Amount:           p.TotalAmount,
		CreatedAt:        now,
		IsCollaborative:  true,
		CollaborationID:  p.PoolID,
		ParticipantCount: p.ParticipantCount,
	}

	p.Status = model.PoolActive
	p.PromotedBidID = bid.BidID
	p.PromotedAmount = bid.Amount
	promotedAt := now
	p.PromotedAt = &promotedAt

	listing.CurrentBid = p.TotalAmount
	listing.BidCount++
	return bid, true
}

// recomputePool derives the total and participant count from the participants
func recomputePool(p *model.CollaborativePool) {
	p.TotalAmount = sumContributions(p.Participants)
	p.ParticipantCount = len(p.Participants)
}

func validateContribution(contribution float64) (float64, error) {
	amount, ok := normalizeAmount(contribution)
	if !ok {
		return 0, fmt.Errorf("%w - contribution must be positive", biddingerrors.ErrInvalidContribution)
	}
	return amount, nil
}
