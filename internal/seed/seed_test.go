package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sharedbid/internal/accounts"
	ledger "sharedbid/internal/auctionLedger"
	"sharedbid/internal/auth"
	model "sharedbid/internal/models"
	"sharedbid/internal/repository"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	l := ledger.NewAuctionLedger(repo)
	accts := accounts.NewAccountService(repo, auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour, "sharedbid"), bcrypt.MinCost)

	require.NoError(t, Load(ctx, l, accts, "sharedbid-demo"))

	listings, err := l.ListListings(ctx, model.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, listings, len(demoListings))

	for _, listing := range listings {
		bids, err := l.BidsForListing(ctx, listing.ListingID)
		require.NoError(t, err)
		require.Len(t, bids, listing.BidCount, "seeded %q keeps bidCount in step with bids", listing.Title)
	}

	sold, err := l.ListListings(ctx, model.ListingFilter{Status: model.ListingSold})
	require.NoError(t, err)
	require.Len(t, sold, 1)

	collaborative := true
	pooled, err := l.ListListings(ctx, model.ListingFilter{Collaborative: &collaborative})
	require.NoError(t, err)
	require.Len(t, pooled, 1)
	pool := pooled[0].CollaborativePool
	require.Equal(t, model.PoolForming, pool.Status)
	require.Equal(t, 3, pool.ParticipantCount)
	require.Equal(t, 1650.0, pool.TotalAmount)

	session, err := accts.Login(ctx, "bidder@example.com", "sharedbid-demo", model.RoleBidder)
	require.NoError(t, err)
	require.Equal(t, "Jane Bidder", session.User.Name)

	// a second load collides on the demo emails
	require.Error(t, Load(ctx, l, accts, "sharedbid-demo"))
}
