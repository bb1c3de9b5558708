package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
)

// Helper to create a new Listing
func newListing(listingID, sellerID, title, category string, basePrice float64) model.Listing {
	now := time.Now().UTC()
	return model.Listing{
		ListingID:   listingID,
		SellerID:    sellerID,
		SellerName:  "Seller " + sellerID,
		Title:       title,
		Description: fmt.Sprintf("%s description", title),
		Category:    category,
		Condition:   "Good",
		BasePrice:   basePrice,
		CurrentBid:  basePrice,
		EndTime:     now.Add(24 * time.Hour),
		CreatedAt:   now,
		Status:      model.ListingActive,
	}
}

// Helper to create a new Bid
func newBid(bidID, listingID, bidderID string, amount float64) model.Bid {
	return model.Bid{
		BidID:      bidID,
		ListingID:  listingID,
		BidderID:   bidderID,
		BidderName: "Bidder " + bidderID,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}
}

// bidTx raises the current bid and records one bid
func bidTx(bid model.Bid) ListingTxFunc {
	return func(l *model.Listing) ([]model.Bid, error) {
		l.CurrentBid = bid.Amount
		l.BidCount++
		return []model.Bid{bid}, nil
	}
}

// runAuctionDBContract exercises behaviour every AuctionDB implementation must share
func runAuctionDBContract(t *testing.T, newRepo func(t *testing.T) AuctionDB) {
	ctx := context.Background()

	t.Run("create_and_get_listing", func(t *testing.T) {
		repo := newRepo(t)
		listing := newListing("l1", "s1", "Vintage Watch", "Collectibles", 100)
		require.NoError(t, repo.CreateListing(ctx, listing))

		got, err := repo.GetListing(ctx, "l1")
		require.NoError(t, err)
		require.Equal(t, "Vintage Watch", got.Title)
		require.Equal(t, 100.0, got.CurrentBid)

		err = repo.CreateListing(ctx, listing)
		require.True(t, errors.Is(err, biddingerrors.ErrListingExists), "got %v", err)

		_, err = repo.GetListing(ctx, "missing")
		require.True(t, errors.Is(err, biddingerrors.ErrListingNotFound), "got %v", err)
	})

	t.Run("update_listing_commits_listing_and_bids", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateListing(ctx, newListing("l1", "s1", "Camera", "Electronics", 100)))

		updated, err := repo.UpdateListing(ctx, "l1", bidTx(newBid("b1", "l1", "u1", 150)))
		require.NoError(t, err)
		require.Equal(t, 150.0, updated.CurrentBid)
		require.Equal(t, 1, updated.BidCount)

		got, err := repo.GetListing(ctx, "l1")
		require.NoError(t, err)
		require.Equal(t, 150.0, got.CurrentBid)

		bids, err := repo.BidsByListing(ctx, "l1")
		require.NoError(t, err)
		require.Len(t, bids, 1)
		require.Equal(t, "b1", bids[0].BidID)

		byBidder, err := repo.BidsByBidder(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, byBidder, 1)
	})

	t.Run("update_listing_rolls_back_on_error", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateListing(ctx, newListing("l1", "s1", "Sofa", "Furniture", 100)))

		boom := errors.New("rejected")
		_, err := repo.UpdateListing(ctx, "l1", func(l *model.Listing) ([]model.Bid, error) {
			l.CurrentBid = 999
			l.BidCount = 42
			return []model.Bid{newBid("b1", "l1", "u1", 999)}, boom
		})
		require.ErrorIs(t, err, boom)

		got, err := repo.GetListing(ctx, "l1")
		require.NoError(t, err)
		require.Equal(t, 100.0, got.CurrentBid)
		require.Equal(t, 0, got.BidCount)

		bids, err := repo.BidsByListing(ctx, "l1")
		require.NoError(t, err)
		require.Empty(t, bids)
	})

	t.Run("update_missing_listing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.UpdateListing(ctx, "missing", bidTx(newBid("b1", "missing", "u1", 10)))
		require.True(t, errors.Is(err, biddingerrors.ErrListingNotFound), "got %v", err)
	})

	t.Run("list_listings_filters", func(t *testing.T) {
		repo := newRepo(t)
		watch := newListing("l1", "s1", "Vintage Watch", "Collectibles", 100)
		camera := newListing("l2", "s1", "Professional Camera", "Electronics", 500)
		camera.Description = "DSLR with lenses"
		sofa := newListing("l3", "s2", "Leather Sofa", "Furniture", 1200)
		sofa.Status = model.ListingSold
		camera.CollaborativePool = &model.CollaborativePool{PoolID: "p1", ListingID: "l2", Status: model.PoolForming}
		for _, l := range []model.Listing{watch, camera, sofa} {
			require.NoError(t, repo.CreateListing(ctx, l))
		}

		yes, no := true, false
		tests := []struct {
			name    string
			filter  model.ListingFilter
			wantIDs []string
		}{
			{name: "all", filter: model.ListingFilter{}, wantIDs: []string{"l1", "l2", "l3"}},
			{name: "status_sold", filter: model.ListingFilter{Status: model.ListingSold}, wantIDs: []string{"l3"}},
			{name: "category", filter: model.ListingFilter{Category: "Electronics"}, wantIDs: []string{"l2"}},
			{name: "seller", filter: model.ListingFilter{SellerID: "s1"}, wantIDs: []string{"l1", "l2"}},
			{name: "query_title_case_insensitive", filter: model.ListingFilter{Query: "WATCH"}, wantIDs: []string{"l1"}},
			{name: "query_description", filter: model.ListingFilter{Query: "dslr"}, wantIDs: []string{"l2"}},
			{name: "collaborative", filter: model.ListingFilter{Collaborative: &yes}, wantIDs: []string{"l2"}},
			{name: "not_collaborative", filter: model.ListingFilter{Collaborative: &no}, wantIDs: []string{"l1", "l3"}},
			{name: "no_match", filter: model.ListingFilter{Category: "Art"}, wantIDs: []string{}},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				listings, err := repo.ListListings(ctx, tc.filter)
				require.NoError(t, err)
				ids := make([]string, 0, len(listings))
				for _, l := range listings {
					ids = append(ids, l.ListingID)
				}
				require.Equal(t, tc.wantIDs, ids)
			})
		}
	})

	t.Run("pools_for_user", func(t *testing.T) {
		repo := newRepo(t)
		listing := newListing("l1", "s1", "Painting", "Art", 3000)
		listing.CollaborativePool = &model.CollaborativePool{
			PoolID:           "p1",
			ListingID:        "l1",
			Status:           model.PoolForming,
			TotalAmount:      550,
			ParticipantCount: 1,
			Participants:     []model.Participant{{UserID: "u1", UserName: "Jane", ContributionAmount: 550}},
		}
		require.NoError(t, repo.CreateListing(ctx, listing))
		require.NoError(t, repo.CreateListing(ctx, newListing("l2", "s1", "Table", "Furniture", 100)))

		pools, err := repo.PoolsForUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, pools, 1)
		require.Equal(t, "p1", pools[0].PoolID)
		require.Equal(t, "Painting", pools[0].ListingTitle)
		require.Equal(t, 3000.0, pools[0].CurrentBid)

		none, err := repo.PoolsForUser(ctx, "nobody")
		require.NoError(t, err)
		require.NotNil(t, none)
		require.Empty(t, none)
	})

	t.Run("users", func(t *testing.T) {
		repo := newRepo(t)
		user := model.User{UserID: "u1", Name: "Jane", Email: "Jane@Example.com", Role: model.RoleBidder, PasswordHash: "hash"}
		require.NoError(t, repo.CreateUser(ctx, user))

		got, err := repo.GetUser(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, "Jane", got.Name)

		got, err = repo.GetUserByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.Equal(t, "u1", got.UserID)

		dup := model.User{UserID: "u2", Name: "Other", Email: "JANE@example.com", Role: model.RoleSeller}
		err = repo.CreateUser(ctx, dup)
		require.True(t, errors.Is(err, biddingerrors.ErrUserAlreadyExists), "got %v", err)

		_, err = repo.GetUser(ctx, "missing")
		require.True(t, errors.Is(err, biddingerrors.ErrUserNotFound), "got %v", err)
		_, err = repo.GetUserByEmail(ctx, "missing@example.com")
		require.True(t, errors.Is(err, biddingerrors.ErrUserNotFound), "got %v", err)
	})

	t.Run("concurrent_updates_are_serialized", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateListing(ctx, newListing("l1", "s1", "Shared", "Misc", 0)))

		var wg sync.WaitGroup
		concurrentCount := 50
		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				_, err := repo.UpdateListing(ctx, "l1", func(l *model.Listing) ([]model.Bid, error) {
					l.BidCount++
					l.CurrentBid++
					return []model.Bid{newBid(fmt.Sprintf("b-%d", i), "l1", fmt.Sprintf("u-%d", i), l.CurrentBid)}, nil
				})
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := repo.GetListing(ctx, "l1")
		require.NoError(t, err)
		require.Equal(t, concurrentCount, got.BidCount)
		require.Equal(t, float64(concurrentCount), got.CurrentBid)

		bids, err := repo.BidsByListing(ctx, "l1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)
	})
}

func TestMemoryRepo_Contract(t *testing.T) {
	runAuctionDBContract(t, func(t *testing.T) AuctionDB { return NewMemoryRepo() })
}

// Returned listings must not alias the stored pool
func TestMemoryRepo_CopiesPools(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	listing := newListing("l1", "s1", "Painting", "Art", 100)
	listing.CollaborativePool = &model.CollaborativePool{
		PoolID:       "p1",
		Participants: []model.Participant{{UserID: "u1", ContributionAmount: 50}},
	}
	require.NoError(t, repo.CreateListing(ctx, listing))

	// mutate the caller's copy after insert
	listing.CollaborativePool.Participants[0].ContributionAmount = 1

	got, err := repo.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, 50.0, got.CollaborativePool.Participants[0].ContributionAmount)

	got.CollaborativePool.Participants[0].ContributionAmount = 2
	again, err := repo.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, 50.0, again.CollaborativePool.Participants[0].ContributionAmount)

	// a rejected transaction must not leak its edits to the pool
	_, err = repo.UpdateListing(ctx, "l1", func(l *model.Listing) ([]model.Bid, error) {
		l.CollaborativePool.Participants[0].ContributionAmount = 3
		return nil, errors.New("rejected")
	})
	require.Error(t, err)
	again, err = repo.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, 50.0, again.CollaborativePool.Participants[0].ContributionAmount)
}

// Concurrent readers observe whole transactions only
func TestMemoryRepo_ConsistentReads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateListing(ctx, newListing("l1", "s1", "Shared", "Misc", 0)))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		i := i
		go func() {
			defer wg.Done()
			_, err := repo.UpdateListing(ctx, "l1", func(l *model.Listing) ([]model.Bid, error) {
				l.BidCount++
				l.CurrentBid = float64(l.BidCount)
				return []model.Bid{newBid(fmt.Sprintf("b-%d", i), "l1", "u", l.CurrentBid)}, nil
			})
			require.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			l, err := repo.GetListing(ctx, "l1")
			require.NoError(t, err)
			require.Equal(t, float64(l.BidCount), l.CurrentBid)
		}()
	}
	wg.Wait()
}

func TestBuildListingQuery(t *testing.T) {
	t.Parallel()

	yes := true
	tests := []struct {
		name      string
		filter    model.ListingFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no_filter",
			filter:    model.ListingFilter{},
			wantQuery: "SELECT doc FROM listings ORDER BY seq",
		},
		{
			name:      "status_and_category",
			filter:    model.ListingFilter{Status: model.ListingActive, Category: "Art"},
			wantQuery: "SELECT doc FROM listings WHERE status = $1 AND category = $2 ORDER BY seq",
			wantArgs:  []any{"active", "Art"},
		},
		{
			name:      "query_and_collaborative",
			filter:    model.ListingFilter{Query: "50%_off", Collaborative: &yes},
			wantQuery: "SELECT doc FROM listings WHERE doc->'collaborative_pool' IS NOT NULL AND (doc->>'title' ILIKE $1 OR doc->>'description' ILIKE $1) ORDER BY seq",
			wantArgs:  []any{`%50\%\_off%`},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			query, args := buildListingQuery(tc.filter)
			require.Equal(t, tc.wantQuery, query)
			require.Equal(t, tc.wantArgs, args)
		})
	}
}
