// Package seed loads a small demo marketplace through the public ledger and
// account operations, so seeded state obeys the same rules as live traffic.
package seed

import (
	"context"
	"fmt"
	"time"

	"sharedbid/internal/accounts"
	ledger "sharedbid/internal/auctionLedger"
	model "sharedbid/internal/models"
	"sharedbid/utils"
)

type demoUser struct {
	key   string
	name  string
	email string
	role  model.Role
}

var demoUsers = []demoUser{
	{key: "john", name: "John Seller", email: "seller@example.com", role: model.RoleSeller},
	{key: "mike", name: "Mike Brown", email: "mike@example.com", role: model.RoleSeller},
	{key: "jane", name: "Jane Bidder", email: "bidder@example.com", role: model.RoleBidder},
	{key: "sarah", name: "Sarah Wilson", email: "sarah@example.com", role: model.RoleBidder},
	{key: "alex", name: "Alex Chen", email: "alex@example.com", role: model.RoleBidder},
}

type demoBid struct {
	bidder string
	amount float64
}

type demoListing struct {
	seller      string
	title       string
	description string
	imageURL    string
	category    string
	condition   string
	basePrice   float64
	endsIn      time.Duration
	bids        []demoBid
	pool        []demoBid // first entry creates the pool
	sold        bool
}

var demoListings = []demoListing{
	{
		seller:      "john",
		title:       "Vintage Watch Collection",
		description: "A rare collection of vintage watches from the 1950s.",
		imageURL:    "https://images.unsplash.com/photo-1587836374828-4dbafa94cf0e",
		category:    "Collectibles",
		condition:   "Good",
		basePrice:   1500,
		endsIn:      3 * 24 * time.Hour,
		bids:        []demoBid{{"jane", 1600}, {"sarah", 1700}, {"jane", 1750}},
	},
	{
		seller:      "john",
		title:       "Modern Art Painting",
		description: "Original painting by a contemporary artist.",
		imageURL:    "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5",
		category:    "Art",
		condition:   "Excellent",
		basePrice:   3000,
		endsIn:      5 * 24 * time.Hour,
		bids:        []demoBid{{"alex", 3200}},
		pool:        []demoBid{{"jane", 550}, {"sarah", 600}, {"alex", 500}},
	},
	{
		seller:      "john",
		title:       "Gaming PC Setup",
		description: "Complete gaming PC setup with high-end specs and peripherals.",
		imageURL:    "https://images.unsplash.com/photo-1593640495253-23196b27a87f",
		category:    "Electronics",
		condition:   "Like New",
		basePrice:   2000,
		endsIn:      2 * 24 * time.Hour,
		bids:        []demoBid{{"sarah", 2200}, {"alex", 2400}},
	},
	{
		seller:      "mike",
		title:       "Luxury Leather Sofa",
		description: "Premium Italian leather sofa in excellent condition.",
		imageURL:    "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e",
		category:    "Furniture",
		condition:   "Good",
		basePrice:   1200,
		endsIn:      4 * 24 * time.Hour,
		bids:        []demoBid{{"jane", 1450}},
	},
	{
		seller:      "john",
		title:       "Antique Dining Table",
		description: "Beautiful antique oak dining table from the 19th century.",
		imageURL:    "https://images.unsplash.com/photo-1595428774223-ef52624120d2",
		category:    "Furniture",
		condition:   "Vintage",
		basePrice:   2500,
		endsIn:      24 * time.Hour,
		bids:        []demoBid{{"sarah", 2600}, {"jane", 2700}},
		sold:        true,
	},
}

// Load registers the demo accounts with password and populates listings, bids
// and a forming collaborative pool
func Load(ctx context.Context, l *ledger.AuctionLedger, accts *accounts.AccountService, password string) error {
	users := make(map[string]model.User, len(demoUsers))
	for _, u := range demoUsers {
		session, err := accts.Register(ctx, accounts.Registration{
			Name:     u.name,
			Email:    u.email,
			Password: password,
			Role:     u.role,
		})
		if err != nil {
			return fmt.Errorf("seed: register %s: %w", u.email, err)
		}
		users[u.key] = session.User
	}

	now := l.Now()
	for _, d := range demoListings {
		seller := users[d.seller]
		listing, err := l.CreateListing(ctx, model.ListingSpec{
			SellerID:    seller.UserID,
			SellerName:  seller.Name,
			Title:       d.title,
			Description: d.description,
			ImageURL:    d.imageURL,
			BasePrice:   d.basePrice,
			Category:    d.category,
			Condition:   d.condition,
			EndTime:     now.Add(d.endsIn),
		})
		if err != nil {
			return fmt.Errorf("seed: create %q: %w", d.title, err)
		}

		for _, b := range d.bids {
			bidder := users[b.bidder]
			if _, err := l.PlaceBid(ctx, listing.ListingID, bidder.UserID, bidder.Name, b.amount); err != nil {
				return fmt.Errorf("seed: bid on %q: %w", d.title, err)
			}
		}

		for i, p := range d.pool {
			member := users[p.bidder]
			if i == 0 {
				_, err = l.CreateCollaborativePool(ctx, listing.ListingID, member.UserID, member.Name, p.amount)
			} else {
				_, err = l.JoinCollaborativePool(ctx, listing.ListingID, member.UserID, member.Name, p.amount)
			}
			if err != nil {
				return fmt.Errorf("seed: pool on %q: %w", d.title, err)
			}
		}

		if d.sold {
			if _, err := l.CompleteAuction(ctx, listing.ListingID); err != nil {
				return fmt.Errorf("seed: complete %q: %w", d.title, err)
			}
		}
	}

	utils.Info("demo data loaded", map[string]any{
		"users":    len(demoUsers),
		"listings": len(demoListings),
	})
	return nil
}
