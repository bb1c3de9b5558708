package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS listings (
	listing_id TEXT PRIMARY KEY,
	seller_id  TEXT NOT NULL,
	status     TEXT NOT NULL,
	category   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	seq        BIGSERIAL,
	doc        JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS listings_seller_idx ON listings (seller_id);

CREATE TABLE IF NOT EXISTS bids (
	bid_id     TEXT PRIMARY KEY,
	listing_id TEXT NOT NULL REFERENCES listings (listing_id),
	bidder_id  TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	seq        BIGSERIAL,
	doc        JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS bids_listing_idx ON bids (listing_id);
CREATE INDEX IF NOT EXISTS bids_bidder_idx ON bids (bidder_id);

CREATE TABLE IF NOT EXISTS users (
	user_id TEXT PRIMARY KEY,
	email   TEXT NOT NULL,
	doc     JSONB NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users (lower(email));
`

// PgxDB is the subset of *pgxpool.Pool used by PostgresRepo
type PgxDB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepo is a durable implementation of AuctionDB. Each record is stored as
// a JSON document next to the scalar columns it is queried by.
type PostgresRepo struct {
	db PgxDB
}

// NewPostgresRepo wraps an open connection pool
func NewPostgresRepo(db PgxDB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Migrate creates the tables and indexes if they do not exist
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// CreateListing stores a new listing
func (r *PostgresRepo) CreateListing(ctx context.Context, listing model.Listing) error {
	doc, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("create listing %s: encode: %w", listing.ListingID, err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO listings (listing_id, seller_id, status, category, created_at, doc)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		listing.ListingID, listing.SellerID, string(listing.Status), listing.Category, listing.CreatedAt, doc,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create listing %s: %w", listing.ListingID, biddingerrors.ErrListingExists)
	}
	if err != nil {
		return fmt.Errorf("create listing %s: %w", listing.ListingID, err)
	}
	return nil
}

// GetListing returns a listing by ID
func (r *PostgresRepo) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM listings WHERE listing_id = $1`, listingID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}

	var listing model.Listing
	if err := json.Unmarshal(doc, &listing); err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: decode: %w", listingID, err)
	}
	return listing, nil
}

// ListListings returns listings matching filter in creation order
func (r *PostgresRepo) ListListings(ctx context.Context, filter model.ListingFilter) ([]model.Listing, error) {
	query, args := buildListingQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	listings := make([]model.Listing, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("list listings: scan: %w", err)
		}
		var listing model.Listing
		if err := json.Unmarshal(doc, &listing); err != nil {
			return nil, fmt.Errorf("list listings: decode: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// buildListingQuery renders filter as a parameterized SELECT
func buildListingQuery(filter model.ListingFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		conds = append(conds, "status = "+arg(string(filter.Status)))
	}
	if filter.Category != "" {
		conds = append(conds, "category = "+arg(filter.Category))
	}
	if filter.SellerID != "" {
		conds = append(conds, "seller_id = "+arg(filter.SellerID))
	}
	if filter.Collaborative != nil {
		if *filter.Collaborative {
			conds = append(conds, "doc->'collaborative_pool' IS NOT NULL")
		} else {
			conds = append(conds, "doc->'collaborative_pool' IS NULL")
		}
	}
	if filter.Query != "" {
		p := arg("%" + escapeLike(filter.Query) + "%")
		conds = append(conds, fmt.Sprintf("(doc->>'title' ILIKE %s OR doc->>'description' ILIKE %s)", p, p))
	}

	query := "SELECT doc FROM listings"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY seq"
	return query, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// UpdateListing locks the listing row, runs fn and commits the listing together
// with the returned bids
func (r *PostgresRepo) UpdateListing(ctx context.Context, listingID string, fn ListingTxFunc) (model.Listing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Listing{}, fmt.Errorf("update listing %s: begin: %w", listingID, err)
	}
	defer func() { _ = tx.Rollback(ctx) }() // no-op after commit

	var doc []byte
	err = tx.QueryRow(ctx, `SELECT doc FROM listings WHERE listing_id = $1 FOR UPDATE`, listingID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Listing{}, fmt.Errorf("update listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("update listing %s: lock: %w", listingID, err)
	}

	var listing model.Listing
	if err := json.Unmarshal(doc, &listing); err != nil {
		return model.Listing{}, fmt.Errorf("update listing %s: decode: %w", listingID, err)
	}

	newBids, err := fn(&listing)
	if err != nil {
		return model.Listing{}, err
	}
	listing.ListingID = listingID

	doc, err = json.Marshal(listing)
	if err != nil {
		return model.Listing{}, fmt.Errorf("update listing %s: encode: %w", listingID, err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE listings SET status = $2, doc = $3 WHERE listing_id = $1`,
		listingID, string(listing.Status), doc,
	); err != nil {
		return model.Listing{}, fmt.Errorf("update listing %s: write: %w", listingID, err)
	}

	for _, bid := range newBids {
		bid.ListingID = listingID
		bidDoc, err := json.Marshal(bid)
		if err != nil {
			return model.Listing{}, fmt.Errorf("update listing %s: encode bid: %w", listingID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO bids (bid_id, listing_id, bidder_id, created_at, doc) VALUES ($1, $2, $3, $4, $5)`,
			bid.BidID, listingID, bid.BidderID, bid.CreatedAt, bidDoc,
		); err != nil {
			return model.Listing{}, fmt.Errorf("update listing %s: record bid %s: %w", listingID, bid.BidID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Listing{}, fmt.Errorf("update listing %s: commit: %w", listingID, err)
	}
	return listing, nil
}

// BidsByListing returns all bids recorded for a listing
func (r *PostgresRepo) BidsByListing(ctx context.Context, listingID string) ([]model.Bid, error) {
	return r.queryBids(ctx, `SELECT doc FROM bids WHERE listing_id = $1 ORDER BY seq`, listingID)
}

// BidsByBidder returns all bids placed by a bidder
func (r *PostgresRepo) BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	return r.queryBids(ctx, `SELECT doc FROM bids WHERE bidder_id = $1 ORDER BY seq`, bidderID)
}

func (r *PostgresRepo) queryBids(ctx context.Context, query string, id string) ([]model.Bid, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query bids for %s: %w", id, err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("query bids for %s: scan: %w", id, err)
		}
		var bid model.Bid
		if err := json.Unmarshal(doc, &bid); err != nil {
			return nil, fmt.Errorf("query bids for %s: decode: %w", id, err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query bids for %s: %w", id, err)
	}
	return bids, nil
}

// PoolsForUser returns every pool the user participates in, joined with listing data
func (r *PostgresRepo) PoolsForUser(ctx context.Context, userID string) ([]model.PoolSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM listings
		 WHERE doc->'collaborative_pool'->'participants' @> jsonb_build_array(jsonb_build_object('user_id', $1::text))
		 ORDER BY seq`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("pools for user %s: %w", userID, err)
	}
	defer rows.Close()

	pools := make([]model.PoolSummary, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("pools for user %s: scan: %w", userID, err)
		}
		var listing model.Listing
		if err := json.Unmarshal(doc, &listing); err != nil {
			return nil, fmt.Errorf("pools for user %s: decode: %w", userID, err)
		}
		if listing.CollaborativePool == nil {
			continue
		}
		pools = append(pools, model.PoolSummary{
			CollaborativePool: *listing.CollaborativePool,
			ListingTitle:      listing.Title,
			ListingImage:      listing.ImageURL,
			CurrentBid:        listing.CurrentBid,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pools for user %s: %w", userID, err)
	}
	return pools, nil
}

// CreateUser stores a user, rejecting duplicate emails
func (r *PostgresRepo) CreateUser(ctx context.Context, user model.User) error {
	doc, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("create user %s: encode: %w", user.Email, err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO users (user_id, email, doc) VALUES ($1, $2, $3)`,
		user.UserID, user.Email, doc,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create user %s: %w", user.Email, biddingerrors.ErrUserAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return nil
}

// GetUser returns a user by ID
func (r *PostgresRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	return r.queryUser(ctx, `SELECT doc FROM users WHERE user_id = $1`, userID)
}

// GetUserByEmail returns a user by email, ignoring case
func (r *PostgresRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.queryUser(ctx, `SELECT doc FROM users WHERE lower(email) = lower($1)`, email)
}

func (r *PostgresRepo) queryUser(ctx context.Context, query string, key string) (model.User, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", key, biddingerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", key, err)
	}

	var user model.User
	if err := json.Unmarshal(doc, &user); err != nil {
		return model.User{}, fmt.Errorf("get user %s: decode: %w", key, err)
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
