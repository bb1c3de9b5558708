// Package database provides the PostgreSQL connection pool backing the durable
// ledger store.
//
// Listings, bids and users live in three tables, one JSON document per row; a
// listing's collaborative pool is embedded in the listing document.
package database
