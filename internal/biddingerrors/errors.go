package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingExists   = errors.New("listing already exists")
	ErrUserNotFound    = errors.New("user not found")
)

// Ledger errors. None are transient; a rejected call leaves state unchanged.
var (
	ErrInvalidListingSpec  = errors.New("invalid listing spec")
	ErrAuctionNotActive    = errors.New("auction is not active")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrPoolNotFound        = errors.New("collaborative pool not found")
	ErrPoolAlreadyExists   = errors.New("collaborative pool already exists")
	ErrInvalidContribution = errors.New("invalid contribution")
)

// Account errors
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidUser        = errors.New("invalid user details")
	ErrInvalidCredentials = errors.New("invalid credentials or user not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)
