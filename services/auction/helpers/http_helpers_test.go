package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{biddingerrors.ErrListingNotFound, http.StatusNotFound},
		{biddingerrors.ErrPoolNotFound, http.StatusNotFound},
		{biddingerrors.ErrUserNotFound, http.StatusNotFound},
		{biddingerrors.ErrInvalidListingSpec, http.StatusBadRequest},
		{biddingerrors.ErrInvalidContribution, http.StatusBadRequest},
		{biddingerrors.ErrInvalidUser, http.StatusBadRequest},
		{biddingerrors.ErrBidTooLow, http.StatusConflict},
		{biddingerrors.ErrAuctionNotActive, http.StatusConflict},
		{biddingerrors.ErrPoolAlreadyExists, http.StatusConflict},
		{biddingerrors.ErrUserAlreadyExists, http.StatusConflict},
		{biddingerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{biddingerrors.ErrUnauthorized, http.StatusUnauthorized},
		{biddingerrors.ErrForbidden, http.StatusForbidden},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.err.Error(), func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("ledger: failed: %w", tc.err)
			status, message := MapErrorToHTTP(wrapped)
			require.Equal(t, tc.status, status)
			require.NotEmpty(t, message)
		})
	}
}

func TestNewListingResponse(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listing := model.Listing{
		CurrentBid: 149.99,
		Status:     model.ListingActive,
		EndTime:    now.Add(-time.Minute),
	}

	resp := NewListingResponse(listing, now)
	require.Equal(t, model.ListingExpired, resp.EffectiveStatus)
	require.Equal(t, model.ListingActive, resp.Status)
	require.Equal(t, 150.99, resp.MinNextBid)
}
