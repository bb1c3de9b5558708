package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testUser = model.User{UserID: "user1", Name: "Bea Bidder", Role: model.RoleBidder}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour, "sharedbid")

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user1", claims.UserID())
	require.Equal(t, "Bea Bidder", claims.Name)
	require.Equal(t, model.RoleBidder, claims.Role)
	require.Equal(t, "sharedbid", claims.Issuer)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour, "sharedbid")

	expired := NewTokenIssuer(testSecret, time.Minute, "sharedbid")
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, err := expired.Issue(testUser)
	require.NoError(t, err)

	otherSecret, err := NewTokenIssuer("another-secret-another-secret", time.Hour, "sharedbid").Issue(testUser)
	require.NoError(t, err)

	otherIssuer, err := NewTokenIssuer(testSecret, time.Hour, "someone-else").Issue(testUser)
	require.NoError(t, err)

	noSubject, err := issuer.Issue(model.User{Name: "anon", Role: model.RoleBidder})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user1", Issuer: "sharedbid"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expiredToken},
		{name: "wrong_secret", token: otherSecret},
		{name: "wrong_issuer", token: otherIssuer},
		{name: "no_subject", token: noSubject},
		{name: "alg_none", token: unsigned},
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := issuer.Parse(tc.token)
			require.Error(t, err)
			require.True(t, errors.Is(err, biddingerrors.ErrUnauthorized), "expected unauthorized, got: %v", err)
		})
	}
}
