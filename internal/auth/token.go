package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
)

// Claims are the session claims carried by an access token
type Claims struct {
	Name string     `json:"name"`
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the token subject
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenIssuer signs and verifies HS256 access tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenIssuer creates a new TokenIssuer instance
func NewTokenIssuer(secret string, ttl time.Duration, issuer string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue returns a signed token for user
func (i *TokenIssuer) Issue(user model.User) (string, error) {
	now := i.now()
	claims := Claims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token for user %s: %w", user.UserID, err)
	}
	return signed, nil
}

// Parse verifies a token's signature, issuer and expiry and returns its claims
func (i *TokenIssuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("auth: %w - token expired", biddingerrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth: %w - %v", biddingerrors.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("auth: %w - invalid token", biddingerrors.ErrUnauthorized)
	}
	if !claims.VerifyIssuer(i.issuer, true) {
		return nil, fmt.Errorf("auth: %w - unexpected issuer %q", biddingerrors.ErrUnauthorized, claims.Issuer)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("auth: %w - token has no subject", biddingerrors.ErrUnauthorized)
	}
	return claims, nil
}
