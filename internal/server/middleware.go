package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sharedbid/internal/auth"
	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
	"sharedbid/services/auction/helpers"
	"sharedbid/utils"
)

// TokenVerifier resolves a bearer token to its claims
type TokenVerifier interface {
	Parse(token string) (*auth.Claims, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if claims, ok := helpers.ClaimsFrom(c); ok {
		fields["user_id"] = claims.UserID()
	}
	utils.Info("HTTP Request", fields)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims for downstream handlers
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			abortWith(c, http.StatusUnauthorized, fmt.Errorf("%w - missing bearer token", biddingerrors.ErrUnauthorized), "unauthorized")
			return
		}

		claims, err := verifier.Parse(strings.TrimSpace(token))
		if err != nil {
			utils.Warn("RequireAuth: rejected token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			abortWith(c, http.StatusUnauthorized, err, "unauthorized")
			return
		}

		helpers.SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole lets through only sessions signed in with role. It must run after RequireAuth.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := helpers.ClaimsFrom(c)
		if !ok {
			abortWith(c, http.StatusUnauthorized, fmt.Errorf("%w - missing session", biddingerrors.ErrUnauthorized), "unauthorized")
			return
		}
		if claims.Role != role {
			abortWith(c, http.StatusForbidden, fmt.Errorf("%w - %s access required", biddingerrors.ErrForbidden, role), "forbidden")
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, status int, err error, message string) {
	utils.JSONError(c, status, err, message)
}
