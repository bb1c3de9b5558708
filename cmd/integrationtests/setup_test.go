package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sharedbid/internal/accounts"
	ledger "sharedbid/internal/auctionLedger"
	"sharedbid/internal/auth"
	"sharedbid/internal/repository"
	"sharedbid/internal/server"
	"sharedbid/services/auction/helpers"
)

const testPassword = "correct horse battery"

// testApp is a fully wired server over an in-memory repository
type testApp struct {
	router *gin.Engine
}

// SetupTestApp initializes the router with in-memory repository for integration testing.
func SetupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	tokens := auth.NewTokenIssuer("integration-secret-0123456789", time.Hour, "sharedbid")
	l := ledger.NewAuctionLedger(repo)
	accts := accounts.NewAccountService(repo, tokens, bcrypt.MinCost)
	return &testApp{router: server.SetupRouter(l, accts, tokens)}
}

// ExecuteRequestAndParse executes an HTTP request on the app's router and parses the response envelope
func (a *testApp) ExecuteRequestAndParse(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// session is a registered user's id and bearer token
type session struct {
	userID string
	token  string
}

// Register signs up a user through the API
func (a *testApp) Register(t *testing.T, name, email, role string) session {
	t.Helper()
	resp, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": testPassword,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %v", email, resp)

	data := resp["data"].(map[string]any)
	user := data["user"].(map[string]any)
	return session{userID: user["user_id"].(string), token: data["token"].(string)}
}

// CreateListing creates a listing through the API and returns its id
func (a *testApp) CreateListing(t *testing.T, seller session, title string, basePrice float64) string {
	t.Helper()
	resp, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/listings", seller.token, helpers.CreateListingRequest{
		Title:     title,
		BasePrice: basePrice,
		Category:  "Electronics",
		Condition: "Good",
		EndTime:   time.Now().UTC().Add(24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code, "create listing: %v", resp)
	return resp["data"].(map[string]any)["listing_id"].(string)
}

// GetListing fetches a listing through the API
func (a *testApp) GetListing(t *testing.T, listingID string) map[string]any {
	t.Helper()
	resp, w := a.ExecuteRequestAndParse(t, http.MethodGet, "/listings/"+listingID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	return resp["data"].(map[string]any)
}
