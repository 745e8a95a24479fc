package spapiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/pkg/log"
)

func testCredentials() *config.Credentials {
	return &config.Credentials{
		Account:      "acme",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshTokens: map[domain.RegionGroup]string{
			domain.RegionNA: "na-refresh-token",
			domain.RegionEU: "eu-refresh-token",
		},
	}
}

func newTokenManager(t *testing.T, handler http.HandlerFunc, margin time.Duration) *TokenManager {
	t.Helper()
	log.SetupTestLogger()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		SPAPI: config.SPAPI{
			TokenURL:          server.URL,
			TokenExpiryMargin: margin,
			HTTPTimeout:       5 * time.Second,
		},
	}

	return NewTokenManager(cfg)
}

func TestTokenManager_GetToken_CachesPerAccountAndRegion(t *testing.T) {
	refreshes := 0
	tm := newTokenManager(t, func(w http.ResponseWriter, r *http.Request) {
		refreshes++
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"bearer","expires_in":3600}`, refreshes)
	}, time.Minute)

	creds := testCredentials()

	token, err := tm.GetToken(context.Background(), creds, domain.RegionNA)
	assert.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, 1, refreshes)

	// A fresh cached token is reused without touching the endpoint.
	token, err = tm.GetToken(context.Background(), creds, domain.RegionNA)
	assert.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, 1, refreshes)

	// Another region is a separate cache entry.
	token, err = tm.GetToken(context.Background(), creds, domain.RegionEU)
	assert.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.Equal(t, 2, refreshes)
}

func TestTokenManager_GetToken_RefreshesExpiredToken(t *testing.T) {
	refreshes := 0
	// expires_in of 1s with a margin of 1s makes the token expired the
	// moment it is cached.
	tm := newTokenManager(t, func(w http.ResponseWriter, r *http.Request) {
		refreshes++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"bearer","expires_in":1}`, refreshes)
	}, time.Second)

	creds := testCredentials()

	token, err := tm.GetToken(context.Background(), creds, domain.RegionNA)
	assert.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// Exactly one more refresh, not one per subsequent call racing the
	// same expiry.
	token, err = tm.GetToken(context.Background(), creds, domain.RegionNA)
	assert.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.Equal(t, 2, refreshes)
}

func TestTokenManager_GetToken_MissingRefreshToken(t *testing.T) {
	tm := newTokenManager(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("token endpoint must not be called without a refresh token")
	}, time.Minute)

	creds := testCredentials()
	delete(creds.RefreshTokens, domain.RegionEU)

	_, err := tm.GetToken(context.Background(), creds, domain.RegionFE)
	assert.Error(t, err)
	assert.Equal(t, domain.FailureConfig, domain.KindOf(err))
}

func TestTokenManager_GetToken_EndpointRejection(t *testing.T) {
	tm := newTokenManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}, time.Minute)

	_, err := tm.GetToken(context.Background(), testCredentials(), domain.RegionNA)
	assert.Error(t, err)
	assert.Equal(t, domain.FailureAuth, domain.KindOf(err))

	var failure *domain.Failure
	assert.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Diagnostic, "invalid_grant")
}
