package spapiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
)

// tokenKey identifies one cached bearer token.
type tokenKey struct {
	account string
	region  domain.RegionGroup
}

type cachedToken struct {
	accessToken string
	expiresAt   time.Time
}

// TokenManager caches LWA access tokens per (account, region) and
// refreshes them through the token endpoint when absent or inside the
// expiry margin. A token is never handed out past expiry minus margin.
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	mu     sync.Mutex
	tokens map[tokenKey]*cachedToken
}

// TokenResponse is the LWA token endpoint body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// NewTokenManager creates a token manager over the configured token
// endpoint.
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.SPAPI.HTTPTimeout,
		},
		tokens: make(map[tokenKey]*cachedToken),
	}
}

// GetToken returns a valid bearer token for the account+region,
// refreshing through the token endpoint only when the cached one is
// absent or expired. A refresh failure aborts the dependent operation;
// there is no retry loop here.
func (tm *TokenManager) GetToken(ctx context.Context, creds *config.Credentials, region domain.RegionGroup) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	key := tokenKey{account: creds.Account, region: region}
	if cached, ok := tm.tokens[key]; ok && time.Now().Before(cached.expiresAt) {
		return cached.accessToken, nil
	}

	refreshToken, err := creds.RefreshToken(region)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"account": creds.Account,
		"region":  region,
	}).Info("refreshing access token")

	tokenResp, err := tm.refresh(ctx, creds, refreshToken)
	if err != nil {
		return "", err
	}

	// The expiry margin guards against handing out a token that dies
	// mid-request.
	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tm.cfg.SPAPI.TokenExpiryMargin)
	tm.tokens[key] = &cachedToken{
		accessToken: tokenResp.AccessToken,
		expiresAt:   expiresAt,
	}

	logrus.WithFields(logrus.Fields{
		"account":    creds.Account,
		"region":     region,
		"expires_at": expiresAt.Format(time.RFC3339),
	}).Info("access token refreshed")

	return tokenResp.AccessToken, nil
}

func (tm *TokenManager) refresh(ctx context.Context, creds *config.Credentials, refreshToken string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.cfg.SPAPI.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "building token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapFailure(err, domain.FailureAuth, "token refresh request failed for account %q", creds.Account)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading token response")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"account": creds.Account,
			"status":  resp.StatusCode,
		}).Error("token endpoint rejected refresh")
		return nil, domain.NewFailure(domain.FailureAuth,
			"token refresh rejected for account %q: status %d", creds.Account, resp.StatusCode).
			WithDiagnostic(string(body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "decoding token response")
	}
	if tokenResp.AccessToken == "" {
		return nil, domain.NewFailure(domain.FailureAuth, "token endpoint returned an empty access token")
	}

	return &tokenResp, nil
}
