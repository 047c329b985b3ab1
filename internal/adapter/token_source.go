package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkotelnikov/feedsync/internal/config"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/utils"
)

// tokenResponse is the OAuth token endpoint's JSON answer.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// oauthTokenSource implements [TokenSource] with the refresh-token grant.
// The access token is cached until shortly before its reported expiry; the
// refresh token may be rotated by the remote service on each exchange.
type oauthTokenSource struct {
	client *utils.HTTPClient

	tokenURL     string
	clientID     string
	clientSecret string

	mu           sync.Mutex
	refreshToken string
	accessToken  string
	expiresAt    time.Time

	logger *logger.Logger
}

// expirySkew is subtracted from the reported token lifetime so a token is
// never used in the last moments before it expires.
const expirySkew = 30 * time.Second

// NewOAuthTokenSource constructs a [TokenSource] that exchanges the
// long-lived refresh token from cfg for short-lived access tokens at
// cfg.TokenURL.
func NewOAuthTokenSource(cfg config.Adapter, logger *logger.Logger) (TokenSource, error) {
	if cfg.TokenURL == "" || cfg.ClientID == "" || cfg.RefreshToken == "" {
		return nil, fmt.Errorf("%w: token url, client id and refresh token are required", ErrTokenExchange)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &oauthTokenSource{
		client:       client,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		refreshToken: cfg.RefreshToken,
		tokenURL:     cfg.TokenURL,
		logger:       logger,
	}, nil
}

// Token implements [TokenSource].
func (t *oauthTokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	if t.accessToken != "" && time.Now().Before(t.expiresAt) {
		token := t.accessToken
		t.mu.Unlock()
		return token, nil
	}
	t.mu.Unlock()

	return t.Refresh(ctx)
}

// Refresh implements [TokenSource].
func (t *oauthTokenSource) Refresh(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	var tr tokenResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": t.refreshToken,
			"client_id":     t.clientID,
			"client_secret": t.clientSecret,
		}).
		SetResult(&tr).
		Post(t.tokenURL)
	if err != nil {
		log.Err(err).Str("func", "oauthTokenSource.Refresh").Msg("token request failed")
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	if mapErr := mapHTTPError(resp); mapErr != nil {
		log.Err(mapErr).Str("func", "oauthTokenSource.Refresh").Msg("token endpoint returned error")
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, mapErr)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token in response", ErrTokenExchange)
	}

	t.accessToken = tr.AccessToken
	t.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - expirySkew)
	// the service may rotate the refresh token on every exchange
	if tr.RefreshToken != "" {
		t.refreshToken = tr.RefreshToken
	}

	log.Debug().
		Str("func", "oauthTokenSource.Refresh").
		Time("expires_at", t.expiresAt).
		Msg("access token refreshed")

	return t.accessToken, nil
}
