// Package identity talks to the external identity provider: it resolves user
// tokens to profiles and exchanges authorization codes for tokens.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream"
)

type Config struct {
	ProfileURL     string
	AccessTokenURL string
	ClientID       string
	RedirectURI    string
	Timeout        time.Duration

	// HTTPClient defaults to a plain client when nil.
	HTTPClient *http.Client
}

type Client struct {
	cfg  Config
	http *http.Client
}

// TokenResponse is the provider's answer to an authorization code exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = upstream.NewHTTPClient("identity", nil)
	}
	cfg.Timeout = upstream.Timeout(cfg.Timeout)
	return &Client{cfg: cfg, http: hc}
}

// Validate resolves token to a profile. A 401 from the provider is
// domain.ErrUnauthorized; every other failure is domain.ErrUnavailable. The
// profile's user id is not inspected here.
func (c *Client) Validate(ctx context.Context, token domain.UserToken) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ProfileURL, nil)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: build identity request: %v", domain.ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+string(token))
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: identity request: %v", domain.ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		upstream.Drain(resp)
		return domain.Profile{}, fmt.Errorf("%w: identity provider rejected the token", domain.ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		upstream.Drain(resp)
		return domain.Profile{}, fmt.Errorf("%w: identity provider returned %d", domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := upstream.ReadBody(resp)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: identity response: %v", domain.ErrUnavailable, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: decode identity profile: %v", domain.ErrUnavailable, err)
	}
	return profile, nil
}

// ExchangeCode performs the authorization code grant against the provider's
// token endpoint.
func (c *Client) ExchangeCode(ctx context.Context, code string) (TokenResponse, error) {
	if strings.TrimSpace(code) == "" {
		return TokenResponse{}, fmt.Errorf("%w: authorization code is required", domain.ErrInvalidInput)
	}
	if c.cfg.AccessTokenURL == "" {
		return TokenResponse{}, fmt.Errorf("%w: code exchange is not configured", domain.ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"client_id":    {c.cfg.ClientID},
		"redirect_uri": {c.cfg.RedirectURI},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AccessTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("%w: build token request: %v", domain.ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("%w: token request: %v", domain.ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		upstream.Drain(resp)
		return TokenResponse{}, fmt.Errorf("%w: authorization code rejected (%d)", domain.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		upstream.Drain(resp)
		return TokenResponse{}, fmt.Errorf("%w: token endpoint returned %d", domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := upstream.ReadBody(resp)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("%w: token response: %v", domain.ErrUnavailable, err)
	}

	var tok TokenResponse
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return TokenResponse{}, fmt.Errorf("%w: malformed token response", domain.ErrUnavailable)
	}
	return tok, nil
}
