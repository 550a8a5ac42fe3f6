package corp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream"
)

// expirySkew is subtracted from a token's lifetime so it is replaced before
// the corp service starts rejecting it.
const expirySkew = 30 * time.Second

// ServiceToken is the client-credentials token the service uses for itself.
// It is never derived from, or converted to, a user's token.
type ServiceToken struct {
	value     string
	expiresAt time.Time
}

// Value returns the raw bearer value.
func (t ServiceToken) Value() string { return t.value }

// ExpiresAt is the zero time when the lifetime is unknown.
func (t ServiceToken) ExpiresAt() time.Time { return t.expiresAt }

// usable reports whether t can still be presented at now.
func (t ServiceToken) usable(now time.Time) bool {
	return t.value != "" && !t.expiresAt.IsZero() && now.Before(t.expiresAt)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// serviceToken returns the cached token or fetches a new one. The lock is
// held across the fetch so concurrent callers share one request.
func (c *Client) serviceToken(ctx context.Context) (ServiceToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.usable(c.now()) {
		return c.token, nil
	}

	tok, err := c.fetchToken(ctx)
	if err != nil {
		return ServiceToken{}, err
	}
	c.token = tok
	return tok, nil
}

// invalidate drops tok if it is still the cached token.
func (c *Client) invalidate(tok ServiceToken) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token.value == tok.value {
		c.token = ServiceToken{}
	}
}

func (c *Client) fetchToken(ctx context.Context) (ServiceToken, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return ServiceToken{}, fmt.Errorf("%w: build corp token request: %v", domain.ErrUnavailable, err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ServiceToken{}, fmt.Errorf("%w: corp token request: %v", domain.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstream.Drain(resp)
		return ServiceToken{}, fmt.Errorf("%w: corp token endpoint returned %d", domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := upstream.ReadBody(resp)
	if err != nil {
		return ServiceToken{}, fmt.Errorf("%w: corp token response: %v", domain.ErrUnavailable, err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil || tr.AccessToken == "" {
		return ServiceToken{}, fmt.Errorf("%w: malformed corp token response", domain.ErrUnavailable)
	}

	return ServiceToken{
		value:     tr.AccessToken,
		expiresAt: c.expiry(tr),
	}, nil
}

// expiry prefers expires_in and falls back to the exp claim when the token
// is a JWT. Tokens with neither are not cached.
func (c *Client) expiry(tr tokenResponse) time.Time {
	now := c.now()
	if tr.ExpiresIn > 0 {
		return now.Add(time.Duration(tr.ExpiresIn)*time.Second - expirySkew)
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tr.AccessToken, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time.Add(-expirySkew)
}
