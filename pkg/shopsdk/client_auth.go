package shopsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ExchangeCode trades an authorization code from the identity provider for an
// access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/authback/"+url.PathEscape(code), "", nil)
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := decodeJSON(resp, &token, http.StatusOK); err != nil {
		return nil, err
	}
	return &token, nil
}

// Authenticate reports whether the session's token is accepted.
func (s *Session) Authenticate(ctx context.Context) error {
	resp, err := s.do(ctx, http.MethodGet, "/auth", nil)
	if err != nil {
		return err
	}

	var status AuthStatusResponse
	return decodeJSON(resp, &status, http.StatusOK)
}
