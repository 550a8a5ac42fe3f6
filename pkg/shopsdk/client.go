package shopsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client calls the unauthenticated storefront endpoints and hands out
// Sessions for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session performs requests on behalf of one bearer token. Tokens are issued
// by the identity provider, so a Session never refreshes them.
type Session struct {
	client *Client
	token  string
}

// WithToken returns a Session that authenticates with token.
func (c *Client) WithToken(token string) *Session {
	return &Session{client: c, token: token}
}
