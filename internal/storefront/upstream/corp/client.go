// Package corp reads person records from the corporate directory using a
// client-credentials service token.
package corp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream"
)

type Config struct {
	// TokenURL is the client-credentials token endpoint.
	TokenURL     string
	ClientID     string
	ClientSecret string

	// BaseURL is the directory root; persons live under /person/{id}.
	BaseURL string
	Timeout time.Duration

	HTTPClient *http.Client
	Now        func() time.Time
}

type Client struct {
	cfg  Config
	http *http.Client
	now  func() time.Time

	mu    sync.Mutex
	token ServiceToken
}

func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = upstream.NewHTTPClient("corp", nil)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	cfg.Timeout = upstream.Timeout(cfg.Timeout)
	return &Client{cfg: cfg, http: hc, now: now}
}

// Person fetches the directory record for userID. found is false when the
// directory answers 404. Any other failure, including obtaining the service
// token, is an error wrapping domain.ErrUnavailable.
func (c *Client) Person(ctx context.Context, userID int64) (domain.CorpPerson, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	tok, err := c.serviceToken(ctx)
	if err != nil {
		return domain.CorpPerson{}, false, err
	}

	url := c.cfg.BaseURL + "/person/" + strconv.FormatInt(userID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.CorpPerson{}, false, fmt.Errorf("%w: build corp request: %v", domain.ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.Value())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.CorpPerson{}, false, fmt.Errorf("%w: corp request: %v", domain.ErrUnavailable, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		upstream.Drain(resp)
		return domain.CorpPerson{}, false, nil
	case http.StatusUnauthorized:
		// The directory no longer accepts the token; fetch a fresh one next time.
		upstream.Drain(resp)
		c.invalidate(tok)
		return domain.CorpPerson{}, false, fmt.Errorf("%w: corp service rejected the service token", domain.ErrUnavailable)
	default:
		upstream.Drain(resp)
		return domain.CorpPerson{}, false, fmt.Errorf("%w: corp service returned %d", domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := upstream.ReadBody(resp)
	if err != nil {
		return domain.CorpPerson{}, false, fmt.Errorf("%w: corp response: %v", domain.ErrUnavailable, err)
	}

	var person domain.CorpPerson
	if err := json.Unmarshal(body, &person); err != nil {
		return domain.CorpPerson{}, false, fmt.Errorf("%w: decode corp person: %v", domain.ErrUnavailable, err)
	}
	return person, true, nil
}
