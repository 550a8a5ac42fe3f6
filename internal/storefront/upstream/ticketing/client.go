// Package ticketing opens tickets in the external issue tracker on behalf of
// the calling user.
package ticketing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream"
)

type Config struct {
	CreateURL string
	Timeout   time.Duration

	HTTPClient *http.Client
}

// Ticket is the body sent to the tracker.
type Ticket struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	ProjectID   int64  `json:"project_id"`
	TrackerID   int64  `json:"tracker_id"`
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = upstream.NewHTTPClient("ticketing", nil)
	}
	cfg.Timeout = upstream.Timeout(cfg.Timeout)
	return &Client{cfg: cfg, http: hc}
}

// Create opens a ticket authenticated as the user owning token and returns
// the tracker's issue id. Every failure wraps domain.ErrUnavailable, except
// a ticket without project or tracker which is domain.ErrInvalidInput.
func (c *Client) Create(ctx context.Context, token domain.UserToken, t Ticket) (int64, error) {
	if t.ProjectID == 0 {
		return 0, fmt.Errorf("%w: ticket project id must not be 0", domain.ErrInvalidInput)
	}
	if t.TrackerID == 0 {
		return 0, fmt.Errorf("%w: ticket tracker id must not be 0", domain.ErrInvalidInput)
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return 0, fmt.Errorf("%w: encode ticket: %v", domain.ErrInternal, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.CreateURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: build ticket request: %v", domain.ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+string(token))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: ticket request: %v", domain.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstream.Drain(resp)
		return 0, fmt.Errorf("%w: ticketing returned %d", domain.ErrUnavailable, resp.StatusCode)
	}

	body, err := upstream.ReadBody(resp)
	if err != nil {
		return 0, fmt.Errorf("%w: ticket response: %v", domain.ErrUnavailable, err)
	}

	var out struct {
		IssueID json.RawMessage `json:"issue_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("%w: decode ticket response: %v", domain.ErrUnavailable, err)
	}
	if len(out.IssueID) == 0 {
		return 0, fmt.Errorf("%w: ticket response has no issue_id", domain.ErrUnavailable)
	}
	// Only a JSON integer is accepted; strings, floats and null are not.
	id, err := strconv.ParseInt(string(out.IssueID), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: ticket response has invalid issue_id %s", domain.ErrUnavailable, out.IssueID)
	}
	return id, nil
}
