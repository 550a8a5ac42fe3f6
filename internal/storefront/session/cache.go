// Package session caches resolved identity profiles by bearer token so the
// identity provider is consulted at most once per token per TTL.
package session

import (
	"context"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

const (
	DefaultPrefix = "session-token:"
	DefaultTTL    = 120 * time.Second
)

// Cache maps a user token to the profile it resolved to. Entries disappear
// once their TTL has elapsed; a Get never returns an expired entry.
//
// Get reports a miss as (Profile{}, false, nil). Backend failures are
// returned as errors wrapping domain.ErrUnavailable and are never reported
// as a miss.
type Cache interface {
	Get(ctx context.Context, token domain.UserToken) (domain.Profile, bool, error)
	Set(ctx context.Context, token domain.UserToken, profile domain.Profile, ttl time.Duration) error
	Ping(ctx context.Context) error
}

// Key returns the namespaced cache key for token.
func Key(prefix string, token domain.UserToken) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + ":" + string(token)
}
