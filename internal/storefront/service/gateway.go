package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/session"
	"github.com/aussiebroadwan/storefront/pkg/metricsx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// IdentityValidator resolves a user token to its profile.
type IdentityValidator interface {
	Validate(ctx context.Context, token domain.UserToken) (domain.Profile, error)
}

// AuthGateway turns a bearer token into a profile, consulting the session
// cache before the identity provider.
type AuthGateway struct {
	Cache    session.Cache
	Identity IdentityValidator
	TTL      time.Duration
	Metrics  *metricsx.Metrics
}

// Authenticate returns the profile behind token.
//
// A cached profile is returned without contacting the identity provider. On a
// miss the provider is asked and a profile with a non-zero user id is written
// back for TTL. A profile with user id 0 is rejected with
// domain.ErrUnauthorized and never cached. A failing cache read is reported
// as domain.ErrUnavailable; a failing cache write is only logged.
func (g *AuthGateway) Authenticate(ctx context.Context, token domain.UserToken) (domain.Profile, error) {
	if token == "" {
		return domain.Profile{}, fmt.Errorf("%w: bearer token is missing", domain.ErrUnauthenticated)
	}

	log := slogx.FromContext(ctx)

	profile, hit, err := g.Cache.Get(ctx, token)
	if err != nil {
		g.Metrics.CacheLookup(metricsx.CacheError)
		if errors.Is(err, domain.ErrUnavailable) {
			return domain.Profile{}, fmt.Errorf("session lookup: %w", err)
		}
		return domain.Profile{}, fmt.Errorf("%w: session lookup: %v", domain.ErrUnavailable, err)
	}
	if hit {
		g.Metrics.CacheLookup(metricsx.CacheHit)
		return profile, nil
	}
	g.Metrics.CacheLookup(metricsx.CacheMiss)

	profile, err = g.Identity.Validate(ctx, token)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("validate token: %w", err)
	}
	if profile.UserID == 0 {
		log.Info("identity provider returned no user for token", slogx.Token("token", string(token)))
		return domain.Profile{}, fmt.Errorf("%w: token maps to no user", domain.ErrUnauthorized)
	}

	if err := g.Cache.Set(ctx, token, profile, g.ttl()); err != nil {
		log.Warn("failed to cache session",
			slogx.Token("token", string(token)),
			"user_id", profile.UserID,
			"err", err,
		)
	}
	return profile, nil
}

func (g *AuthGateway) ttl() time.Duration {
	if g.TTL <= 0 {
		return session.DefaultTTL
	}
	return g.TTL
}
