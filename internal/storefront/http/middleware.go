package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// Authenticator resolves bearer tokens to profiles.
type Authenticator interface {
	Authenticate(ctx context.Context, token domain.UserToken) (domain.Profile, error)
}

type callerKey struct{}

// AuthnMiddleware authenticates the bearer token and stores the caller in
// the request context. Failures are answered here and never reach next.
func AuthnMiddleware(auth Authenticator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := httpx.BearerToken(r)
			if !ok {
				writeError(w, r, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthenticated))
				return
			}

			token := domain.UserToken(raw)
			profile, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), callerKey{}, domain.Caller{Token: token, Profile: profile})
			ctx = httpx.WithPrincipal(ctx, strconv.FormatInt(profile.UserID, 10), profile.Role())
			ctx = slogx.WithContext(ctx, slogx.FromContext(ctx).With("user_id", profile.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// callerFrom returns the caller stored by AuthnMiddleware.
func callerFrom(ctx context.Context) (domain.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(domain.Caller)
	return c, ok
}

// withCaller runs h with the authenticated caller, answering 401 when the
// route was mounted without AuthnMiddleware.
func withCaller(h func(w http.ResponseWriter, r *http.Request, c domain.Caller)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := callerFrom(r.Context())
		if !ok {
			writeError(w, r, fmt.Errorf("%w: no authenticated caller", domain.ErrUnauthenticated))
			return
		}
		h(w, r, c)
	}
}

// pathInt64 parses a numeric path value.
func pathInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return v, nil
}

// decodeBody wraps httpx.DecodeJSON errors as invalid input.
func decodeBody(r *http.Request, v any) error {
	if err := httpx.DecodeJSON(r, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
