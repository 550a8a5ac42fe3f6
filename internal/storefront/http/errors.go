package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// apiError maps a domain error kind onto its response. Unknown errors are
// server errors.
func apiError(err error) *shopsdk.APIError {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return shopsdk.ErrInvalidRequest
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrUnauthorized):
		return shopsdk.ErrInvalidToken
	case errors.Is(err, domain.ErrForbidden):
		return shopsdk.ErrAccessDenied
	case errors.Is(err, domain.ErrNotFound):
		return shopsdk.ErrNotFound
	case errors.Is(err, domain.ErrFailedDependency):
		return shopsdk.ErrFailedDependency
	case errors.Is(err, domain.ErrUnavailable):
		return shopsdk.ErrTemporarilyUnavailable
	default:
		return shopsdk.ErrServerError
	}
}

// writeError logs err and writes the generic response for its kind. Error
// details stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiError(err)
	log := slogx.FromContext(r.Context())

	switch {
	case apiErr.StatusCode >= http.StatusInternalServerError:
		log.Error("request failed", "status", apiErr.StatusCode, "err", err)
	case apiErr.StatusCode == http.StatusFailedDependency:
		log.Warn("request failed", "status", apiErr.StatusCode, "err", err)
	default:
		log.Info("request rejected", "status", apiErr.StatusCode, "err", err)
	}

	if apiErr.StatusCode == http.StatusUnauthorized {
		httpx.SetBearerChallenge(w, apiErr.Description)
	}
	apiErr.WriteError(w)
}
