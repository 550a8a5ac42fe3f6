package service

import (
	"fmt"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny is the zero value; anything not explicitly allowed is denied.
	Deny Decision = iota
	// Allow permits the request.
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Authorize decides whether profile may act on a resource owned by ownerID:
// owners may, admins may, everyone else may not. It is evaluated on every
// request and never cached.
func Authorize(profile domain.Profile, ownerID int64) Decision {
	if profile.UserID != 0 && profile.UserID == ownerID {
		return Allow
	}
	if profile.IsAdmin() {
		return Allow
	}
	return Deny
}

// RequireOwner is Authorize as an error: domain.ErrForbidden on Deny.
func RequireOwner(profile domain.Profile, ownerID int64) error {
	if Authorize(profile, ownerID) == Deny {
		return fmt.Errorf("%w: user %d may not access resources of user %d",
			domain.ErrForbidden, profile.UserID, ownerID)
	}
	return nil
}

// RequireAdmin returns domain.ErrForbidden unless profile is an admin.
func RequireAdmin(profile domain.Profile) error {
	if !profile.IsAdmin() {
		return fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return nil
}
