package domain

import "errors"

// Error kinds shared by every layer. Wrap them with fmt.Errorf("%w: ...") and
// test with errors.Is; a wrapped error carries exactly one kind.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrFailedDependency = errors.New("failed dependency")
	ErrUnavailable      = errors.New("unavailable")
	ErrInternal         = errors.New("internal error")
)
