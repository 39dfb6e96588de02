package usecase

import "errors"

var (
	// ErrUpstreamUnavailable wraps any failure talking to the quotely REST backend.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidToken        = errors.New("invalid token")
	ErrProductNotFound     = errors.New("product not found")
	ErrVariationNotFound   = errors.New("variation not found")
	ErrEmptyQuotation      = errors.New("quotation has no lines")
	ErrTenantRequired      = errors.New("tenant storefront required")
)

func isUpstream(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
