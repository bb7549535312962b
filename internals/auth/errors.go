package auth

import "errors"

// Sentinel errors for the token validation outcomes the router must keep
// apart. Wrapped errors carry the detail (expiry vs. signature, upstream
// status); the middleware maps the sentinel to the HTTP status.
var (
	// ErrUnauthenticated: the token is missing, malformed, expired, or the
	// identity service reported it invalid. Maps to 401.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUpstreamUnavailable: the identity service is unreachable or timed
	// out. Never mistaken for an invalid token. Maps to 503.
	ErrUpstreamUnavailable = errors.New("identity service unavailable")

	// ErrUpstream: the identity service answered with an unexpected status
	// or shape. Maps to 500.
	ErrUpstream = errors.New("identity service error")
)
