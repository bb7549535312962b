package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ValidateTimeout bounds the round-trip to the identity service. On timeout
// the caller sees ErrUpstreamUnavailable, never "invalid token".
const ValidateTimeout = 10 * time.Second

// RemoteValidator delegates verification to the identity service:
// GET {base}/api/auth/validate?token=... A 200 body is the claim source,
// 400 means the token is invalid or expired, anything else is an upstream
// error.
type RemoteValidator struct {
	BaseURL string
	client  *http.Client
}

func NewRemoteValidator(baseURL string) *RemoteValidator {
	return &RemoteValidator{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: ValidateTimeout},
	}
}

func (v *RemoteValidator) Validate(ctx context.Context, token string) (*IdentityClaim, error) {
	endpoint := v.BaseURL + "/api/auth/validate?" + url.Values{"token": {token}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		// Transport failure or timeout. Must not fall through to an
		// authenticated state.
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var claim IdentityClaim
		if err := json.NewDecoder(resp.Body).Decode(&claim); err != nil {
			return nil, fmt.Errorf("%w: bad validate response: %v", ErrUpstream, err)
		}
		return &claim, nil
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid or expired token", ErrUnauthenticated)
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}
}
