package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// LocalValidator verifies token signature and expiry against the shared
// secret, without calling out. Claims are read straight from the token body.
type LocalValidator struct {
	Secret    []byte
	Algorithm string // HS256 unless configured otherwise
}

func NewLocalValidator(secret, algorithm string) *LocalValidator {
	if algorithm == "" {
		algorithm = "HS256"
	}
	return &LocalValidator{Secret: []byte(secret), Algorithm: algorithm}
}

func (v *LocalValidator) Validate(_ context.Context, tokenString string) (*IdentityClaim, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{v.Algorithm}))

	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.Secret, nil
	}); err != nil {
		// Keep expiry distinguishable from a bad signature in the detail.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("%w: invalid token: %v", ErrUnauthenticated, err)
	}

	sub := claimString(claims, "sub")
	if strings.TrimSpace(sub) == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrUnauthenticated)
	}

	return &IdentityClaim{
		Email:     sub,
		Role:      claimString(claims, "role"),
		UserID:    claimString(claims, "user_id"),
		FirstName: claimString(claims, "first_name"),
		LastName:  claimString(claims, "last_name"),
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
