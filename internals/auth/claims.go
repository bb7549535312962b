package auth

import (
	"context"
	"strings"

	"grades_backend/internals/constants"
)

// IdentityClaim is the normalized per-request identity produced by a
// TokenValidator. It is never persisted.
type IdentityClaim struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	UserID    string `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// TokenValidator verifies a bearer token and yields the caller's identity.
// Implementations: LocalValidator (shared-secret JWT) and RemoteValidator
// (delegation to the identity service). One of the two is chosen at startup.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*IdentityClaim, error)
}

// NormalizeRole folds the two upstream surface forms ("ROLE_PROFESSOR" and
// "PROFESSOR") into one canonical form. Unknown roles pass through
// uppercased; Permissions grants them nothing.
func NormalizeRole(raw string) string {
	role := strings.ToUpper(strings.TrimSpace(raw))
	return strings.TrimPrefix(role, "ROLE_")
}

// Capabilities is the allowed-operation set for a role.
type Capabilities struct {
	CanView   bool
	CanManage bool
}

// Permissions maps a canonical role to its capabilities. Absent or
// unrecognized roles get neither.
func Permissions(role string) Capabilities {
	var caps Capabilities
	for _, r := range constants.ViewerRoles {
		if role == r {
			caps.CanView = true
			break
		}
	}
	for _, r := range constants.ManagerRoles {
		if role == r {
			caps.CanManage = true
			break
		}
	}
	return caps
}
