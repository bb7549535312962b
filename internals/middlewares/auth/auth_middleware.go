package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	coreauth "grades_backend/internals/auth"
	helper "grades_backend/internals/helpers"
)

const identityLocal = "identity"

// AuthMiddleware validates the bearer token with the configured validator
// and stores the normalized identity in the request locals. Authorization
// guards and handlers run only after this succeeds.
func AuthMiddleware(validator coreauth.TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - "+err.Error())
		}

		claim, err := validator.Validate(c.UserContext(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, coreauth.ErrUnauthenticated):
				return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
			case errors.Is(err, coreauth.ErrUpstreamUnavailable):
				log.Printf("[ERROR] token validation: %v", err)
				return helper.JsonError(c, fiber.StatusServiceUnavailable, "Identity service unavailable")
			default:
				log.Printf("[ERROR] token validation: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Identity service error")
			}
		}

		// Normalize once at the ingestion boundary; every guard downstream
		// sees the canonical role form.
		claim.Role = coreauth.NormalizeRole(claim.Role)

		c.Locals(identityLocal, claim)
		c.Locals("user_id", claim.UserID)
		c.Locals("userRole", claim.Role)

		return c.Next()
	}
}

// Identity returns the validated claim stored by AuthMiddleware.
func Identity(c *fiber.Ctx) (*coreauth.IdentityClaim, bool) {
	claim, ok := c.Locals(identityLocal).(*coreauth.IdentityClaim)
	return claim, ok
}
