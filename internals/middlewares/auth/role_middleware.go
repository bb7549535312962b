package auth

import (
	"github.com/gofiber/fiber/v2"

	coreauth "grades_backend/internals/auth"
	"grades_backend/internals/constants"
	helper "grades_backend/internals/helpers"
)

// RequireView gates read operations: STUDENT, ADMIN, and PROFESSOR pass.
func RequireView(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing role information")
		}
		if !coreauth.Permissions(role).CanView {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorViewer(feature))
		}
		return c.Next()
	}
}

// RequireManage gates mutations: PROFESSOR only.
func RequireManage(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing role information")
		}
		if !coreauth.Permissions(role).CanManage {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorProfessor(feature))
		}
		return c.Next()
	}
}
