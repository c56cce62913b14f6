package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/permissions"
)

// RequireCapability gates a route on one capability flag of the resolved
// principal. Missing principal is 401; a principal without the flag is 403.
// Runs after JWTProtected and LoadPrincipal.
func RequireCapability(cap permissions.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := Principal(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !permissions.Allowed(user, cap) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient permissions",
			})
		}

		return c.Next()
	}
}
