package middleware

import (
	"strings"

	"go-gudang-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and sets the admin identity in the
// request context for downstream handlers.
func RequireAuth(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"message": "Token tidak ditemukan"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"message": "Format otorisasi tidak valid. Gunakan: Bearer <token>"})
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "Token tidak valid atau kedaluwarsa"})
		}

		c.Locals("admin_id", claims.AdminID)
		c.Locals("username", claims.Username)

		return c.Next()
	}
}

// AdminID returns the authenticated admin id set by RequireAuth.
func AdminID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("admin_id").(uint); ok {
		return id
	}
	return 0
}

// Username returns the authenticated username set by RequireAuth.
func Username(c *fiber.Ctx) string {
	if name, ok := c.Locals("username").(string); ok {
		return name
	}
	return ""
}
