package middleware

import (
	"eduplatform/backend/config"
	"eduplatform/backend/models"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and that its subject matches the
// session's current user, then stashes the user id in locals.
func AuthMiddleware(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		current := st.CurrentUser()
		if current == nil || current.ID != userID {
			return utils.Unauthorized(c, "Session expired")
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// RequireRole gates teacher/admin surfaces.
func RequireRole(st *store.Store, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !st.CanAccess(roles...) {
			return utils.Forbidden(c, "Forbidden - insufficient role")
		}
		return c.Next()
	}
}
