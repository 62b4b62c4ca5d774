package middleware

import (
	"errors"

	"quizbuilder/backend/config"
	"quizbuilder/backend/models"
	"quizbuilder/backend/store"
	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the bearer token to a stored user. A missing,
// invalid or expired token and an unknown subject all get the same 401.
func AuthMiddleware(s *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := utils.ExtractEmailFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Could not validate credentials")
		}

		user, err := s.UserByEmail(c.UserContext(), email)
		if errors.Is(err, store.ErrNotFound) {
			return utils.Unauthorized(c, "Could not validate credentials")
		}
		if err != nil {
			return err
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
