// Package middleware provides request-level authentication for Fiber
// routes. Authorization decisions stay out of here: middleware only
// resolves the bearer token to a user and leaves allow/deny to the policy
// functions invoked by the services.
package middleware

import (
	"strings"

	"movie-review-backend/internal/models"
	"movie-review-backend/internal/services"
	"movie-review-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const userLocalsKey = "current_user"

type AuthMiddleware struct {
	auth   services.AuthService
	logger *logrus.Logger
}

func NewAuthMiddleware(auth services.AuthService, logger *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		logger: logger,
	}
}

// RequireAuth rejects requests without a valid bearer token with 401 and
// stores the authenticated user for handlers.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, ok := bearerToken(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing or malformed bearer token")
		}

		user, err := m.auth.Authenticate(c.Context(), key)
		if err != nil {
			if err != services.ErrInvalidToken {
				m.logger.WithError(err).Error("Token authentication failed")
			}
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth, or nil
// on public routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	// "Token <key>" is accepted alongside "Bearer <key>" for clients that
	// predate the rename.
	for _, scheme := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(header, scheme) {
			key := strings.TrimSpace(strings.TrimPrefix(header, scheme))
			return key, key != ""
		}
	}
	return "", false
}
