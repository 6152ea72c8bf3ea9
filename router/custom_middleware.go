package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/jalexanderII/todo-railway/auth"
	"github.com/jalexanderII/todo-railway/handlers"
)

// sessionToken pulls the token from "Authorization: Bearer" or the session cookie.
func sessionToken(c *fiber.Ctx) (string, error) {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", auth.ErrInvalidToken
		}
		return parts[1], nil
	}
	if cookie := c.Cookies(handlers.SessionCookie); cookie != "" {
		return cookie, nil
	}
	return "", auth.ErrMissingToken
}

// RequireUser rejects the request with 401 unless it carries a valid session.
func RequireUser(jwt *auth.JWTManager, l *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := sessionToken(c)
		if err != nil {
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", err.Error(), nil)
		}

		claims, err := jwt.Validate(token)
		if err != nil {
			l.WithError(err).WithField("path", c.Path()).Debug("rejected session token")
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", auth.ErrInvalidToken.Error(), nil)
		}

		handlers.SetCurrentUser(c, claims)
		return c.Next()
	}
}

// OptionalUser attaches the session user when the token is valid and
// otherwise lets the request through anonymously.
func OptionalUser(jwt *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, err := sessionToken(c); err == nil {
			if claims, err := jwt.Validate(token); err == nil {
				handlers.SetCurrentUser(c, claims)
			}
		}
		return c.Next()
	}
}
