package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/jalexanderII/todo-railway/auth"
	"github.com/jalexanderII/todo-railway/database"
	"github.com/jalexanderII/todo-railway/services"
)

const (
	// SessionCookie carries the session token for browser clients.
	SessionCookie = "todo_session"

	userIDKey   = "user_id"
	usernameKey = "username"
)

type Handler struct {
	Store database.Store
	Items *services.ItemService
	Auth  *auth.PasswordAuthenticator
	JWT   *auth.JWTManager
	L     *logrus.Logger
	V     *validator.Validate
	// SecureCookies marks the session cookie Secure (production only).
	SecureCookies bool
}

func NewHandler(store database.Store, jwt *auth.JWTManager, l *logrus.Logger) *Handler {
	return &Handler{
		Store: store,
		Items: services.NewItemService(store, l),
		Auth:  auth.NewPasswordAuthenticator(store),
		JWT:   jwt,
		L:     l,
		V:     validator.New(),
	}
}

// SetCurrentUser records the authenticated caller on the request.
func SetCurrentUser(c *fiber.Ctx, claims *auth.Claims) {
	c.Locals(userIDKey, claims.UserID)
	c.Locals(usernameKey, claims.Username)
}

// CurrentUserID returns the authenticated caller's id, or "" if there is none.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}

// CurrentUsername returns the authenticated caller's username, or "".
func CurrentUsername(c *fiber.Ctx) string {
	name, _ := c.Locals(usernameKey).(string)
	return name
}

func FiberJsonResponse(c *fiber.Ctx, httpStatus int, status, message string, data any) error {
	return c.Status(httpStatus).JSON(fiber.Map{"status": status, "message": message, "data": data})
}
