package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jalexanderII/todo-railway/auth"
	"github.com/jalexanderII/todo-railway/models"
)

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=150,alphanumunicode"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// fromForm reports whether the request came from an HTML form post.
func fromForm(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationForm)
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	out := make([]fiber.Map, len(verrs))
	for i, fe := range verrs {
		out[i] = fiber.Map{"field": strings.ToLower(fe.Field()), "message": "failed " + fe.Tag()}
	}
	return out
}

// @Summary Register a user.
// @Description create an account with a username, email and password.
// @Tags accounts
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account to create"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /accounts/register [post]
func Register(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(RegisterRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := h.V.Struct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid registration", validationDetails(err))
		}

		user, err := h.Auth.Register(c.UserContext(), req.Username, req.Email, req.Password)
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			return FiberJsonResponse(c, fiber.StatusConflict, "error", err.Error(), nil)
		case errors.Is(err, auth.ErrWeakPassword):
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", err.Error(), nil)
		case err != nil:
			h.L.WithError(err).Error("[Accounts] failed to register user")
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create user", nil)
		}

		h.L.WithField("user_id", user.ID).Info("user registered")
		if fromForm(c) {
			return c.Redirect("/todo/", fiber.StatusSeeOther)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// @Summary Log in.
// @Description exchange credentials for a session token; also sets the session cookie.
// @Tags accounts
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /accounts/login [post]
func Login(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(LoginRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := h.V.Struct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid login", validationDetails(err))
		}

		user, err := h.Auth.Authenticate(c.UserContext(), req.Username, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", err.Error(), nil)
		}
		if err != nil {
			h.L.WithError(err).Error("[Accounts] failed to authenticate user")
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to log in", nil)
		}

		token, err := h.JWT.Generate(user)
		if err != nil {
			h.L.WithError(err).Error("[Accounts] failed to issue token")
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to log in", nil)
		}

		expires := time.Now().Add(h.JWT.Duration())
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  expires,
			HTTPOnly: true,
			Secure:   h.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		if fromForm(c) {
			return c.Redirect("/todo/", fiber.StatusSeeOther)
		}
		return c.JSON(LoginResponse{Token: token, ExpiresAt: expires, User: user})
	}
}

// @Summary Log out.
// @Description clear the session cookie.
// @Tags accounts
// @Produce json
// @Success 200 {object} object
// @Router /accounts/logout [post]
func Logout(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   h.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		if fromForm(c) {
			return c.Redirect("/todo/", fiber.StatusSeeOther)
		}
		return c.JSON(fiber.Map{})
	}
}
