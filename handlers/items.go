package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/jalexanderII/todo-railway/services"
)

// itemError maps service errors onto HTTP responses.
func (h *Handler) itemError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid item payload", verr.Fields)
	case errors.Is(err, services.ErrUnauthenticated):
		return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", err.Error(), nil)
	case errors.Is(err, services.ErrForbidden):
		return FiberJsonResponse(c, fiber.StatusForbidden, "error", err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		return FiberJsonResponse(c, fiber.StatusNotFound, "error", err.Error(), nil)
	}

	h.L.WithError(err).WithFields(logrus.Fields{
		"method":  c.Method(),
		"path":    c.Path(),
		"user_id": CurrentUserID(c),
	}).Error("[ItemAPI] store failure")
	return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "internal error", nil)
}

// @Summary List the caller's items.
// @Description fetch every to-do item owned by the authenticated user, latest due date first.
// @Tags items
// @Produce json
// @Security Session
// @Success 200 {array} models.Item
// @Failure 401 {object} ErrorResponse
// @Router /todo/api/ [get]
func HandleAllItems(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		items, err := h.Items.List(c.UserContext(), CurrentUserID(c))
		if err != nil {
			return h.itemError(c, err)
		}
		return c.JSON(items)
	}
}

// @Summary Create an item.
// @Description create a to-do item owned by the caller. Any "user" field in the body is ignored.
// @Tags items
// @Accept json
// @Produce json
// @Security Session
// @Param item body ItemPayload true "Item fields"
// @Success 200 {object} models.Item
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /todo/api/ [post]
func HandleCreateItem(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		patch, err := services.DecodeItemPatch(c.Body())
		if err != nil {
			return h.itemError(c, err)
		}
		item, err := h.Items.Create(c.UserContext(), CurrentUserID(c), patch)
		if err != nil {
			return h.itemError(c, err)
		}
		return c.JSON(item)
	}
}

// @Summary Update an item.
// @Description change only the fields present in the body.
// @Tags items
// @Accept json
// @Produce json
// @Security Session
// @Param id path string true "Item ID"
// @Param item body ItemPayload true "Fields to change"
// @Success 200 {object} models.Item
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /todo/api/{id} [put]
func HandleUpdateItem(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		item, err := h.Items.UpdateJSON(c.UserContext(), CurrentUserID(c), c.Params("id"), c.Body())
		if err != nil {
			return h.itemError(c, err)
		}
		return c.JSON(item)
	}
}

// @Summary Delete an item.
// @Description delete one of the caller's items.
// @Tags items
// @Produce json
// @Security Session
// @Param id path string true "Item ID"
// @Success 200 {object} object
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /todo/api/{id} [delete]
func HandleDeleteItem(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := h.Items.Delete(c.UserContext(), CurrentUserID(c), c.Params("id")); err != nil {
			return h.itemError(c, err)
		}
		return c.JSON(fiber.Map{})
	}
}

// ItemPayload documents the accepted body fields. Every field is optional on update.
type ItemPayload struct {
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description" example:"two litres"`
	Date        string `json:"date" example:"2024-01-01T00:00:00Z"`
	Done        bool   `json:"done" example:"false"`
}

// ErrorResponse is the envelope returned for failed requests.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"item not found"`
	Data    any    `json:"data"`
}
