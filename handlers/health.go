package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// @Summary Show the status of server.
// @Description get the status of server.
// @Tags health
// @Accept */*
// @Produce plain
// @Success 200 "OK"
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// @Summary Check the record store.
// @Description ping the configured database.
// @Tags health
// @Produce plain
// @Success 200 "ready"
// @Failure 503 "store not ready"
// @Router /ready [get]
func HandleReadiness(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := h.Store.Ping(c.UserContext()); err != nil {
			h.L.WithError(err).Warn("store ping failed")
			return c.Status(fiber.StatusServiceUnavailable).SendString("store not ready")
		}
		return c.SendString("ready")
	}
}
