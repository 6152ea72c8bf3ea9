package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/jalexanderII/todo-railway/config"
	"github.com/jalexanderII/todo-railway/handlers"
)

// FiberMiddleware provides Fiber's built-in middlewares.
// See: https://docs.gofiber.io/api/middleware
func FiberMiddleware(a *fiber.App, cfg *config.Config, l *logrus.Logger) {
	a.Use(
		// recover from panic
		recover.New(),
		// request log, written through logrus
		logger.New(logger.Config{
			Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
			Output: l.WriterLevel(logrus.InfoLevel),
		}),
		// Add CORS to each route.
		cors.New(cors.Config{
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowCredentials: false,
		}),
	)

	if cfg.RateLimitMax > 0 {
		a.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitMax,
			Expiration:        cfg.RateLimitWindow,
			LimiterMiddleware: limiter.SlidingWindow{},
			LimitReached: func(c *fiber.Ctx) error {
				return handlers.FiberJsonResponse(c, fiber.StatusTooManyRequests, "error", "too many requests", nil)
			},
		}))
	}
}
