package app

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/jalexanderII/todo-railway/auth"
	"github.com/jalexanderII/todo-railway/config"
	"github.com/jalexanderII/todo-railway/database"
	"github.com/jalexanderII/todo-railway/handlers"
	"github.com/jalexanderII/todo-railway/router"
)

// OpenStore opens the backend named by cfg.StoreDriver.
func OpenStore(cfg *config.Config, l *logrus.Logger) (database.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return database.StartMongoDB(cfg, l)
	case config.DriverSQLite:
		return database.OpenSQLite(cfg.SQLitePath, l)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// New wires the handlers, middleware and routes around store.
func New(cfg *config.Config, store database.Store, l *logrus.Logger) (*fiber.App, *handlers.Handler) {
	app := fiber.New(fiber.Config{
		AppName:      "todo-railway",
		ErrorHandler: errorHandler(l),
	})

	h := handlers.NewHandler(store, auth.NewJWTManager(cfg.SessionSecret, cfg.SessionTTL), l)
	h.SecureCookies = cfg.IsProduction()

	// attach middleware
	FiberMiddleware(app, cfg, l)

	// setup routes
	router.SetupRoutes(app, h)

	// attach swagger
	config.AddSwaggerRoutes(app)

	return app, h
}

// SetupAndRunApp handle app and database start and graceful shutdown
func SetupAndRunApp(cfg *config.Config) error {
	l := NewLogger(cfg)

	// start database
	store, err := OpenStore(cfg, l)
	if err != nil {
		return err
	}

	// defer closing database
	defer func() {
		if err := store.Close(); err != nil {
			l.WithError(err).Error("failed to close store")
		}
	}()

	app, _ := New(cfg, store, l)

	return StartServerWithGracefulShutdown(app, cfg.Addr(), l)
}

// errorHandler renders errors that escape handlers (unknown routes, panics)
// in the JSON envelope.
func errorHandler(l *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		message := err.Error()
		if code >= fiber.StatusInternalServerError {
			l.WithError(err).WithField("path", c.Path()).Error("request failed")
			message = "internal error"
		}
		return handlers.FiberJsonResponse(c, code, "error", message, nil)
	}
}
