package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	// registers the generated OpenAPI document with swag
	_ "github.com/jalexanderII/todo-railway/docs"
)

// AddSwaggerRoutes will add auto generated swagger routes
func AddSwaggerRoutes(app *fiber.App) {
	// setup swagger
	app.Get("/swagger/*", swagger.HandlerDefault)
}
