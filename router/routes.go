package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jalexanderII/todo-railway/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/todo/")
	})

	app.Get("/health", handlers.HandleHealthCheck)
	app.Get("/ready", handlers.HandleReadiness(h))

	accounts := app.Group("/accounts")
	accounts.Post("/register", handlers.Register(h))
	accounts.Post("/login", handlers.Login(h))
	accounts.Post("/logout", handlers.Logout(h))

	todo := app.Group("/todo")
	todo.Get("/", OptionalUser(h.JWT), handlers.ListItemsPage(h))

	api := todo.Group("/api", RequireUser(h.JWT, h.L))
	api.Get("/", handlers.HandleAllItems(h))
	api.Post("/", handlers.HandleCreateItem(h))
	api.Put("/:id", handlers.HandleUpdateItem(h))
	api.Delete("/:id", handlers.HandleDeleteItem(h))
}
