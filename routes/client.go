package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/controllers"
	"github.com/programmermistery-hub/BarberCRM/middleware"
)

// SetupClientRoutes configures the client autocomplete route
func SetupClientRoutes(app *fiber.App) {
	app.Get("/clientes", middleware.Protected(), controllers.SearchClientes)
}
