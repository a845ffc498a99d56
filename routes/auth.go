package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/controllers"
	"github.com/programmermistery-hub/BarberCRM/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Get("/me", middleware.Protected(), controllers.Me)
}
