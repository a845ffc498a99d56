package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/controllers"
	"github.com/programmermistery-hub/BarberCRM/middleware"
)

// SetupTimerOutRoutes configures the timer-out report route
func SetupTimerOutRoutes(app *fiber.App) {
	app.Get("/timer-out", middleware.Protected(), controllers.GetTimerOut)
}
