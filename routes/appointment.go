package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/controllers"
	"github.com/programmermistery-hub/BarberCRM/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	agendamentos := app.Group("/agendamentos", middleware.Protected())
	agendamentos.Get("/", controllers.GetAgendamentos)
	agendamentos.Get("/grade", controllers.GetScheduleGrid)
	agendamentos.Post("/", controllers.CreateAgendamento)
	agendamentos.Put("/:id", controllers.UpdateAgendamento)
	agendamentos.Delete("/:id", controllers.DeleteAgendamento)
}
