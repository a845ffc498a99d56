package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/booking"
)

// bookingError maps a writer error to its HTTP response. Validation,
// conflict and not-found get specific messages; anything else gets a
// generic one so internals never leak to the user.
func bookingError(c *fiber.Ctx, err error) error {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Data, horario, nome e servico sao obrigatorios",
		})
	}
	var cerr *booking.ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Ja existe um agendamento neste horario",
		})
	}
	var nerr *booking.NotFoundError
	if errors.As(err, &nerr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agendamento nao encontrado",
		})
	}
	log.Printf("Booking error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Erro interno. Tente novamente.",
	})
}
