package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/clients"
	"github.com/programmermistery-hub/BarberCRM/db"
	"github.com/programmermistery-hub/BarberCRM/models"
	"github.com/programmermistery-hub/BarberCRM/store"
)

// SearchClientes godoc
// @Summary Search clients by name
// @Description Autocomplete: case-insensitive substring match, max 10 results
// @Tags clientes
// @Accept json
// @Produce json
// @Param nome query string false "Name fragment (min 2 chars)"
// @Success 200 {array} models.Client
// @Router /clientes [get]
func SearchClientes(c *fiber.Ctx) error {
	found, err := clients.Search(store.New(db.DB), c.Query("nome"))
	if err != nil {
		log.Printf("Failed to search clientes: %v", err)
		return c.JSON([]models.Client{})
	}
	return c.JSON(found)
}
