package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/db"
	"github.com/programmermistery-hub/BarberCRM/store"
	"github.com/programmermistery-hub/BarberCRM/timerout"
)

// GetTimerOut godoc
// @Summary Clients overdue for a return visit
// @Description Days since each client's most recent appointment, longest absence first
// @Tags timer-out
// @Accept json
// @Produce json
// @Param search query string false "Name fragment filter"
// @Success 200 {array} timerout.Entry
// @Router /timer-out [get]
func GetTimerOut(c *fiber.Ctx) error {
	visits, err := store.New(db.DB).Visits(c.Query("search"))
	if err != nil {
		log.Printf("Failed to fetch visits for timer-out: %v", err)
		return c.JSON([]timerout.Entry{})
	}

	entries := timerout.Aggregate(visits, time.Now())
	if entries == nil {
		entries = []timerout.Entry{}
	}
	return c.JSON(entries)
}
