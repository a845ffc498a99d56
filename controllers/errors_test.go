package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/programmermistery-hub/BarberCRM/booking"
)

func TestBookingErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &booking.ValidationError{Field: "nome"}, fiber.StatusBadRequest},
		{"conflict", &booking.ConflictError{Date: "2024-03-01", Time: "09:30"}, fiber.StatusConflict},
		{"not found", &booking.NotFoundError{ID: 9}, fiber.StatusNotFound},
		{"storage", &booking.StorageError{Op: "create", Err: errors.New("down")}, fiber.StatusInternalServerError},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return bookingError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}
