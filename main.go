package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/programmermistery-hub/BarberCRM/cron"
	"github.com/programmermistery-hub/BarberCRM/db"
	"github.com/programmermistery-hub/BarberCRM/redis"
	"github.com/programmermistery-hub/BarberCRM/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.SeedAdmin()
	redis.InitRedis()

	// Credentialed CORS (the session cookie) forbids the wildcard
	// origin, so the frontend origin is explicit.
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BarberCRM API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupTimerOutRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
