package middleware

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/programmermistery-hub/BarberCRM/redis"
)

// SessionCookie is the HTTP-only cookie carrying the session token.
const SessionCookie = "session"

// Secret returns the JWT signing key.
func Secret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "barbercrm_dev_secret" // Replace with secure key in production
	}
	return []byte(secret)
}

// Protected validates the session cookie: a signed token whose id is
// still registered in Redis. Logout revokes the id server-side, so a
// stolen cookie dies with the session.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   Secret(),
		TokenLookup:  "cookie:" + SessionCookie,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Sessao invalida",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Sessao invalida",
				})
			}

			jti, _ := claims["jti"].(string)
			if jti == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Sessao invalida",
				})
			}
			active, err := redis.SessionActive(jti)
			if err != nil {
				log.Printf("Session check failed: %v", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Sessao invalida",
				})
			}
			if !active {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Sessao expirada",
				})
			}

			if id, ok := claims["id"].(float64); ok {
				c.Locals("userID", uint(id))
			}
			if login, ok := claims["login"].(string); ok {
				c.Locals("login", login)
			}
			c.Locals("jti", jti)

			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Sessao invalida ou expirada",
	})
}
