package controllers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/programmermistery-hub/BarberCRM/db"
	"github.com/programmermistery-hub/BarberCRM/middleware"
	"github.com/programmermistery-hub/BarberCRM/redis"
	"github.com/programmermistery-hub/BarberCRM/store"
)

const sessionTTL = 24 * time.Hour

// Login handles staff authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Login string `json:"login"`
		Senha string `json:"senha"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Login == "" || input.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Login e senha sao obrigatorios",
		})
	}

	user, err := store.New(db.DB).UserByLogin(input.Login)
	if err != nil {
		log.Printf("Failed to fetch user %q: %v", input.Login, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erro interno. Tente novamente.",
		})
	}
	// Same message for unknown login and wrong password.
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Login ou senha incorretos",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Senha)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Login ou senha incorretos",
		})
	}

	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"login": user.Login,
		"jti":   jti,
		"exp":   time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(middleware.Secret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erro interno. Tente novamente.",
		})
	}

	if err := redis.RegisterSession(jti, user.Login, sessionTTL); err != nil {
		log.Printf("Failed to register session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erro interno. Tente novamente.",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tokenString,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   os.Getenv("APP_ENV") == "production",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    user.ID,
			"login": user.Login,
		},
	})
}

// Logout revokes the session server-side and expires the cookie
func Logout(c *fiber.Ctx) error {
	if jti, ok := c.Locals("jti").(string); ok && jti != "" {
		if err := redis.RevokeSession(jti); err != nil {
			log.Printf("Failed to revoke session: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// Me returns the authenticated staff user
func Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    c.Locals("userID"),
		"login": c.Locals("login"),
	})
}
