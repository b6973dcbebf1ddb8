package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"rentledger-backend/internal/api"
	"rentledger-backend/internal/config"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// POST /api/v1/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if cfg.Passkey == "" && cfg.PasskeyHash == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Server configuration error")
		}

		if !passkeyMatches(cfg, body.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
		}

		token, err := GenerateToken(cfg.JWTSecret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create session token")
		}

		return c.JSON(api.OK(fiber.Map{"token": token}, "Login successful"))
	}
}

func passkeyMatches(cfg *config.Config, password string) bool {
	if cfg.PasskeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.PasskeyHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(cfg.Passkey), []byte(password)) == 1
}
