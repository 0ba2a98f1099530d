package auth

import (
	"time"

	"godiya-emr-backend/internal/config"
	"godiya-emr-backend/internal/logger"
	"godiya-emr-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// LoginHandler authenticates against the fixed credential table and
// issues the session token. redirectFor maps the role to its dashboard
// landing route so the frontend knows where to send the user.
func LoginHandler(cfg *config.Config, redirectFor func(models.StaffRole) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		// The prototype fakes backend latency on login; keep it.
		time.Sleep(cfg.SimulatedLatency)

		// Lookup is exact-match on purpose: no trimming, no lowercasing.
		cred, ok := Authenticate(body.Email, body.Password)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, cred)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}

		logger.WithField("role", cred.Role).Info("User logged in")

		return c.JSON(fiber.Map{
			"token":         token,
			"redirect_path": redirectFor(cred.Role),
			"user": fiber.Map{
				"name":  cred.Name,
				"email": cred.Email,
				"role":  cred.Role,
			},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		return c.JSON(fiber.Map{
			"name":      session.Name,
			"email":     session.Email,
			"role":      session.Role,
			"timestamp": session.Timestamp,
		})
	}
}

// LogoutHandler exists for the frontend's logout action. The session
// lives in the token the client holds, so there is nothing to clear
// server-side; calling it twice is harmless.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Logged out"})
	}
}

// ForgotPasswordHandler simulates the reset flow. It answers the same
// way whether or not the email exists so the credential table cannot be
// probed, and nothing is actually sent.
func ForgotPasswordHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ForgotPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email is required")
		}

		time.Sleep(cfg.SimulatedLatency)

		return c.JSON(fiber.Map{
			"message": "If the email is registered, reset instructions have been sent",
		})
	}
}

// ChangePasswordHandler validates the current password and acknowledges
// the change. The credential table is fixed demo data, so the new
// password is not persisted; the prototype's change-password screen
// behaves the same way.
func ChangePasswordHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}

		var body ChangePasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if len(body.NewPassword) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "New password must be at least 8 characters")
		}
		if _, ok := Authenticate(session.Email, body.CurrentPassword); !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Current password is incorrect")
		}

		time.Sleep(cfg.SimulatedLatency)

		return c.JSON(fiber.Map{"message": "Password changed"})
	}
}
