package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/telemood/moodtrack/internal/telegram"
	"github.com/telemood/moodtrack/internal/types"
)

// WebAppAuth resolves the Telegram user id from the initData query parameter
// and stores it in request locals for the handlers. The mini-app frontend
// attaches initData to every GET request.
func WebAppAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := telegram.ParseUserID(c.Query("initData"))
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: "User ID not found",
				Type:    "mood.authorization.user",
			}
		}

		c.Locals("userID", userID)

		return c.Next()
	}
}
