package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/telemood/moodtrack/internal/models"
)

// getUserID extracts the Telegram user id from context (set by the WebAppAuth middleware)
func getUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := c.Locals("userID").(int64)
	if !ok || userID == 0 {
		return 0, fmt.Errorf("user not found in context")
	}

	return userID, nil
}

// parseDate parses a calendar date in YYYY-MM-DD form
func parseDate(value string) (time.Time, error) {
	return time.Parse(models.DateLayout, value)
}
