package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/telemood/moodtrack/internal/models"
)

// DataResponse sends a success envelope carrying an entry payload (or null)
func DataResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// MessageResponse sends a success envelope carrying an acknowledgment message
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": message,
	})
}

// MoodDatesResponse sends a success envelope carrying the date-to-mood mapping
func MoodDatesResponse(c *fiber.Ctx, moodDates map[string]string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"mood_dates": moodDates,
	})
}

// ErrorResponse sends a standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message"`
}

// SaveResponseStruct defines the schema for save acknowledgments
type SaveResponseStruct struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

// MoodDataResponseStruct defines the schema for single-entry responses
type MoodDataResponseStruct struct {
	Status string               `json:"status" example:"success"`
	Data   *models.EntryPayload `json:"data"`
}

// MoodDatesResponseStruct defines the schema for the calendar overview response
type MoodDatesResponseStruct struct {
	Status    string            `json:"status" example:"success"`
	MoodDates map[string]string `json:"mood_dates"`
}
