package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/telemood/moodtrack/data"
	"github.com/telemood/moodtrack/internal/utils"
)

// Index handles GET /
// @Summary Get the mini-app page
// @Description Serve the embedded mood tracker HTML document.
// @Tags Pages
// @Produce html
// @Success 200 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router / [get]
func Index(c *fiber.Ctx) error {
	if len(data.IndexHTML) == 0 {
		return utils.ErrorResponse(c, "Error loading page", fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(data.IndexHTML)
}
