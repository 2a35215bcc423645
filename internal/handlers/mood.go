package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/telemood/moodtrack/internal/models"
	"github.com/telemood/moodtrack/internal/services"
	"github.com/telemood/moodtrack/internal/telegram"
	"github.com/telemood/moodtrack/internal/utils"
	"gorm.io/gorm"
)

// MoodHandler handles mood entry routes
type MoodHandler struct {
	DB *gorm.DB
}

// SaveRequest is the body of a save call from the mini app
type SaveRequest struct {
	InitData string              `json:"initData"`
	Data     models.EntryPayload `json:"data"`
}

// GetMoodData handles GET /mood-data
// @Summary Get a mood entry
// @Description Get the mood entry for the requesting user and date. A missing entry is data=null, not an error.
// @Tags Mood
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param initData query string true "Telegram WebApp init data"
// @Success 200 {object} utils.MoodDataResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /mood-data [get]
func (h *MoodHandler) GetMoodData(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, "User ID not found", fiber.StatusBadRequest)
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		return utils.ErrorResponse(c, "Date is required", fiber.StatusBadRequest)
	}

	date, err := parseDate(dateParam)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid date, expected YYYY-MM-DD", fiber.StatusBadRequest)
	}

	entry, err := services.FindEntry(h.DB, userID, date)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError)
	}

	if entry == nil {
		return utils.DataResponse(c, nil)
	}

	return utils.DataResponse(c, entry.ToPayload())
}

// SaveMoodData handles POST /webapp-data
// @Summary Save a mood entry
// @Description Insert or update the entry for the requesting user and date.
// @Tags Mood
// @Accept json
// @Produce json
// @Param body body SaveRequest true "Entry to save"
// @Success 200 {object} utils.SaveResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /webapp-data [post]
func (h *MoodHandler) SaveMoodData(c *fiber.Ctx) error {
	var body SaveRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest)
	}

	userID, err := telegram.ParseUserID(body.InitData)
	if err != nil {
		return utils.ErrorResponse(c, "User ID not found", fiber.StatusBadRequest)
	}

	if body.Data.Date == "" {
		return utils.ErrorResponse(c, "Date is required", fiber.StatusBadRequest)
	}

	date, err := parseDate(body.Data.Date)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid date, expected YYYY-MM-DD", fiber.StatusBadRequest)
	}

	err = services.SaveEntry(h.DB, userID, services.EntryInput{
		Date:            date,
		Mood:            body.Data.Mood,
		MoodDescription: body.Data.MoodDescription,
		Achievement:     body.Data.Achievement,
		Goals:           body.Data.Goals,
	})
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError)
	}

	return utils.MessageResponse(c, "Data saved successfully")
}

// GetMoodDates handles GET /mood-dates
// @Summary Get the calendar overview
// @Description Get every date the requesting user has an entry for, mapped to that entry's mood.
// @Tags Mood
// @Produce json
// @Param initData query string true "Telegram WebApp init data"
// @Success 200 {object} utils.MoodDatesResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /mood-dates [get]
func (h *MoodHandler) GetMoodDates(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, "User ID not found", fiber.StatusBadRequest)
	}

	moodDates, err := services.ListMoodDates(h.DB, userID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError)
	}

	return utils.MoodDatesResponse(c, moodDates)
}
