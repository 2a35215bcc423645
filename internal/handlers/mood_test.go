package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/telemood/moodtrack/internal/handlers"
	"github.com/telemood/moodtrack/internal/middleware"
	"github.com/telemood/moodtrack/internal/models"
	"github.com/telemood/moodtrack/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp creates a Fiber app over an in-memory SQLite database,
// wired the same way as cmd/server.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.MoodEntry{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := err.Error()
			var customErr *types.CustomError
			if errors.As(err, &customErr) {
				code = customErr.Code
				message = customErr.Message
			}
			return c.Status(code).JSON(fiber.Map{"status": "error", "message": message})
		},
	})

	handler := &handlers.MoodHandler{DB: db}
	app.Get("/mood-data", middleware.WebAppAuth(), handler.GetMoodData)
	app.Post("/webapp-data", handler.SaveMoodData)
	app.Get("/mood-dates", middleware.WebAppAuth(), handler.GetMoodDates)

	return app, db
}

// testInitData builds an initData payload for the given user id
func testInitData(userID string) string {
	values := url.Values{}
	values.Set("user", `{"id":`+userID+`,"first_name":"Test"}`)
	values.Set("auth_date", "1709290000")
	values.Set("hash", "c0ffee")
	return values.Encode()
}

// doRequest executes a request against the app and decodes the JSON envelope
func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to decode response %q: %v", body, err)
	}

	return resp.StatusCode, result
}

// saveEntry posts a save request for the given user
func saveEntry(t *testing.T, app *fiber.App, userID string, data map[string]interface{}) (int, map[string]interface{}) {
	body, err := json.Marshal(map[string]interface{}{
		"initData": testInitData(userID),
		"data":     data,
	})
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest("POST", "/webapp-data", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(t, app, req)
}

func TestGetMoodData_NoEntry(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/mood-data?date=2024-03-01&initData="+url.QueryEscape(testInitData("7")), nil)
	code, result := doRequest(t, app, req)

	if code != 200 {
		t.Fatalf("Expected status 200, got %d", code)
	}
	if result["status"] != "success" {
		t.Errorf("Expected status success, got %v", result["status"])
	}
	if data, ok := result["data"]; !ok || data != nil {
		t.Errorf("Expected data null, got %v", data)
	}
}

func TestSaveAndGetMoodData(t *testing.T) {
	app, _ := setupTestApp(t)

	code, result := saveEntry(t, app, "7", map[string]interface{}{
		"date":        "2024-03-01",
		"mood":        "happy",
		"achievement": "ran 5k",
		"goals":       []string{"read", "sleep", "water"},
	})
	if code != 200 {
		t.Fatalf("Expected status 200 on save, got %d (%v)", code, result)
	}
	if result["status"] != "success" {
		t.Errorf("Expected status success on save, got %v", result["status"])
	}

	req := httptest.NewRequest("GET", "/mood-data?date=2024-03-01&initData="+url.QueryEscape(testInitData("7")), nil)
	code, result = doRequest(t, app, req)
	if code != 200 {
		t.Fatalf("Expected status 200, got %d", code)
	}

	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected an entry, got %v", result["data"])
	}
	if data["date"] != "2024-03-01" {
		t.Errorf("Unexpected date: %v", data["date"])
	}
	if data["mood"] != "happy" {
		t.Errorf("Unexpected mood: %v", data["mood"])
	}
	if data["achievement"] != "ran 5k" {
		t.Errorf("Unexpected achievement: %v", data["achievement"])
	}

	goals, ok := data["goals"].([]interface{})
	if !ok || len(goals) != 3 {
		t.Fatalf("Expected 3 goals, got %v", data["goals"])
	}
	if goals[0] != "read" || goals[1] != "sleep" || goals[2] != "water" {
		t.Errorf("Unexpected goals: %v", goals)
	}
}

func TestSaveMoodData_Overwrite(t *testing.T) {
	app, db := setupTestApp(t)

	saveEntry(t, app, "7", map[string]interface{}{"date": "2024-03-01", "mood": "sad"})
	saveEntry(t, app, "7", map[string]interface{}{"date": "2024-03-01", "mood": "happy"})

	var count int64
	if err := db.Model(&models.MoodEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected one row after two saves on the same date, got %d", count)
	}

	req := httptest.NewRequest("GET", "/mood-data?date=2024-03-01&initData="+url.QueryEscape(testInitData("7")), nil)
	_, result := doRequest(t, app, req)
	data := result["data"].(map[string]interface{})
	if data["mood"] != "happy" {
		t.Errorf("Expected the last write to win, got mood %v", data["mood"])
	}
}

func TestSaveMoodData_NoGoals(t *testing.T) {
	app, _ := setupTestApp(t)

	saveEntry(t, app, "7", map[string]interface{}{"date": "2024-03-01", "mood": "calm"})

	req := httptest.NewRequest("GET", "/mood-data?date=2024-03-01&initData="+url.QueryEscape(testInitData("7")), nil)
	_, result := doRequest(t, app, req)

	data := result["data"].(map[string]interface{})
	goals, ok := data["goals"].([]interface{})
	if !ok || len(goals) != 3 {
		t.Fatalf("Expected 3 goal slots, got %v", data["goals"])
	}
	for i, goal := range goals {
		if goal != "" {
			t.Errorf("Expected empty goal slot %d, got %v", i, goal)
		}
	}
}

func TestGetMoodData_BadDate(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/mood-data?date=03-01-2024&initData="+url.QueryEscape(testInitData("7")), nil)
	code, result := doRequest(t, app, req)

	if code != 400 {
		t.Fatalf("Expected status 400, got %d", code)
	}
	if result["status"] != "error" {
		t.Errorf("Expected status error, got %v", result["status"])
	}
}

func TestGetMoodData_MissingDate(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/mood-data?initData="+url.QueryEscape(testInitData("7")), nil)
	code, result := doRequest(t, app, req)

	if code != 400 {
		t.Fatalf("Expected status 400, got %d", code)
	}
	if result["status"] != "error" {
		t.Errorf("Expected status error, got %v", result["status"])
	}
}

func TestGetMoodData_NoUser(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/mood-data?date=2024-03-01", nil)
	code, result := doRequest(t, app, req)

	if code != 400 {
		t.Fatalf("Expected status 400, got %d", code)
	}
	if result["status"] != "error" {
		t.Errorf("Expected status error, got %v", result["status"])
	}
}

func TestSaveMoodData_NoUser(t *testing.T) {
	app, _ := setupTestApp(t)

	body, _ := json.Marshal(map[string]interface{}{
		"initData": "auth_date=1709290000&hash=c0ffee",
		"data":     map[string]interface{}{"date": "2024-03-01", "mood": "happy"},
	})
	req := httptest.NewRequest("POST", "/webapp-data", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	code, result := doRequest(t, app, req)

	if code != 400 {
		t.Fatalf("Expected status 400, got %d", code)
	}
	if result["status"] != "error" {
		t.Errorf("Expected status error, got %v", result["status"])
	}
}

func TestGetMoodDates(t *testing.T) {
	app, _ := setupTestApp(t)

	saveEntry(t, app, "7", map[string]interface{}{"date": "2024-03-01", "mood": "happy"})
	saveEntry(t, app, "7", map[string]interface{}{"date": "2024-03-02", "mood": "sad"})
	saveEntry(t, app, "8", map[string]interface{}{"date": "2024-03-03", "mood": "calm"})

	req := httptest.NewRequest("GET", "/mood-dates?initData="+url.QueryEscape(testInitData("7")), nil)
	code, result := doRequest(t, app, req)

	if code != 200 {
		t.Fatalf("Expected status 200, got %d", code)
	}
	moodDates, ok := result["mood_dates"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected mood_dates mapping, got %v", result)
	}
	if len(moodDates) != 2 {
		t.Fatalf("Expected exactly 2 dates, got %v", moodDates)
	}
	if moodDates["2024-03-01"] != "happy" || moodDates["2024-03-02"] != "sad" {
		t.Errorf("Unexpected mapping: %v", moodDates)
	}
}

func TestGetMoodDates_Empty(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/mood-dates?initData="+url.QueryEscape(testInitData("7")), nil)
	code, result := doRequest(t, app, req)

	if code != 200 {
		t.Fatalf("Expected status 200, got %d", code)
	}
	if result["status"] != "success" {
		t.Errorf("Expected status success, got %v", result["status"])
	}
	moodDates, ok := result["mood_dates"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected mood_dates mapping, got %v", result)
	}
	if len(moodDates) != 0 {
		t.Errorf("Expected an empty mapping, got %v", moodDates)
	}
}
