package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/telemood/moodtrack/data"
	"github.com/telemood/moodtrack/internal/config"
	"github.com/telemood/moodtrack/internal/database"
	"github.com/telemood/moodtrack/internal/handlers"
	"github.com/telemood/moodtrack/internal/middleware"
	"github.com/telemood/moodtrack/internal/types"

	_ "github.com/telemood/moodtrack/docs/api" // Swagger docs
)

// @title MoodTrack API
// @version 1.0.0
// @description Telegram mini-app backend for daily mood, achievement and goal tracking

// @host localhost:8000
// @BasePath /
// @schemes http https

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("moodtrack")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Static mini-app assets
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(data.WebAssets),
		PathPrefix: "web",
	}))

	// Create handlers
	moodHandler := &handlers.MoodHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}

	// Mini-app routes
	app.Get("/", handlers.Index)
	app.Get("/mood-data", middleware.WebAppAuth(), moodHandler.GetMoodData)
	app.Post("/webapp-data", moodHandler.SaveMoodData)
	app.Get("/mood-dates", middleware.WebAppAuth(), moodHandler.GetMoodDates)
	app.Get("/healthz", healthHandler.Healthz)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "Resource not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler converts unhandled errors to the API envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
