package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/telemood/moodtrack/internal/config"
	"github.com/telemood/moodtrack/internal/database"
	"github.com/telemood/moodtrack/internal/services"
	"github.com/telemood/moodtrack/internal/utils"
)

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

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Verify the HTTP listener is up as well
	serverURL := fmt.Sprintf("http://127.0.0.1:%s", cfg.Port)
	if err := utils.PingServer(serverURL); err != nil {
		result.Status = "unhealthy"
		result.Details["server_ping_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Server ping failed: %v", err)
		}
	} else {
		result.Details["server_url"] = serverURL
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
