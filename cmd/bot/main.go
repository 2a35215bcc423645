package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/telemood/moodtrack/internal/bot"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	launcher := bot.New(os.Getenv("TELEGRAM_BOT_TOKEN"), os.Getenv("WEBAPP_URL"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := launcher.Start(ctx); err != nil {
		log.Fatalf("bot error: %v", err)
	}

	log.Println("Bot stopped")
}
