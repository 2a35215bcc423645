package bot

import (
	"context"
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrMissingToken is returned when no bot token is configured.
var ErrMissingToken = errors.New("TELEGRAM_BOT_TOKEN is not set")

// ErrMissingWebAppURL is returned when no mini-app URL is configured.
var ErrMissingWebAppURL = errors.New("WEBAPP_URL is not set")

const (
	startText = "Привет! Нажми на кнопку ниже, чтобы открыть трекер состояния:"
	helpText  = "Это бот для отслеживания настроения и личных целей.\n\n" +
		"Доступные команды:\n" +
		"/start - Открыть трекер настроения\n" +
		"/help - Показать это сообщение"
	unknownText = "Неизвестная команда. Используйте /help."
	buttonText  = "Открыть трекер настроения"
)

// LauncherBot replies to commands with a button that opens the mood tracker
// mini app. It never talks to the entry store; the mini-app URL is its only
// coupling to the API service.
type LauncherBot struct {
	token     string
	webAppURL string
}

// New creates a launcher bot for the given token and mini-app URL.
func New(token, webAppURL string) *LauncherBot {
	return &LauncherBot{token: token, webAppURL: webAppURL}
}

// Start runs the update loop until the context is cancelled.
func (b *LauncherBot) Start(ctx context.Context) error {
	if b.token == "" {
		return ErrMissingToken
	}
	if b.webAppURL == "" {
		return ErrMissingWebAppURL
	}

	api, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return err
	}

	api.Debug = false
	log.Printf("Authorized on account %s", api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := api.GetUpdatesChan(updateConfig)

	for {
		select {
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			msg := b.handleCommand(update.Message)
			if _, err := api.Send(msg); err != nil {
				log.Printf("send message error: %v", err)
			}
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return nil
		}
	}
}

// handleCommand builds the reply for a bot command.
func (b *LauncherBot) handleCommand(message *tgbotapi.Message) tgbotapi.MessageConfig {
	switch message.Command() {
	case "start":
		msg := tgbotapi.NewMessage(message.Chat.ID, startText)
		msg.ReplyMarkup = b.launchKeyboard()
		return msg
	case "help":
		return tgbotapi.NewMessage(message.Chat.ID, helpText)
	default:
		return tgbotapi.NewMessage(message.Chat.ID, unknownText)
	}
}

// launchKeyboard is the one-button markup opening the mini app.
func (b *LauncherBot) launchKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(buttonText, b.webAppURL),
		),
	)
}
