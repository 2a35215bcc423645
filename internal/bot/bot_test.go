package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func commandMessage(command string) *tgbotapi.Message {
	text := "/" + command
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 42},
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(text)},
		},
	}
}

func TestHandleCommand_Start(t *testing.T) {
	b := New("token", "https://mood.example.com")

	msg := b.handleCommand(commandMessage("start"))
	if msg.ChatID != 42 {
		t.Errorf("Expected chat id 42, got %d", msg.ChatID)
	}
	if msg.Text != startText {
		t.Errorf("Unexpected reply text: %q", msg.Text)
	}

	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("Expected inline keyboard markup, got %T", msg.ReplyMarkup)
	}
	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 1 {
		t.Fatalf("Expected a single button, got %v", markup.InlineKeyboard)
	}
	button := markup.InlineKeyboard[0][0]
	if button.Text != buttonText {
		t.Errorf("Unexpected button text: %q", button.Text)
	}
	if button.URL == nil || *button.URL != "https://mood.example.com" {
		t.Errorf("Unexpected button URL: %v", button.URL)
	}
}

func TestHandleCommand_Help(t *testing.T) {
	b := New("token", "https://mood.example.com")

	msg := b.handleCommand(commandMessage("help"))
	if msg.Text != helpText {
		t.Errorf("Unexpected reply text: %q", msg.Text)
	}
	if msg.ReplyMarkup != nil {
		t.Errorf("Expected no keyboard on /help, got %v", msg.ReplyMarkup)
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	b := New("token", "https://mood.example.com")

	msg := b.handleCommand(commandMessage("weather"))
	if msg.Text != unknownText {
		t.Errorf("Unexpected reply text: %q", msg.Text)
	}
}

func TestStart_MissingConfig(t *testing.T) {
	if err := New("", "https://mood.example.com").Start(context.Background()); err != ErrMissingToken {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}
	if err := New("token", "").Start(context.Background()); err != ErrMissingWebAppURL {
		t.Errorf("Expected ErrMissingWebAppURL, got %v", err)
	}
}
