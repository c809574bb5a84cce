package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"servismotor-bot/internal/bot/state_manager"
)

// Sender is the part of the Telegram API the handlers talk to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type SessionManager interface {
	Load(ctx context.Context, chatID int64) (*state_manager.Dialog, error)
	Save(ctx context.Context, chatID int64, d *state_manager.Dialog) error
	Reset(ctx context.Context, chatID int64) error
}

var (
	_ Sender         = (*tgbotapi.BotAPI)(nil)
	_ SessionManager = (*state_manager.SessionManager)(nil)
)
