package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"servismotor-bot/internal/bot/state_manager"
	"servismotor-bot/internal/catalog"
)

type stepHandler func(ctx context.Context, chatID int64, d *state_manager.Dialog, text string)

type Bot struct {
	api        *tgbotapi.BotAPI
	sender     Sender
	logger     *zap.Logger
	sessions   SessionManager
	catalog    *catalog.Catalog
	reportsDir string
	now        func() time.Time

	// one update is handled to completion before the next one starts
	mu       sync.Mutex
	handlers map[string]stepHandler
}

func New(
	token string,
	debug bool,
	sessions SessionManager,
	c *catalog.Catalog,
	reportsDir string,
	logger *zap.Logger,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	botAPI.Debug = debug

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	b := newBot(botAPI, sessions, c, reportsDir, logger)
	b.api = botAPI
	return b, nil
}

func newBot(sender Sender, sessions SessionManager, c *catalog.Catalog, reportsDir string, logger *zap.Logger) *Bot {
	b := &Bot{
		sender:     sender,
		logger:     logger,
		sessions:   sessions,
		catalog:    c,
		reportsDir: reportsDir,
		now:        time.Now,
	}
	b.registerHandlers()
	return b
}

func (b *Bot) registerHandlers() {
	b.handlers = map[string]stepHandler{
		StepAddPartName:  b.handlePartName,
		StepAddPartPrice: b.handlePartPrice,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	if b.api == nil {
		return fmt.Errorf("bot API is not initialized")
	}

	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.processUpdate(ctx, update)
		}
	}
}

func (b *Bot) processUpdate(ctx context.Context, update tgbotapi.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case update.Message != nil:
		b.processMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.processCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	d, err := b.sessions.Load(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to load session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Sesi tidak dapat dimuat, silakan coba lagi")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, d, msg.Command(), msg.CommandArguments())
		return
	}

	if b.handleMenuButton(ctx, chatID, d, msg.Text) {
		return
	}

	if handler, exists := b.handlers[d.Step]; exists {
		handler(ctx, chatID, d, msg.Text)
		return
	}

	b.handleDefault(ctx, chatID)
}

func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	b.logger.Debug("Processing callback",
		zap.Int64("chat_id", chatID),
		zap.String("data", callback.Data))

	d, err := b.sessions.Load(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to load session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.answerCallback(callback.ID, "Sesi tidak dapat dimuat")
		return
	}

	kind, value, ok := parseCallbackData(callback.Data)
	if !ok {
		b.answerCallback(callback.ID, "Pilihan tidak dikenal")
		return
	}

	switch kind {
	case CallbackService:
		b.handleServiceSelected(ctx, chatID, d, callback.ID, value)
	case CallbackDifficulty:
		b.handleDifficultySelected(ctx, chatID, d, callback.ID, value)
	case CallbackRemovePart:
		b.handleRemovePartCallback(ctx, chatID, d, callback.ID, value)
	default:
		b.answerCallback(callback.ID, "Pilihan tidak dikenal")
	}
}

// saveDialog persists the chat state and tells the user when that fails.
func (b *Bot) saveDialog(ctx context.Context, chatID int64, d *state_manager.Dialog) bool {
	if err := b.sessions.Save(ctx, chatID, d); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.String("step", d.Step),
			zap.Error(err))
		b.sendError(chatID, "Perubahan tidak dapat disimpan, silakan coba lagi")
		return false
	}
	return true
}

func (b *Bot) sendMessage(msg tgbotapi.Chattable) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message", zap.Error(err))
	}
}

func (b *Bot) sendText(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	b.sendMessage(msg)
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+text))
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.sender.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Warn("Failed to answer callback",
			zap.String("callback_id", callbackID),
			zap.Error(err))
	}
}
