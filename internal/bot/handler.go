package bot

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"servismotor-bot/internal/bot/state_manager"
	"servismotor-bot/internal/estimator"
)

// SERVICE AND DIFFICULTY SELECTION

func (b *Bot) showServiceMenu(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	b.sendText(chatID, "🛠 Pilih jenis servis:",
		serviceKeyboard(b.catalog.Services(), d.Session.Service().ID))
}

func (b *Bot) showDifficultyMenu(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	b.sendText(chatID, "⚙️ Pilih tingkat kesulitan pemasangan:",
		difficultyKeyboard(b.catalog.DifficultyLevels(), d.Session.Difficulty().ID))
}

func (b *Bot) handleServiceSelected(ctx context.Context, chatID int64, d *state_manager.Dialog, callbackID, serviceID string) {
	if err := d.Session.SelectService(serviceID); err != nil {
		b.rejectSelection(chatID, callbackID, err)
		return
	}
	if !b.saveDialog(ctx, chatID, d) {
		b.answerCallback(callbackID, "")
		return
	}

	svc := d.Session.Service()
	b.logger.Info("Service selected",
		zap.Int64("chat_id", chatID),
		zap.String("service_id", svc.ID))
	b.answerCallback(callbackID, svc.Name)
	b.sendText(chatID,
		fmt.Sprintf("✅ Jenis servis: %s\n\n%s", FormatServiceOption(svc), FormatQuote(d.Session)),
		nil)
}

func (b *Bot) handleDifficultySelected(ctx context.Context, chatID int64, d *state_manager.Dialog, callbackID, difficultyID string) {
	if err := d.Session.SelectDifficulty(difficultyID); err != nil {
		b.rejectSelection(chatID, callbackID, err)
		return
	}
	if !b.saveDialog(ctx, chatID, d) {
		b.answerCallback(callbackID, "")
		return
	}

	level := d.Session.Difficulty()
	b.logger.Info("Difficulty selected",
		zap.Int64("chat_id", chatID),
		zap.String("difficulty_id", level.ID))
	b.answerCallback(callbackID, level.Name)
	b.sendText(chatID,
		fmt.Sprintf("✅ Tingkat kesulitan: %s\n\n%s", FormatDifficultyOption(level), FormatQuote(d.Session)),
		nil)
}

// rejectSelection keeps the previous selection; the catalog may have changed
// since the keyboard was sent.
func (b *Bot) rejectSelection(chatID int64, callbackID string, err error) {
	b.logger.Warn("Rejected selection",
		zap.Int64("chat_id", chatID),
		zap.Error(err))

	text := "Pilihan tidak tersedia"
	if !errors.Is(err, estimator.ErrUnknownSelection) {
		text = "Pilihan tidak dapat diproses"
	}
	b.answerCallback(callbackID, text)
}
