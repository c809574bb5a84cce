package bot

import (
	"context"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"servismotor-bot/internal/bot/state_manager"
	"servismotor-bot/internal/pricing"
	"servismotor-bot/internal/storage"
)

func (b *Bot) handleExport(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	report := storage.NewQuoteReport(chatID, d.Session, b.now())

	path, err := storage.ExportQuoteToExcel(b.reportsDir, report)
	if err != nil {
		b.logger.Error("Failed to export quote",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Gagal membuat file Excel, silakan coba lagi")
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			b.logger.Warn("Failed to remove report file",
				zap.String("path", path),
				zap.Error(err))
		}
	}()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = "📄 Estimasi biaya servis\nTotal: " + pricing.FormatCurrency(report.Breakdown.TotalCost)
	b.sendMessage(doc)

	b.logger.Info("Quote exported",
		zap.Int64("chat_id", chatID),
		zap.String("path", path))
}
