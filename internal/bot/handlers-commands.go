package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"servismotor-bot/internal/bot/state_manager"
	"servismotor-bot/internal/estimator"
)

const helpText = `Perintah yang tersedia:
/start - Mulai dan tampilkan ringkasan
/service - Pilih jenis servis
/difficulty - Pilih tingkat kesulitan pemasangan
/add <nama> <harga> - Tambah sparepart, contoh: /add Kampas Rem 45000
/remove <no> - Hapus sparepart berdasarkan nomor
/parts - Daftar sparepart
/total - Rincian biaya
/export - Unduh rincian biaya (Excel)
/reset - Mulai estimasi baru
/cancel - Batalkan input sparepart`

func (b *Bot) handleCommand(ctx context.Context, chatID int64, d *state_manager.Dialog, command, args string) {
	switch command {
	case "add":
		b.handleAddCommand(ctx, chatID, d, args)
		return
	case "cancel":
		b.handleCancel(ctx, chatID, d)
		return
	case "reset":
		b.handleReset(ctx, chatID)
		return
	}

	if !b.leaveDialog(ctx, chatID, d) {
		return
	}

	switch command {
	case "start":
		b.handleStart(ctx, chatID, d)
	case "help":
		b.handleHelp(ctx, chatID)
	case "service":
		b.showServiceMenu(ctx, chatID, d)
	case "difficulty":
		b.showDifficultyMenu(ctx, chatID, d)
	case "remove":
		b.handleRemoveCommand(ctx, chatID, d, args)
	case "parts":
		b.showParts(ctx, chatID, d)
	case "total":
		b.showTotal(ctx, chatID, d)
	case "export":
		b.handleExport(ctx, chatID, d)
	default:
		b.handleUnknownCommand(ctx, chatID)
	}
}

func (b *Bot) handleMenuButton(ctx context.Context, chatID int64, d *state_manager.Dialog, text string) bool {
	switch text {
	case ButtonAddPart:
		b.beginAddPart(ctx, chatID, d)
		return true
	case ButtonCancel:
		b.handleCancel(ctx, chatID, d)
		return true
	case ButtonService, ButtonDifficulty, ButtonParts, ButtonTotal:
	default:
		return false
	}

	if !b.leaveDialog(ctx, chatID, d) {
		return true
	}

	switch text {
	case ButtonService:
		b.showServiceMenu(ctx, chatID, d)
	case ButtonDifficulty:
		b.showDifficultyMenu(ctx, chatID, d)
	case ButtonParts:
		b.showParts(ctx, chatID, d)
	case ButtonTotal:
		b.showTotal(ctx, chatID, d)
	}
	return true
}

// leaveDialog drops a half-finished add-part dialog when the user moves on to
// something else.
func (b *Bot) leaveDialog(ctx context.Context, chatID int64, d *state_manager.Dialog) bool {
	if d.Step == StepIdle {
		return true
	}
	d.Step = StepIdle
	d.PendingPartName = ""
	return b.saveDialog(ctx, chatID, d)
}

func (b *Bot) handleStart(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	text := "Halo! 👋\n\n" +
		"Kalkulator Servis Motor membantu menghitung estimasi biaya servis dan sparepart motor Anda.\n\n" +
		FormatQuote(d.Session) + "\n\n" +
		"Gunakan tombol di bawah atau /help untuk daftar perintah."

	b.sendText(chatID, text, mainMenuKeyboard())
}

func (b *Bot) handleHelp(ctx context.Context, chatID int64) {
	b.sendText(chatID, helpText, mainMenuKeyboard())
}

func (b *Bot) handleCancel(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	if d.Step == StepIdle {
		b.sendText(chatID, "Tidak ada input yang sedang berjalan.", mainMenuKeyboard())
		return
	}
	if !b.leaveDialog(ctx, chatID, d) {
		return
	}
	b.sendText(chatID, "Input sparepart dibatalkan.", mainMenuKeyboard())
}

func (b *Bot) handleReset(ctx context.Context, chatID int64) {
	if err := b.sessions.Reset(ctx, chatID); err != nil {
		b.logger.Error("Failed to reset session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Sesi tidak dapat direset, silakan coba lagi")
		return
	}

	b.logger.Info("Session reset", zap.Int64("chat_id", chatID))
	fresh := estimator.New(b.catalog)
	b.sendText(chatID, "🔄 Estimasi baru dimulai.\n\n"+FormatQuote(fresh), mainMenuKeyboard())
}

func (b *Bot) showTotal(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	b.sendText(chatID, FormatQuote(d.Session), mainMenuKeyboard())
}

func (b *Bot) handleDefault(ctx context.Context, chatID int64) {
	b.sendError(chatID, "Saya tidak mengerti pesan ini. Silakan gunakan menu atau /help.")
}

func (b *Bot) handleUnknownCommand(ctx context.Context, chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "❌ Perintah tidak dikenal. Gunakan /help untuk daftar perintah.")
	b.sendMessage(msg)
}
