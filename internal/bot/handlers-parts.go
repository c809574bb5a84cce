package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"servismotor-bot/internal/bot/state_manager"
)

// SPARE PARTS

func (b *Bot) beginAddPart(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	d.Step = StepAddPartName
	d.PendingPartName = ""
	if !b.saveDialog(ctx, chatID, d) {
		return
	}
	b.sendText(chatID, "Masukkan nama sparepart:", cancelKeyboard())
}

func (b *Bot) handlePartName(ctx context.Context, chatID int64, d *state_manager.Dialog, text string) {
	name := strings.TrimSpace(text)
	if name == "" {
		b.sendError(chatID, "Nama sparepart tidak boleh kosong.")
		return
	}

	d.Step = StepAddPartPrice
	d.PendingPartName = name
	if !b.saveDialog(ctx, chatID, d) {
		return
	}
	b.sendText(chatID,
		fmt.Sprintf("Masukkan harga %s (angka saja, contoh: 45000):", name),
		cancelKeyboard())
}

func (b *Bot) handlePartPrice(ctx context.Context, chatID int64, d *state_manager.Dialog, text string) {
	part, err := d.Session.AddPart(d.PendingPartName, text)
	if err != nil {
		b.logger.Debug("Rejected part price",
			zap.Int64("chat_id", chatID),
			zap.String("input", text),
			zap.Error(err))
		b.sendError(chatID, validationMessage(err))
		return
	}

	d.Step = StepIdle
	d.PendingPartName = ""
	if !b.saveDialog(ctx, chatID, d) {
		return
	}

	b.logger.Info("Part added",
		zap.Int64("chat_id", chatID),
		zap.Int64("part_id", part.ID))
	b.sendText(chatID,
		fmt.Sprintf("✅ Ditambahkan: %s\n\n%s", FormatPartLine(part), FormatQuote(d.Session)),
		mainMenuKeyboard())
}

// handleAddCommand adds a part in one step: /add <name> <price>.
func (b *Bot) handleAddCommand(ctx context.Context, chatID int64, d *state_manager.Dialog, args string) {
	if strings.TrimSpace(args) == "" {
		b.beginAddPart(ctx, chatID, d)
		return
	}

	name, price, ok := parseAddPartArgs(args)
	if !ok {
		b.sendError(chatID, "Format: /add <nama> <harga>, contoh: /add Kampas Rem 45000")
		return
	}

	part, err := d.Session.AddPart(name, price)
	if err != nil {
		b.sendError(chatID, validationMessage(err))
		return
	}

	d.Step = StepIdle
	d.PendingPartName = ""
	if !b.saveDialog(ctx, chatID, d) {
		return
	}

	b.logger.Info("Part added",
		zap.Int64("chat_id", chatID),
		zap.Int64("part_id", part.ID))
	b.sendText(chatID,
		fmt.Sprintf("✅ Ditambahkan: %s\n\n%s", FormatPartLine(part), FormatQuote(d.Session)),
		mainMenuKeyboard())
}

func (b *Bot) handleRemoveCommand(ctx context.Context, chatID int64, d *state_manager.Dialog, args string) {
	id, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		b.sendError(chatID, "Format: /remove <no>, lihat nomor di /parts")
		return
	}

	if !d.Session.RemovePart(id) {
		b.sendError(chatID, fmt.Sprintf("Sparepart #%d tidak ditemukan.", id))
		return
	}
	if !b.savePartRemoval(ctx, chatID, d, id) {
		return
	}
	b.sendText(chatID, "🗑 Sparepart dihapus.\n\n"+FormatQuote(d.Session), mainMenuKeyboard())
}

func (b *Bot) handleRemovePartCallback(ctx context.Context, chatID int64, d *state_manager.Dialog, callbackID, value string) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		b.answerCallback(callbackID, "Pilihan tidak dikenal")
		return
	}

	// a stale button for a part that is already gone is a no-op
	if !d.Session.RemovePart(id) {
		b.answerCallback(callbackID, "Sparepart sudah dihapus")
		return
	}
	if !b.savePartRemoval(ctx, chatID, d, id) {
		b.answerCallback(callbackID, "")
		return
	}

	b.answerCallback(callbackID, "Sparepart dihapus")
	b.showParts(ctx, chatID, d)
}

func (b *Bot) savePartRemoval(ctx context.Context, chatID int64, d *state_manager.Dialog, id int64) bool {
	if !b.saveDialog(ctx, chatID, d) {
		return false
	}

	b.logger.Info("Part removed",
		zap.Int64("chat_id", chatID),
		zap.Int64("part_id", id))
	return true
}

func (b *Bot) showParts(ctx context.Context, chatID int64, d *state_manager.Dialog) {
	parts := d.Session.Parts()
	text := FormatPartsList(parts)
	if len(parts) == 0 {
		b.sendText(chatID, text, mainMenuKeyboard())
		return
	}
	hint := "\n\nTekan tombol untuk menghapus sparepart."
	if len(parts) > maxListedParts {
		hint += " Sparepart lain dapat dihapus dengan /remove <no>."
	}
	b.sendText(chatID, text+hint, partsKeyboard(parts))
}
