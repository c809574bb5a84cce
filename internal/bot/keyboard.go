package bot

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/ledger"
)

// BOT KEYBOARDS

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonService),
			tgbotapi.NewKeyboardButton(ButtonDifficulty),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonAddPart),
			tgbotapi.NewKeyboardButton(ButtonParts),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonTotal),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCancel),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func serviceKeyboard(services []catalog.Service, selectedID string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(services))
	for _, s := range services {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				markSelected(FormatServiceOption(s), s.ID == selectedID),
				callbackData(CallbackService, s.ID),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func difficultyKeyboard(levels []catalog.DifficultyLevel, selectedID string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(levels))
	for _, l := range levels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				markSelected(FormatDifficultyOption(l), l.ID == selectedID),
				callbackData(CallbackDifficulty, l.ID),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func partsKeyboard(parts []ledger.Part) tgbotapi.InlineKeyboardMarkup {
	listed := listedParts(parts)
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(listed))
	for _, p := range listed {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"❌ "+shortPartName(p.Name),
				callbackData(CallbackRemovePart, strconv.FormatInt(p.ID, 10)),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func markSelected(label string, selected bool) string {
	if selected {
		return "✅ " + label
	}
	return label
}
