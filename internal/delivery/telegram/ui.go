package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

// buildCategoryKeyboard builds the category picker, two categories per row.
func buildCategoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	categories := entities.Categories()

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			categoryIcon(c)+" "+string(c),
			buildCategoryCallback(c),
		))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildRoundKeyboard builds the in-round keyboard: one button per option
// plus the hint and give-up controls.
func buildRoundKeyboard(options []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options)+1)
	for i, opt := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt, buildAnswerCallback(i)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("💡 Hint", buildClueCallback()),
		tgbotapi.NewInlineKeyboardButtonData("🏳️ Give up", buildGiveUpCallback()),
	))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildResultKeyboard builds the keyboard shown after a round is resolved.
func buildResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New round", buildNextRoundCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Change category", buildMenuCallback()),
		),
	)
}
