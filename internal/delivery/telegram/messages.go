// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
	"github.com/aidarbek/three-clues-bot/internal/service"
)

const (
	msgWelcome = "<b>Three Clues: Animal ID Game</b>\n\n" +
		"Guess the species from up to three clues. Fewer clues, more points:\n" +
		"1 clue — 3 points, 2 clues — 2 points, 3 clues — 1 point.\n\n" +
		"Pick a category to start:"
	msgHelp = "<b>How to play</b>\n" +
		"• Pick a category and read Clue 1\n" +
		"• Choose the species or press 💡 Hint for another clue\n" +
		"• Max 3 clues before you must guess or give up\n" +
		"• The answer (and a picture) is revealed at the end\n\n" +
		"/play — pick a category\n" +
		"/score — show score and streak"
	msgPickCategory   = "Pick a category:"
	msgUnknownCommand = "Unknown command. Try /play to start a round, /score for your score, or /help."
	msgNoActiveRound  = "No round in progress. Pick a category to start."
	msgRoundOver      = "That round is already over. Start a new round to keep playing."
	msgNoMoreClues    = "No more clues available. Make a guess or give up."
	msgInternalError  = "Something went wrong. Please try again."
)

var categoryIcons = map[entities.Category]string{
	entities.CategoryDogs:      "🐶",
	entities.CategoryCats:      "🐱",
	entities.CategoryHorses:    "🐴",
	entities.CategoryDinosaurs: "🦖",
}

func categoryIcon(c entities.Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "🧭"
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// hudText renders the session heads-up line: category, score, streak.
func hudText(session *entities.Session) string {
	category := "—"
	icon := "🧭"
	if session.Category != "" {
		category = string(session.Category)
		icon = categoryIcon(session.Category)
	}
	return fmt.Sprintf("%s <b>%s</b>   ⭐ Score: <b>%d</b>   🔥 Streak: <b>%d</b>",
		icon, html.EscapeString(category), session.Score.Points, session.Score.Streak)
}

// clueText renders one clue line.
func clueText(view *service.RoundView) string {
	return fmt.Sprintf("<b>Clue %d:</b> %s", view.ClueIndex, html.EscapeString(view.Clue))
}

// roundStartText renders the message that opens a round.
func roundStartText(session *entities.Session, view *service.RoundView) string {
	return hudText(session) + "\n\nHere's your first clue:\n\n" + clueText(view)
}

// resolutionText renders the round outcome with the recap of all clues.
func resolutionText(res *service.Resolution) string {
	var sb strings.Builder

	switch {
	case res.Correct:
		sb.WriteString(fmt.Sprintf("✅ Correct! <b>%s</b>\n", html.EscapeString(res.Answer)))
		sb.WriteString(fmt.Sprintf("Points: <b>+%d</b> (you used %d clue(s))\n", res.PointsDelta, res.CluesUsed))
	case res.GaveUp:
		sb.WriteString(fmt.Sprintf("All good — the answer was <b>%s</b>.\n", html.EscapeString(res.Answer)))
	default:
		sb.WriteString(fmt.Sprintf("❌ Not quite. The answer was <b>%s</b>.\n", html.EscapeString(res.Answer)))
	}

	sb.WriteString(fmt.Sprintf("\n⭐ Score: <b>%d</b>   🔥 Streak: <b>%d</b>\n", res.Score, res.Streak))

	sb.WriteString("\n<b>All clues</b>\n")
	for i, clue := range res.AllClues {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, html.EscapeString(clue)))
	}

	return sb.String()
}
