package telegram

import (
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
	"github.com/aidarbek/three-clues-bot/internal/service"
)

func (h *Handler) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionCategory:
		h.handleCategoryCallback(chatID, data)
	case actionClue:
		h.handleClueCallback(chatID)
	case actionAnswer:
		h.handleAnswerCallback(chatID, data)
	case actionGiveUp:
		h.handleGiveUpCallback(chatID)
	case actionNext:
		h.handleNextRoundCallback(chatID)
	case actionMenu:
		msg := newHTMLMessage(chatID, msgPickCategory)
		msg.ReplyMarkup = buildCategoryKeyboard()
		h.send(msg)
	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

// handleCategoryCallback starts a round in the picked category.
func (h *Handler) handleCategoryCallback(chatID int64, data callbackData) {
	if len(data.Params) != 1 {
		h.logger.Debug("invalid category callback", zap.String("data", data.Raw))
		return
	}

	category, err := entities.ParseCategory(data.Params[0])
	if err != nil {
		h.logger.Warn("category callback with unknown category",
			zap.String("data", data.Raw),
			zap.Error(err),
		)
		return
	}

	h.startRound(chatID, category)
}

func (h *Handler) startRound(chatID int64, category entities.Category) {
	session := h.sessions.GetOrCreate(chatID)

	view, err := h.game.StartRound(session, category)
	if err != nil {
		h.logger.Error("failed to start round",
			zap.Int64("chat_id", chatID),
			zap.String("category", string(category)),
			zap.Error(err),
		)
		h.send(newHTMLMessage(chatID, msgInternalError))
		return
	}

	msg := newHTMLMessage(chatID, roundStartText(session, view))
	msg.ReplyMarkup = buildRoundKeyboard(view.Options)
	h.send(msg)
}

// handleClueCallback reveals the next clue of the active round.
func (h *Handler) handleClueCallback(chatID int64) {
	session := h.sessions.GetOrCreate(chatID)

	view, err := h.game.RevealClue(session)
	if err != nil {
		h.sendActionError(chatID, err)
		return
	}

	msg := newHTMLMessage(chatID, clueText(view))
	msg.ReplyMarkup = buildRoundKeyboard(view.Options)
	h.send(msg)
}

// handleAnswerCallback submits the option at the callback's index.
func (h *Handler) handleAnswerCallback(chatID int64, data callbackData) {
	if len(data.Params) != 1 {
		h.logger.Debug("invalid answer callback", zap.String("data", data.Raw))
		return
	}
	index, err := strconv.Atoi(data.Params[0])
	if err != nil || index < 0 {
		h.logger.Debug("invalid answer index", zap.String("data", data.Raw))
		return
	}

	session := h.sessions.GetOrCreate(chatID)

	round := session.Round
	if round == nil {
		h.send(newHTMLMessage(chatID, msgNoActiveRound))
		return
	}
	if index >= len(round.Options) {
		h.logger.Debug("answer index out of range",
			zap.Int("index", index),
			zap.Int("options", len(round.Options)),
		)
		return
	}

	res, err := h.game.Submit(session, round.Options[index])
	if err != nil {
		h.sendActionError(chatID, err)
		return
	}

	h.sendResolution(chatID, res)
}

// handleGiveUpCallback resolves the active round without an answer.
func (h *Handler) handleGiveUpCallback(chatID int64) {
	session := h.sessions.GetOrCreate(chatID)

	res, err := h.game.GiveUp(session)
	if err != nil {
		h.sendActionError(chatID, err)
		return
	}

	h.sendResolution(chatID, res)
}

// handleNextRoundCallback starts a new round in the session's category,
// falling back to the category picker when none was picked yet.
func (h *Handler) handleNextRoundCallback(chatID int64) {
	session := h.sessions.GetOrCreate(chatID)

	if session.Category == "" {
		msg := newHTMLMessage(chatID, msgPickCategory)
		msg.ReplyMarkup = buildCategoryKeyboard()
		h.send(msg)
		return
	}

	h.startRound(chatID, session.Category)
}

// sendResolution shows the round outcome and, best effort, the target's
// image. A failed image send never blocks the resolution itself.
func (h *Handler) sendResolution(chatID int64, res *service.Resolution) {
	msg := newHTMLMessage(chatID, resolutionText(res))
	msg.ReplyMarkup = buildResultKeyboard()
	h.send(msg)

	if res.Image == "" {
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(res.Image))
	photo.Caption = res.Answer
	if _, err := h.bot.Send(photo); err != nil {
		h.logger.Warn("failed to send round image",
			zap.Int64("chat_id", chatID),
			zap.String("url", res.Image),
			zap.Error(err),
		)
	}
}

// sendActionError maps state machine contract errors onto gentle user
// hints; anything unexpected is logged and answered generically.
func (h *Handler) sendActionError(chatID int64, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveRound):
		h.send(newHTMLMessage(chatID, msgNoActiveRound))
	case errors.Is(err, entities.ErrNoMoreClues):
		h.send(newHTMLMessage(chatID, msgNoMoreClues))
	case errors.Is(err, entities.ErrRoundResolved):
		h.send(newHTMLMessage(chatID, msgRoundOver))
	default:
		h.logger.Error("game action failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.send(newHTMLMessage(chatID, msgInternalError))
	}
}
