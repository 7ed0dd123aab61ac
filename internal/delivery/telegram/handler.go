// Package telegram is the presentation adapter: it renders clues,
// options and results into Telegram messages and forwards user actions
// into the game service. No game rules live here.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
	"github.com/aidarbek/three-clues-bot/internal/service"
	"github.com/aidarbek/three-clues-bot/internal/storage"
)

// GameService is the game core the adapter forwards user actions into.
type GameService interface {
	StartRound(session *entities.Session, c entities.Category) (*service.RoundView, error)
	RevealClue(session *entities.Session) (*service.RoundView, error)
	Submit(session *entities.Session, selected string) (*service.Resolution, error)
	GiveUp(session *entities.Session) (*service.Resolution, error)
}

type Handler struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	game     GameService
	sessions *storage.SessionStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	game GameService,
	sessions *storage.SessionStorage,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		game:     game,
		sessions: sessions,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(update)
		}
	}
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		return
	}

	switch update.Message.Command() {
	case "start":
		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildCategoryKeyboard()
		h.send(msg)

	case "play":
		msg := newHTMLMessage(chatID, msgPickCategory)
		msg.ReplyMarkup = buildCategoryKeyboard()
		h.send(msg)

	case "score":
		session := h.sessions.GetOrCreate(chatID)
		h.send(newHTMLMessage(chatID, hudText(session)))

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
