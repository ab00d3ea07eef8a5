package edit_message

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/send_message/models"
	telegramSvc "github.com/m04kA/SMC-TelegramGateway/internal/service/telegram"
)

const (
	msgInvalidRequestBody = "неверный формат тела запроса"
	msgInvalidChatID      = "необходимо указать chat_id"
	msgInvalidMessageID   = "некорректный message_id"
	msgEmptyText          = "необходимо указать text"
	msgTelegramFailed     = "не удалось изменить сообщение через Telegram"
)

// EditMessageRequest запрос на редактирование текста сообщения
type EditMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type Handler struct {
	service TelegramService
	logger  Logger
}

func NewHandler(service TelegramService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	messageID, err := strconv.ParseInt(mux.Vars(r)["message_id"], 10, 64)
	if err != nil || messageID == 0 {
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	// Парсинг request body
	var req EditMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Валидация обязательных полей
	if req.ChatID == 0 {
		handlers.RespondBadRequest(w, msgInvalidChatID)
		return
	}
	if req.Text == "" {
		handlers.RespondBadRequest(w, msgEmptyText)
		return
	}

	sent, err := h.service.EditMessageText(r.Context(), req.ChatID, messageID, req.Text, req.ParseMode)
	if err != nil {
		switch {
		case errors.Is(err, telegramSvc.ErrInvalidChatID):
			handlers.RespondBadRequest(w, msgInvalidChatID)
		case errors.Is(err, telegramSvc.ErrEmptyMessage):
			handlers.RespondBadRequest(w, msgEmptyText)
		default:
			h.logger.Error("Failed to edit message %d in chat %d: %v", messageID, req.ChatID, err)
			handlers.RespondBadGateway(w, msgTelegramFailed)
		}
		return
	}

	h.logger.Info("Edited message %d in chat %d", messageID, req.ChatID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSent(sent))
}
