package send_chat_action

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers"
	telegramSvc "github.com/m04kA/SMC-TelegramGateway/internal/service/telegram"
)

const (
	msgInvalidRequestBody = "неверный формат тела запроса"
	msgInvalidChatID      = "некорректный chat_id"
	msgTelegramFailed     = "не удалось отправить статус через Telegram"
)

// SendChatActionRequest запрос на отправку статуса активности
// Пустой action означает статус "typing"
type SendChatActionRequest struct {
	Action string `json:"action,omitempty"`
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
	chatID, err := strconv.ParseInt(mux.Vars(r)["chat_id"], 10, 64)
	if err != nil || chatID == 0 {
		handlers.RespondBadRequest(w, msgInvalidChatID)
		return
	}

	// Тело опционально: без него отправляется статус "typing"
	var req SendChatActionRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("Failed to decode request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	if err := h.service.SendChatAction(r.Context(), chatID, req.Action); err != nil {
		if errors.Is(err, telegramSvc.ErrInvalidChatID) {
			handlers.RespondBadRequest(w, msgInvalidChatID)
			return
		}

		h.logger.Error("Failed to send chat action to chat %d: %v", chatID, err)
		handlers.RespondBadGateway(w, msgTelegramFailed)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
