package send_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/send_message/models"
	telegramSvc "github.com/m04kA/SMC-TelegramGateway/internal/service/telegram"
	"github.com/m04kA/SMC-TelegramGateway/internal/worker"
)

const (
	msgInvalidRequestBody = "неверный формат тела запроса"
	msgInvalidChatID      = "необходимо указать chat_id"
	msgEmptyText          = "необходимо указать text"
	msgScheduleInPast     = "scheduled_for должно быть в будущем"
	msgTelegramFailed     = "не удалось отправить сообщение через Telegram"
)

type Handler struct {
	service   TelegramService
	scheduler Scheduler
	logger    Logger
}

func NewHandler(service TelegramService, scheduler Scheduler, logger Logger) *Handler {
	return &Handler{
		service:   service,
		scheduler: scheduler,
		logger:    logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Парсинг request body
	var req models.SendMessageRequest
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

	msg := req.ToDomainMessage()

	// Отложенная отправка уходит в планировщик
	if msg.IsScheduled() {
		scheduled, err := h.scheduler.Schedule(msg)
		if err != nil {
			if errors.Is(err, worker.ErrScheduleInPast) {
				handlers.RespondBadRequest(w, msgScheduleInPast)
				return
			}
			h.logger.Error("Failed to schedule message for chat %d: %v", msg.ChatID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("Scheduled message %s for chat %d", scheduled.ID, msg.ChatID)
		handlers.RespondJSON(w, http.StatusAccepted, models.FromDomainScheduled(scheduled))
		return
	}

	// Немедленная отправка
	sent, err := h.service.Send(r.Context(), msg)
	if err != nil {
		switch {
		case errors.Is(err, telegramSvc.ErrInvalidChatID):
			handlers.RespondBadRequest(w, msgInvalidChatID)
		case errors.Is(err, telegramSvc.ErrEmptyMessage):
			handlers.RespondBadRequest(w, msgEmptyText)
		default:
			h.logger.Error("Failed to send message to chat %d: %v", msg.ChatID, err)
			handlers.RespondBadGateway(w, msgTelegramFailed)
		}
		return
	}

	h.logger.Info("Sent message %d to chat %d", sent.MessageID, sent.ChatID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSent(sent))
}
