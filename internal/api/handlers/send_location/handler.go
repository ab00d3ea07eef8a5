package send_location

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/send_message/models"
	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
	"github.com/m04kA/SMC-TelegramGateway/internal/worker"
	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

const (
	msgInvalidRequestBody = "неверный формат тела запроса"
	msgInvalidChatID      = "необходимо указать chat_id"
	msgMissingCoordinates = "необходимо указать latitude и longitude"
	msgInvalidCoordinates = "некорректные координаты"
	msgScheduleInPast     = "scheduled_for должно быть в будущем"
	msgTelegramFailed     = "не удалось отправить геоточку через Telegram"
)

// SendLocationRequest запрос на отправку геоточки
type SendLocationRequest struct {
	ChatID       int64      `json:"chat_id"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

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
	var req SendLocationRequest
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
	if req.Latitude == nil || req.Longitude == nil {
		handlers.RespondBadRequest(w, msgMissingCoordinates)
		return
	}

	msg := &domain.OutboundMessage{
		ChatID: req.ChatID,
		Location: &domain.GeoPoint{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		},
		ScheduledFor: req.ScheduledFor,
	}

	// Отложенная отправка уходит в планировщик
	if msg.IsScheduled() {
		scheduled, err := h.scheduler.Schedule(msg)
		if err != nil {
			if errors.Is(err, worker.ErrScheduleInPast) {
				handlers.RespondBadRequest(w, msgScheduleInPast)
				return
			}
			h.logger.Error("Failed to schedule location for chat %d: %v", msg.ChatID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("Scheduled location %s for chat %d", scheduled.ID, msg.ChatID)
		handlers.RespondJSON(w, http.StatusAccepted, models.FromDomainScheduled(scheduled))
		return
	}

	// Немедленная отправка
	sent, err := h.service.Send(r.Context(), msg)
	if err != nil {
		if errors.Is(err, tgclient.ErrInvalidCoordinates) {
			handlers.RespondBadRequest(w, msgInvalidCoordinates)
			return
		}

		h.logger.Error("Failed to send location to chat %d: %v", msg.ChatID, err)
		handlers.RespondBadGateway(w, msgTelegramFailed)
		return
	}

	h.logger.Info("Sent location %d to chat %d", sent.MessageID, sent.ChatID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSent(sent))
}
