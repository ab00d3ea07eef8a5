package send_photo

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
	msgMissingPhoto       = "необходимо указать photo_url или photo_path"
	msgAmbiguousPhoto     = "photo_url и photo_path взаимоисключающие"
	msgPhotoNotFound      = "локальный файл фото не найден"
	msgScheduleInPast     = "scheduled_for должно быть в будущем"
	msgTelegramFailed     = "не удалось отправить фото через Telegram"
)

// SendPhotoRequest запрос на отправку фото
// Фото задаётся либо удалённой ссылкой, либо путём к локальному файлу
type SendPhotoRequest struct {
	ChatID       int64                 `json:"chat_id"`
	Caption      string                `json:"caption,omitempty"`
	PhotoURL     string                `json:"photo_url,omitempty"`
	PhotoPath    string                `json:"photo_path,omitempty"`
	Buttons      []models.InlineButton `json:"buttons,omitempty"`
	ScheduledFor *time.Time            `json:"scheduled_for,omitempty"`
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
	var req SendPhotoRequest
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
	if req.PhotoURL == "" && req.PhotoPath == "" {
		handlers.RespondBadRequest(w, msgMissingPhoto)
		return
	}
	if req.PhotoURL != "" && req.PhotoPath != "" {
		handlers.RespondBadRequest(w, msgAmbiguousPhoto)
		return
	}

	msg := &domain.OutboundMessage{
		ChatID:       req.ChatID,
		Text:         req.Caption,
		PhotoURL:     req.PhotoURL,
		PhotoPath:    req.PhotoPath,
		ScheduledFor: req.ScheduledFor,
	}
	for _, b := range req.Buttons {
		msg.InlineButtons = append(msg.InlineButtons, domain.InlineButton{Text: b.Text, URL: b.URL})
	}

	// Отложенная отправка уходит в планировщик
	if msg.IsScheduled() {
		scheduled, err := h.scheduler.Schedule(msg)
		if err != nil {
			if errors.Is(err, worker.ErrScheduleInPast) {
				handlers.RespondBadRequest(w, msgScheduleInPast)
				return
			}
			h.logger.Error("Failed to schedule photo for chat %d: %v", msg.ChatID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("Scheduled photo %s for chat %d", scheduled.ID, msg.ChatID)
		handlers.RespondJSON(w, http.StatusAccepted, models.FromDomainScheduled(scheduled))
		return
	}

	// Немедленная отправка
	sent, err := h.service.Send(r.Context(), msg)
	if err != nil {
		switch {
		case errors.Is(err, tgclient.ErrPhotoNotFound):
			handlers.RespondBadRequest(w, msgPhotoNotFound)
		case errors.Is(err, tgclient.ErrEmptyPhoto):
			handlers.RespondBadRequest(w, msgMissingPhoto)
		default:
			h.logger.Error("Failed to send photo to chat %d: %v", msg.ChatID, err)
			handlers.RespondBadGateway(w, msgTelegramFailed)
		}
		return
	}

	h.logger.Info("Sent photo %d to chat %d", sent.MessageID, sent.ChatID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSent(sent))
}
