package bot_info

import (
	"net/http"

	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers"
)

const msgTelegramFailed = "не удалось получить информацию о боте"

// BotInfoResponse информация о боте
type BotInfoResponse struct {
	ID        int64  `json:"id"`
	UserName  string `json:"username"`
	FirstName string `json:"first_name"`
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
	user, err := h.service.BotInfo(r.Context())
	if err != nil {
		h.logger.Error("Failed to get bot info: %v", err)
		handlers.RespondBadGateway(w, msgTelegramFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BotInfoResponse{
		ID:        user.ID,
		UserName:  user.UserName,
		FirstName: user.FirstName,
	})
}
