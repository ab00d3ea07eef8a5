package edit_message

import (
	"context"

	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
)

// TelegramService интерфейс сервиса редактирования сообщений
type TelegramService interface {
	EditMessageText(ctx context.Context, chatID, messageID int64, text, parseMode string) (*domain.SentMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
