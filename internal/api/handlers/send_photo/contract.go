package send_photo

import (
	"context"

	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
)

// TelegramService интерфейс сервиса отправки сообщений
type TelegramService interface {
	Send(ctx context.Context, msg *domain.OutboundMessage) (*domain.SentMessage, error)
}

// Scheduler интерфейс планировщика для отложенных сообщений
type Scheduler interface {
	Schedule(msg *domain.OutboundMessage) (*domain.ScheduledMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
