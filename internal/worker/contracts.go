package worker

import (
	"context"

	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

// UpdatesClient интерфейс для опроса входящих обновлений
type UpdatesClient interface {
	// GetUpdates опрашивает входящие обновления (long polling)
	GetUpdates(ctx context.Context, opts tgclient.UpdatesOptions) ([]tgclient.Update, error)
}

// MessageSender интерфейс для отправки исходящих сообщений
type MessageSender interface {
	// Send отправляет сообщение через Telegram
	Send(ctx context.Context, msg *domain.OutboundMessage) (*domain.SentMessage, error)
}

// StartMessageUseCase интерфейс для обработки команды /start
type StartMessageUseCase interface {
	Execute(ctx context.Context, from *tgclient.User, chatID int64) error
}

// SchedulerMetrics интерфейс для метрик планировщика
type SchedulerMetrics interface {
	SetScheduledMessages(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
