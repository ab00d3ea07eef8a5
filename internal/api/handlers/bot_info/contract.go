package bot_info

import (
	"context"

	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

// TelegramService интерфейс для получения информации о боте
type TelegramService interface {
	BotInfo(ctx context.Context) (*tgclient.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
