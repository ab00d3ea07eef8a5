package telegram

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

// BotClient интерфейс клиента Telegram Bot API
// Абстракция над tgclient.Client для упрощения тестирования
type BotClient interface {
	// GetMe возвращает информацию о боте
	GetMe(ctx context.Context) (*tgclient.User, error)

	// SendMessage отправляет текстовое сообщение
	SendMessage(ctx context.Context, chatID int64, text string, extra tgclient.Params) (*tgclient.Message, error)

	// SendLocation отправляет географическую точку
	SendLocation(ctx context.Context, chatID int64, latitude, longitude float64, extra tgclient.Params) (*tgclient.Message, error)

	// SendPhoto отправляет фотографию
	SendPhoto(ctx context.Context, chatID int64, photo tgclient.PhotoSource, caption string, extra tgclient.Params) (*tgclient.Message, error)

	// SendChatAction отправляет статус активности бота
	SendChatAction(ctx context.Context, chatID int64, action string) (bool, error)

	// EditMessageText изменяет текст ранее отправленного сообщения
	EditMessageText(ctx context.Context, chatID, messageID int64, text string, extra tgclient.Params) (*tgclient.Message, error)
}

// MetricsRecorder интерфейс для записи метрик исходящих вызовов
type MetricsRecorder interface {
	ObserveTelegramRequest(endpoint, outcome string, duration time.Duration)
}
