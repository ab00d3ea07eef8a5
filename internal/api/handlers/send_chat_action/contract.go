package send_chat_action

import "context"

// TelegramService интерфейс сервиса отправки статусов чата
type TelegramService interface {
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
