package start_message

import "context"

// TelegramService интерфейс для работы с Telegram Bot API
type TelegramService interface {
	SendWelcomeMessage(ctx context.Context, chatID int64, tgUserID *int64) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}
