package start_message

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TelegramGateway/pkg/ptr"
	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

// UseCase обрабатывает команду /start
type UseCase struct {
	telegramService TelegramService
}

// New создаёт новый use case для обработки /start
func New(telegramService TelegramService) *UseCase {
	return &UseCase{
		telegramService: telegramService,
	}
}

// Execute выполняет обработку команды /start
// Возвращает ошибку с полным контекстом для логирования на уровне выше
func (uc *UseCase) Execute(ctx context.Context, from *tgclient.User, chatID int64) error {
	// Показываем статус "печатает", пока собирается приветствие
	// Ошибка статуса не критична и не прерывает обработку
	_ = uc.telegramService.SendChatAction(ctx, chatID, "")

	// Определяем tgUserID (может быть nil если from == nil)
	var tgUserID *int64
	if from != nil {
		tgUserID = ptr.Ptr(from.ID)
	}

	if err := uc.telegramService.SendWelcomeMessage(ctx, chatID, tgUserID); err != nil {
		return fmt.Errorf("usecase.SendStartMessage: send welcome message to chat %d: %w", chatID, err)
	}

	return nil
}
