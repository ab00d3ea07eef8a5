package templates

import "fmt"

const (
	// WelcomeMessageText приветственное сообщение при команде /start
	WelcomeMessageText = `Добро пожаловать!

Этот бот доставляет уведомления сервисов SMC. Чтобы получать сообщения, ничего настраивать не нужно — просто не блокируйте бота.

Открыть приложение можно по кнопке ниже.`

	// WelcomeButtonText текст кнопки в приветственном сообщении
	WelcomeButtonText = "Открыть приложение"

	// WelcomeButtonBaseURL базовый URL кнопки в приветственном сообщении (без query параметров)
	WelcomeButtonBaseURL = "https://faberon24.vercel.app/index.html"
)

// GetWelcomeButtonURL возвращает URL кнопки с подставленным tgUserId
func GetWelcomeButtonURL(tgUserID int64) string {
	return fmt.Sprintf("%s?X-UserID=%d", WelcomeButtonBaseURL, tgUserID)
}
