package domain

import "time"

// ParseMode константы для режимов парсинга текста в Telegram
const (
	ParseModeHTML     = "HTML"     // HTML форматирование (рекомендуется для шаблонов)
	ParseModeMarkdown = "Markdown" // Markdown форматирование (legacy)
	ParseModePlain    = ""         // Без форматирования (для пользовательского контента)
)

// GeoPoint географическая точка для sendLocation
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// InlineButton inline-кнопка сообщения
type InlineButton struct {
	Text string
	URL  string
}

// OutboundMessage исходящее сообщение для отправки через Telegram Bot API
// Может быть текстом, фото (по ссылке или из локального файла) или геоточкой
type OutboundMessage struct {
	ChatID        int64          // ID чата получателя
	Text          string         // Текст сообщения или caption фото
	ParseMode     string         // Режим парсинга (HTML, Markdown, Plain)
	InlineButtons []InlineButton // Inline-кнопки
	PhotoURL      string         // Удалённая ссылка на фото
	PhotoPath     string         // Путь к локальному файлу фото
	Location      *GeoPoint      // Геоточка
	ScheduledFor  *time.Time     // Время отложенной отправки
}

// HasPhoto проверяет, содержит ли сообщение фото
func (m *OutboundMessage) HasPhoto() bool {
	return m.PhotoURL != "" || m.PhotoPath != ""
}

// HasLocation проверяет, содержит ли сообщение геоточку
func (m *OutboundMessage) HasLocation() bool {
	return m.Location != nil
}

// HasButtons проверяет, есть ли inline-кнопки
func (m *OutboundMessage) HasButtons() bool {
	return len(m.InlineButtons) > 0
}

// IsScheduled проверяет, является ли сообщение отложенным
func (m *OutboundMessage) IsScheduled() bool {
	return m.ScheduledFor != nil
}

// SentMessage результат успешной отправки
type SentMessage struct {
	MessageID int64
	ChatID    int64
	SentAt    time.Time
}

// ScheduledMessage отложенное сообщение в планировщике
type ScheduledMessage struct {
	ID      string // UUID задачи планировщика
	Message *OutboundMessage
	SendAt  time.Time
}
