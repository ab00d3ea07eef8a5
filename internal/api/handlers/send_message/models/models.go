package models

import (
	"time"

	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
)

// InlineButton inline-кнопка сообщения
type InlineButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// SendMessageRequest запрос на отправку текстового сообщения
type SendMessageRequest struct {
	ChatID       int64          `json:"chat_id"`
	Text         string         `json:"text"`
	ParseMode    string         `json:"parse_mode,omitempty"`
	Buttons      []InlineButton `json:"buttons,omitempty"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"` // Опционально: отложенная отправка
}

// ToDomainMessage преобразует запрос в доменную модель
func (r *SendMessageRequest) ToDomainMessage() *domain.OutboundMessage {
	return &domain.OutboundMessage{
		ChatID:        r.ChatID,
		Text:          r.Text,
		ParseMode:     r.ParseMode,
		InlineButtons: toDomainButtons(r.Buttons),
		ScheduledFor:  r.ScheduledFor,
	}
}

// toDomainButtons преобразует кнопки запроса в доменную модель
func toDomainButtons(buttons []InlineButton) []domain.InlineButton {
	if len(buttons) == 0 {
		return nil
	}

	result := make([]domain.InlineButton, len(buttons))
	for i, b := range buttons {
		result[i] = domain.InlineButton{Text: b.Text, URL: b.URL}
	}
	return result
}

// SentMessageResponse ответ об отправленном сообщении
type SentMessageResponse struct {
	MessageID int64     `json:"message_id"`
	ChatID    int64     `json:"chat_id"`
	SentAt    time.Time `json:"sent_at"`
}

// FromDomainSent преобразует доменную модель в ответ API
func FromDomainSent(sent *domain.SentMessage) *SentMessageResponse {
	return &SentMessageResponse{
		MessageID: sent.MessageID,
		ChatID:    sent.ChatID,
		SentAt:    sent.SentAt,
	}
}

// ScheduledMessageResponse ответ об отложенном сообщении
type ScheduledMessageResponse struct {
	ID     string    `json:"id"`
	SendAt time.Time `json:"send_at"`
}

// FromDomainScheduled преобразует доменную модель в ответ API
func FromDomainScheduled(scheduled *domain.ScheduledMessage) *ScheduledMessageResponse {
	return &ScheduledMessageResponse{
		ID:     scheduled.ID,
		SendAt: scheduled.SendAt,
	}
}
