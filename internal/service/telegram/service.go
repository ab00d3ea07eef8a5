package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TelegramGateway/internal/domain"
	"github.com/m04kA/SMC-TelegramGateway/internal/service/telegram/templates"
	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

// Service сервис для отправки сообщений через Telegram Bot API
type Service struct {
	client  BotClient
	metrics MetricsRecorder // Опционально, может быть nil
}

// NewService создает новый экземпляр Telegram сервиса
func NewService(client BotClient, metrics MetricsRecorder) *Service {
	return &Service{
		client:  client,
		metrics: metrics,
	}
}

// Send отправляет исходящее сообщение
// Автоматически определяет тип отправки (геоточка, фото, текст)
func (s *Service) Send(ctx context.Context, msg *domain.OutboundMessage) (*domain.SentMessage, error) {
	if msg.ChatID == 0 {
		return nil, ErrInvalidChatID
	}

	// Геоточка
	if msg.HasLocation() {
		return s.sendLocation(ctx, msg)
	}

	// Фото с caption
	if msg.HasPhoto() {
		return s.sendPhoto(ctx, msg)
	}

	// Текстовое сообщение с кнопками
	if msg.Text == "" {
		return nil, ErrEmptyMessage
	}
	return s.sendTextMessage(ctx, msg)
}

// sendTextMessage отправляет текстовое сообщение
func (s *Service) sendTextMessage(ctx context.Context, msg *domain.OutboundMessage) (*domain.SentMessage, error) {
	sent, err := s.observe("sendMessage", func() (*tgclient.Message, error) {
		return s.client.SendMessage(ctx, msg.ChatID, msg.Text, s.extraParams(msg))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendMessage, err)
	}

	return sentMessage(sent), nil
}

// sendPhoto отправляет фото с caption и кнопками
func (s *Service) sendPhoto(ctx context.Context, msg *domain.OutboundMessage) (*domain.SentMessage, error) {
	// Удалённая ссылка уходит строковым параметром,
	// локальный путь — multipart вложением
	var source tgclient.PhotoSource
	if msg.PhotoURL != "" {
		source = tgclient.FileURL(msg.PhotoURL)
	} else {
		source = tgclient.FilePath(msg.PhotoPath)
	}

	sent, err := s.observe("sendPhoto", func() (*tgclient.Message, error) {
		return s.client.SendPhoto(ctx, msg.ChatID, source, msg.Text, s.extraParams(msg))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendPhoto, err)
	}

	return sentMessage(sent), nil
}

// sendLocation отправляет географическую точку
func (s *Service) sendLocation(ctx context.Context, msg *domain.OutboundMessage) (*domain.SentMessage, error) {
	sent, err := s.observe("sendLocation", func() (*tgclient.Message, error) {
		return s.client.SendLocation(ctx, msg.ChatID, msg.Location.Latitude, msg.Location.Longitude, s.extraParams(msg))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendLocation, err)
	}

	return sentMessage(sent), nil
}

// SendChatAction отправляет статус активности бота (например, "typing")
func (s *Service) SendChatAction(ctx context.Context, chatID int64, action string) error {
	if chatID == 0 {
		return ErrInvalidChatID
	}

	start := time.Now()
	_, err := s.client.SendChatAction(ctx, chatID, action)
	s.record("sendChatAction", err, start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendChatAction, err)
	}

	return nil
}

// EditMessageText изменяет текст ранее отправленного сообщения
func (s *Service) EditMessageText(ctx context.Context, chatID, messageID int64, text, parseMode string) (*domain.SentMessage, error) {
	if chatID == 0 {
		return nil, ErrInvalidChatID
	}
	if text == "" {
		return nil, ErrEmptyMessage
	}

	var extra tgclient.Params
	if parseMode != domain.ParseModePlain {
		extra = tgclient.Params{"parse_mode": parseMode}
	}

	sent, err := s.observe("editMessageText", func() (*tgclient.Message, error) {
		return s.client.EditMessageText(ctx, chatID, messageID, text, extra)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEditMessage, err)
	}

	return sentMessage(sent), nil
}

// BotInfo возвращает информацию о боте
func (s *Service) BotInfo(ctx context.Context) (*tgclient.User, error) {
	start := time.Now()
	user, err := s.client.GetMe(ctx)
	s.record("getMe", err, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBotInfo, err)
	}

	return user, nil
}

// SendWelcomeMessage отправляет приветственное сообщение при команде /start
// tgUserID опционален - если передан nil, используется дефолтный URL без параметра
func (s *Service) SendWelcomeMessage(ctx context.Context, chatID int64, tgUserID *int64) error {
	buttonURL := templates.WelcomeButtonBaseURL
	if tgUserID != nil {
		buttonURL = templates.GetWelcomeButtonURL(*tgUserID)
	}

	msg := &domain.OutboundMessage{
		ChatID:    chatID,
		Text:      templates.WelcomeMessageText,
		ParseMode: domain.ParseModeHTML,
		InlineButtons: []domain.InlineButton{
			{Text: templates.WelcomeButtonText, URL: buttonURL},
		},
	}

	if _, err := s.Send(ctx, msg); err != nil {
		return fmt.Errorf("send welcome message to chat %d: %w", chatID, err)
	}

	return nil
}

// extraParams формирует дополнительные параметры запроса из доменной модели
func (s *Service) extraParams(msg *domain.OutboundMessage) tgclient.Params {
	params := tgclient.Params{}

	if msg.ParseMode != domain.ParseModePlain {
		params["parse_mode"] = msg.ParseMode
	}

	// Inline-клавиатура уходит structured параметром и сериализуется
	// клиентом в JSON строку
	if msg.HasButtons() {
		params["reply_markup"] = buildInlineKeyboard(msg.InlineButtons)
	}

	if len(params) == 0 {
		return nil
	}
	return params
}

// buildInlineKeyboard создает inline-клавиатуру из массива кнопок
// Каждая кнопка на отдельной строке
func buildInlineKeyboard(buttons []domain.InlineButton) tgclient.InlineKeyboardMarkup {
	rows := make([][]tgclient.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, []tgclient.InlineKeyboardButton{
			{Text: btn.Text, URL: btn.URL},
		})
	}

	return tgclient.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// observe выполняет вызов с записью метрик
func (s *Service) observe(endpoint string, call func() (*tgclient.Message, error)) (*tgclient.Message, error) {
	start := time.Now()
	sent, err := call()
	s.record(endpoint, err, start)
	return sent, err
}

// record фиксирует результат вызова в метриках
func (s *Service) record(endpoint string, err error, start time.Time) {
	if s.metrics == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ObserveTelegramRequest(endpoint, outcome, time.Since(start))
}

// sentMessage конвертирует ответ API в доменную модель
func sentMessage(msg *tgclient.Message) *domain.SentMessage {
	if msg == nil {
		return nil
	}
	return &domain.SentMessage{
		MessageID: msg.MessageID,
		ChatID:    msg.Chat.ID,
		SentAt:    time.Unix(msg.Date, 0),
	}
}
