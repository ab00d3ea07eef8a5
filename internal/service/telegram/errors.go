package telegram

import "errors"

var (
	// ErrInvalidChatID возвращается при некорректном chat_id
	ErrInvalidChatID = errors.New("service.telegram: invalid chat_id")

	// ErrEmptyMessage возвращается при пустом содержимом сообщения
	ErrEmptyMessage = errors.New("service.telegram: message content is empty")

	// ErrSendMessage возвращается при ошибке отправки текстового сообщения
	ErrSendMessage = errors.New("service.telegram: failed to send message")

	// ErrSendPhoto возвращается при ошибке отправки фото
	ErrSendPhoto = errors.New("service.telegram: failed to send photo")

	// ErrSendLocation возвращается при ошибке отправки геоточки
	ErrSendLocation = errors.New("service.telegram: failed to send location")

	// ErrSendChatAction возвращается при ошибке отправки статуса чата
	ErrSendChatAction = errors.New("service.telegram: failed to send chat action")

	// ErrEditMessage возвращается при ошибке редактирования сообщения
	ErrEditMessage = errors.New("service.telegram: failed to edit message")

	// ErrBotInfo возвращается при ошибке получения информации о боте
	ErrBotInfo = errors.New("service.telegram: failed to get bot info")
)
