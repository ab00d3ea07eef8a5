package tgclient

import "errors"

var (
	// ErrEmptyEndpoint возвращается, когда не указан endpoint метода API
	ErrEmptyEndpoint = errors.New("tgclient: endpoint must not be empty")

	// ErrInvalidMethod возвращается при HTTP методе, отличном от GET/POST
	ErrInvalidMethod = errors.New("tgclient: method must be GET or POST")

	// ErrBodyNotAllowed возвращается, если тело запроса передано не в POST
	ErrBodyNotAllowed = errors.New("tgclient: request body is only allowed for POST")

	// ErrInvalidParams возвращается, когда значение параметра невозможно сериализовать
	ErrInvalidParams = errors.New("tgclient: invalid request parameters")

	// ErrInvalidCoordinates возвращается при некорректных координатах для sendLocation
	ErrInvalidCoordinates = errors.New("tgclient: latitude and longitude must be finite numbers")

	// ErrEmptyPhoto возвращается, когда не указан источник фото для sendPhoto
	ErrEmptyPhoto = errors.New("tgclient: photo source must not be empty")

	// ErrPhotoNotFound возвращается, когда локальный файл фото не существует
	ErrPhotoNotFound = errors.New("tgclient: local photo file does not exist")

	// ErrRequestFailed возвращается при ошибке транспорта (соединение, таймаут)
	ErrRequestFailed = errors.New("tgclient: request failed")

	// ErrBadStatus возвращается при не-2xx статусе ответа
	ErrBadStatus = errors.New("tgclient: unexpected HTTP status")

	// ErrAPIError возвращается, когда Telegram вернул ok=false
	ErrAPIError = errors.New("tgclient: telegram API error")

	// ErrInvalidResponse возвращается при некорректном JSON в ответе API
	ErrInvalidResponse = errors.New("tgclient: invalid response")
)
