package tgclient

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
)

const (
	// ActionTyping статус "печатает" для sendChatAction (значение по умолчанию)
	ActionTyping = "typing"

	// longPollTimeout таймаут long polling по умолчанию (секунды)
	longPollTimeout = 60
)

// GetMe возвращает информацию о боте
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	raw, err := c.call(ctx, "getMe", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeResult(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SendMessage отправляет текстовое сообщение
// extra позволяет передать дополнительные параметры (parse_mode, reply_markup и т.д.);
// значения из extra имеют приоритет над обязательными chat_id и text
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, extra Params) (*Message, error) {
	params := extra.Merge(Params{
		"chat_id": chatID,
		"text":    text,
	})

	raw, err := c.call(ctx, "sendMessage", http.MethodPost, params, nil)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := decodeResult(raw, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendLocation отправляет географическую точку
// Координаты проверяются локально до сетевого вызова
func (c *Client) SendLocation(ctx context.Context, chatID int64, latitude, longitude float64, extra Params) (*Message, error) {
	if !isFinite(latitude) || !isFinite(longitude) {
		c.logger.Error("tgclient: sendLocation: invalid coordinates (%v, %v)", latitude, longitude)
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinates, latitude, longitude)
	}

	params := extra.Merge(Params{
		"chat_id":   chatID,
		"latitude":  latitude,
		"longitude": longitude,
	})

	raw, err := c.call(ctx, "sendLocation", http.MethodPost, params, nil)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := decodeResult(raw, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendPhoto отправляет фотографию
// FileURL передаётся как строковый параметр photo без обращения к файловой
// системе; FilePath проверяется на существование и уходит multipart вложением
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photo PhotoSource, caption string, extra Params) (*Message, error) {
	params := extra.Merge(Params{
		"chat_id": chatID,
		"caption": caption,
	})

	var body *requestBody

	switch src := photo.(type) {
	case FileURL:
		if src == "" {
			c.logger.Error("tgclient: sendPhoto: empty photo URL")
			return nil, ErrEmptyPhoto
		}
		params["photo"] = string(src)
	case FilePath:
		if src == "" {
			c.logger.Error("tgclient: sendPhoto: empty photo path")
			return nil, ErrEmptyPhoto
		}
		var err error
		body, err = newMultipartBody("photo", src)
		if err != nil {
			c.logger.Error("tgclient: sendPhoto: %v", err)
			return nil, err
		}
	default:
		c.logger.Error("tgclient: sendPhoto: photo source is not set")
		return nil, ErrEmptyPhoto
	}

	raw, err := c.call(ctx, "sendPhoto", http.MethodPost, params, body)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := decodeResult(raw, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendChatAction отправляет статус активности бота (по умолчанию "typing")
func (c *Client) SendChatAction(ctx context.Context, chatID int64, action string) (bool, error) {
	if action == "" {
		action = ActionTyping
	}

	params := Params{
		"chat_id": chatID,
		"action":  action,
	}

	raw, err := c.call(ctx, "sendChatAction", http.MethodPost, params, nil)
	if err != nil {
		return false, err
	}

	var ok bool
	if err := decodeResult(raw, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// UpdatesOptions параметры getUpdates
// Offset включается в запрос только если задан; Limit — только если > 0.
// Таймаут long polling: явный Timeout имеет приоритет, LongPoll=true означает
// 60 секунд, иначе параметр timeout не передаётся вовсе
type UpdatesOptions struct {
	Offset   *int64
	Limit    int
	Timeout  int
	LongPoll bool
}

// GetUpdates опрашивает входящие обновления
func (c *Client) GetUpdates(ctx context.Context, opts UpdatesOptions) ([]Update, error) {
	params := Params{}

	if opts.Offset != nil {
		params["offset"] = *opts.Offset
	}
	if opts.Limit > 0 {
		params["limit"] = opts.Limit
	}
	if opts.Timeout > 0 {
		params["timeout"] = opts.Timeout
	} else if opts.LongPoll {
		params["timeout"] = longPollTimeout
	}

	raw, err := c.call(ctx, "getUpdates", http.MethodGet, params, nil)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := decodeResult(raw, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// EditMessageText изменяет текст ранее отправленного сообщения
func (c *Client) EditMessageText(ctx context.Context, chatID, messageID int64, text string, extra Params) (*Message, error) {
	params := extra.Merge(Params{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	})

	raw, err := c.call(ctx, "editMessageText", http.MethodPost, params, nil)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := decodeResult(raw, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// decodeResult декодирует payload result в типизированную модель
// Пустой payload оставляет out нетронутым (нулевое значение)
func decodeResult(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode result: %v", ErrInvalidResponse, err)
	}
	return nil
}

// isFinite проверяет, что число не NaN и не Inf
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
