package tgclient

import "encoding/json"

// apiResponse конверт ответа Telegram Bot API
// Наружу отдаётся только поле result; description и error_code используются
// для логирования при ok=false
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}

// User представляет пользователя или бота Telegram
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	UserName  string `json:"username,omitempty"`
}

// Chat представляет чат Telegram
type Chat struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title,omitempty"`
	UserName string `json:"username,omitempty"`
}

// Location географическая точка
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PhotoSize один из размеров фотографии
type PhotoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Message представляет сообщение Telegram
type Message struct {
	MessageID int64       `json:"message_id"`
	From      *User       `json:"from,omitempty"`
	Chat      Chat        `json:"chat"`
	Date      int64       `json:"date"`
	Text      string      `json:"text,omitempty"`
	Caption   string      `json:"caption,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
	Location  *Location   `json:"location,omitempty"`
}

// Update входящее обновление от Telegram (long polling)
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// InlineKeyboardButton кнопка inline-клавиатуры
type InlineKeyboardButton struct {
	Text   string `json:"text"`
	URL    string `json:"url,omitempty"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

// WebAppInfo описание web app, открываемого по кнопке
type WebAppInfo struct {
	URL string `json:"url"`
}

// InlineKeyboardMarkup inline-клавиатура сообщения
// Передаётся как structured параметр reply_markup и сериализуется в JSON строку
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}
