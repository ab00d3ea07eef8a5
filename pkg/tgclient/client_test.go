package tgclient

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeAPI поднимает тестовый Bot API сервер и возвращает клиент,
// направленный на него; счётчик фиксирует количество сетевых вызовов
func newFakeAPI(t *testing.T, handler http.HandlerFunc) (*Client, *int64) {
	t.Helper()

	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewClient("test-token", WithAPIURL(srv.URL)), &calls
}

func respondJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestClient_UnwrapsResultAndDropsEnvelope(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getMe", r.URL.Path)
		respondJSON(w, `{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"gateway"}}`)
	})

	user, err := client.GetMe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.ID)
	assert.True(t, user.IsBot)
	assert.Equal(t, "gateway", user.FirstName)
}

func TestClient_TransportErrorDoesNotPanic(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	for name, call := range map[string]func() error{
		"getMe":           func() error { _, err := client.GetMe(context.Background()); return err },
		"sendMessage":     func() error { _, err := client.SendMessage(context.Background(), 1, "hi", nil); return err },
		"sendChatAction":  func() error { _, err := client.SendChatAction(context.Background(), 1, ""); return err },
		"getUpdates":      func() error { _, err := client.GetUpdates(context.Background(), UpdatesOptions{}); return err },
		"editMessageText": func() error { _, err := client.EditMessageText(context.Background(), 1, 2, "hi", nil); return err },
	} {
		err := call()
		assert.ErrorIs(t, err, ErrBadStatus, name)
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	client := NewClient("test-token", WithAPIURL("http://127.0.0.1:1"))

	_, err := client.GetMe(context.Background())

	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_APIErrorEnvelope(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	})

	_, err := client.SendMessage(context.Background(), 1, "hi", nil)

	require.ErrorIs(t, err, ErrAPIError)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestClient_MalformedResponse(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"ok":true,"result":`)
	})

	_, err := client.GetMe(context.Background())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_MissingResultIsNotAnError(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"ok":true}`)
	})

	ok, err := client.SendChatAction(context.Background(), 1, "")
	require.NoError(t, err)
	assert.False(t, ok)

	updates, err := client.GetUpdates(context.Background(), UpdatesOptions{})
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestSendMessage_DefaultsAndCallerPrecedence(t *testing.T) {
	var query map[string][]string
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		respondJSON(w, `{"ok":true,"result":{"message_id":10,"chat":{"id":7,"type":"private"}}}`)
	})

	msg, err := client.SendMessage(context.Background(), 7, "default text", Params{
		"text":       "caller text",
		"parse_mode": "HTML",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), msg.MessageID)
	assert.Equal(t, []string{"7"}, query["chat_id"])
	assert.Equal(t, []string{"caller text"}, query["text"], "параметр вызывающей стороны должен перекрывать дефолт")
	assert.Equal(t, []string{"HTML"}, query["parse_mode"])
}

func TestSendLocation_InvalidCoordinatesSkipNetwork(t *testing.T) {
	client, calls := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"ok":true,"result":{}}`)
	})

	_, err := client.SendLocation(context.Background(), 1, math.NaN(), 12.3, nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = client.SendLocation(context.Background(), 1, 45.5, math.Inf(1), nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	assert.Zero(t, atomic.LoadInt64(calls), "локальная ошибка валидации не должна приводить к сетевому вызову")
}

func TestSendLocation_CoordinatesPassedUnmodified(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "45.5", q.Get("latitude"))
		assert.Equal(t, "12.3", q.Get("longitude"))
		respondJSON(w, `{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"}}}`)
	})

	_, err := client.SendLocation(context.Background(), 1, 45.5, 12.3, nil)

	require.NoError(t, err)
}

func TestSendPhoto_MissingLocalFileSkipsNetwork(t *testing.T) {
	client, calls := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"ok":true,"result":{}}`)
	})

	_, err := client.SendPhoto(context.Background(), 1, FilePath("/nonexistent/photo.jpg"), "caption", nil)

	assert.ErrorIs(t, err, ErrPhotoNotFound)
	assert.Zero(t, atomic.LoadInt64(calls))
}

func TestSendPhoto_EmptySource(t *testing.T) {
	client, calls := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"ok":true,"result":{}}`)
	})

	_, err := client.SendPhoto(context.Background(), 1, FileURL(""), "caption", nil)
	assert.ErrorIs(t, err, ErrEmptyPhoto)

	_, err = client.SendPhoto(context.Background(), 1, nil, "caption", nil)
	assert.ErrorIs(t, err, ErrEmptyPhoto)

	assert.Zero(t, atomic.LoadInt64(calls))
}

func TestSendPhoto_RemoteURLPassedAsPlainParam(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "http://example.com/missing/photo.jpg", q.Get("photo"))
		assert.Equal(t, "nice view", q.Get("caption"))
		// Удалённая ссылка не должна превращаться в multipart вложение
		assert.NotContains(t, r.Header.Get("Content-Type"), "multipart")
		respondJSON(w, `{"ok":true,"result":{"message_id":3,"chat":{"id":1,"type":"private"}}}`)
	})

	// Путь выглядит как несуществующий локальный файл — для FileURL
	// файловая система проверяться не должна
	msg, err := client.SendPhoto(context.Background(), 1, FileURL("http://example.com/missing/photo.jpg"), "nice view", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(3), msg.MessageID)
}

func TestSendPhoto_LocalFileUploadedAsMultipart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o644))

	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "photo.jpg", header.Filename)
		assert.Equal(t, "1", r.URL.Query().Get("chat_id"))
		respondJSON(w, `{"ok":true,"result":{"message_id":4,"chat":{"id":1,"type":"private"}}}`)
	})

	msg, err := client.SendPhoto(context.Background(), 1, FilePath(path), "caption", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(4), msg.MessageID)
}

func TestSendChatAction_DefaultsToTyping(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "typing", r.URL.Query().Get("action"))
		respondJSON(w, `{"ok":true,"result":true}`)
	})

	ok, err := client.SendChatAction(context.Background(), 1, "")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetUpdates_TimeoutParameter(t *testing.T) {
	tests := []struct {
		name        string
		opts        UpdatesOptions
		wantTimeout string
		wantPresent bool
	}{
		{"long poll flag maps to 60", UpdatesOptions{LongPoll: true}, "60", true},
		{"explicit timeout used as-is", UpdatesOptions{Timeout: 30}, "30", true},
		{"explicit timeout wins over flag", UpdatesOptions{Timeout: 30, LongPoll: true}, "30", true},
		{"no long poll omits timeout", UpdatesOptions{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if tt.wantPresent {
					assert.Equal(t, tt.wantTimeout, q.Get("timeout"))
				} else {
					_, present := q["timeout"]
					assert.False(t, present, "параметр timeout должен отсутствовать")
				}
				respondJSON(w, `{"ok":true,"result":[]}`)
			})

			_, err := client.GetUpdates(context.Background(), tt.opts)
			require.NoError(t, err)
		})
	}
}

func TestGetUpdates_OffsetAndLimit(t *testing.T) {
	offset := int64(100500)
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "100500", q.Get("offset"))
		assert.Equal(t, "50", q.Get("limit"))
		respondJSON(w, `{"ok":true,"result":[{"update_id":100500,"message":{"message_id":1,"chat":{"id":9,"type":"private"},"text":"/start"}}]}`)
	})

	updates, err := client.GetUpdates(context.Background(), UpdatesOptions{Offset: &offset, Limit: 50})

	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, int64(100500), updates[0].UpdateID)
	assert.Equal(t, "/start", updates[0].Message.Text)
}

func TestGetUpdates_ZeroValuesOmitted(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		_, hasOffset := q["offset"]
		_, hasLimit := q["limit"]
		assert.False(t, hasOffset)
		assert.False(t, hasLimit)
		respondJSON(w, `{"ok":true,"result":[]}`)
	})

	_, err := client.GetUpdates(context.Background(), UpdatesOptions{Limit: -1})

	require.NoError(t, err)
}

func TestEditMessageText_RequiredParams(t *testing.T) {
	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		q := r.URL.Query()
		assert.Equal(t, "7", q.Get("chat_id"))
		assert.Equal(t, "15", q.Get("message_id"))
		assert.Equal(t, "updated", q.Get("text"))
		respondJSON(w, `{"ok":true,"result":{"message_id":15,"chat":{"id":7,"type":"private"},"text":"updated"}}`)
	})

	msg, err := client.EditMessageText(context.Background(), 7, 15, "updated", nil)

	require.NoError(t, err)
	assert.Equal(t, "updated", msg.Text)
}

func TestClient_InlineKeyboardSentAsJSON(t *testing.T) {
	keyboard := InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{{Text: "Open", URL: "https://example.com"}},
		},
	}

	client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		markup := r.URL.Query().Get("reply_markup")
		assert.True(t, strings.HasPrefix(markup, `{"inline_keyboard":`), "reply_markup должен быть JSON строкой")
		respondJSON(w, `{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"}}}`)
	})

	_, err := client.SendMessage(context.Background(), 1, "hi", Params{"reply_markup": keyboard})

	require.NoError(t, err)
}
