package tgclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultAPIURL базовый URL Telegram Bot API
	DefaultAPIURL = "https://api.telegram.org"

	// DefaultTimeout таймаут HTTP клиента по умолчанию
	// Должен быть больше максимального long polling таймаута (60 секунд)
	DefaultTimeout = 70 * time.Second
)

// Client клиент Telegram Bot API
// Все поля неизменяемы после создания; клиент не хранит состояния между
// вызовами, каждый вызов — один сетевой round trip без повторов
type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
	logger     Logger
}

// Option опция конфигурации клиента
type Option func(*Client)

// WithAPIURL переопределяет базовый URL API (используется в тестах
// и при работе через локальный Bot API сервер)
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// WithHTTPClient переопределяет HTTP клиент
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger задаёт логгер для трассировки запросов и ошибок
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient создает новый экземпляр клиента Telegram Bot API
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:  token,
		apiURL: DefaultAPIURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: nopLogger{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// methodURL формирует полный URL метода API: base + токен + endpoint
func (c *Client) methodURL(endpoint string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.token, endpoint)
}

// call собирает, выполняет и разворачивает один запрос к API
// Возвращает содержимое поля result конверта ответа. Отсутствующий или
// null result при ok=true — не ошибка, возвращается пустой payload
func (c *Client) call(ctx context.Context, endpoint, method string, params Params, body *requestBody) (json.RawMessage, error) {
	req, err := c.buildRequest(endpoint, method, params, body)
	if err != nil {
		c.logger.Error("tgclient: %s: build request failed: %v", endpoint, err)
		return nil, err
	}

	return c.execute(ctx, endpoint, req)
}

// execute выполняет подготовленный дескриптор запроса
// Ответ буферизуется целиком; стриминг не поддерживается
func (c *Client) execute(ctx context.Context, endpoint string, req *apiRequest) (json.RawMessage, error) {
	var bodyReader io.Reader
	if len(req.body) > 0 {
		bodyReader = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, bodyReader)
	if err != nil {
		c.logger.Error("tgclient: %s: failed to create request: %v", endpoint, err)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRequestFailed, err)
	}

	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	c.logger.Info("tgclient: %s %s", req.method, endpoint)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("tgclient: %s: transport error: %v", endpoint, err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("tgclient: %s: failed to read response body: %v", endpoint, err)
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("tgclient: %s: unexpected status %d: %s", endpoint, resp.StatusCode, truncate(raw, 256))
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logger.Error("tgclient: %s: malformed response: %v", endpoint, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if !envelope.OK {
		c.logger.Error("tgclient: %s: API error %d: %s", endpoint, envelope.ErrorCode, envelope.Description)
		return nil, fmt.Errorf("%w: code %d: %s", ErrAPIError, envelope.ErrorCode, envelope.Description)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil, nil
	}

	return envelope.Result, nil
}

// truncate ограничивает длину тела ответа в сообщениях лога
func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
