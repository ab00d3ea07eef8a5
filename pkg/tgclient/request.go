package tgclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// apiRequest дескриптор подготовленного запроса к Telegram Bot API
// Создаётся builder-ом один раз, выполняется ровно один раз и отбрасывается
type apiRequest struct {
	method      string
	url         string
	body        []byte
	contentType string
	headers     map[string]string
}

// requestBody тело POST запроса: сырые данные + content type
type requestBody struct {
	data        []byte
	contentType string
}

// buildRequest собирает дескриптор запроса
// Валидация выполняется до любого сетевого вызова:
// - endpoint не пустой
// - метод строго GET или POST
// - тело допустимо только для POST
// Непустой набор параметров кодируется в query string и добавляется к URL
// для любого метода, включая POST с отдельным телом
func (c *Client) buildRequest(endpoint, method string, params Params, body *requestBody) (*apiRequest, error) {
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMethod, method)
	}
	if body != nil && method != http.MethodPost {
		return nil, fmt.Errorf("%w: method %s", ErrBodyNotAllowed, method)
	}

	fullURL := c.methodURL(endpoint)

	if len(params) > 0 {
		values, err := params.Encode()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		fullURL = fullURL + "?" + values.Encode()
	}

	req := &apiRequest{
		method: method,
		url:    fullURL,
	}

	if body != nil {
		req.body = body.data
		req.contentType = body.contentType
	}

	return req, nil
}

// newMultipartBody формирует multipart тело с одним файловым вложением
// Файл читается целиком на этапе сборки запроса; отсутствие файла —
// локальная ошибка валидации, сеть не затрагивается
func newMultipartBody(fieldName string, path FilePath) (*requestBody, error) {
	f, err := os.Open(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrPhotoNotFound, path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filepath.Base(string(path)))
	if err != nil {
		return nil, fmt.Errorf("tgclient: create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("tgclient: read photo file %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("tgclient: finalize multipart body: %w", err)
	}

	return &requestBody{
		data:        buf.Bytes(),
		contentType: writer.FormDataContentType(),
	}, nil
}
