package tgclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Params набор параметров запроса к Telegram Bot API
// Ключи уникальны, порядок не важен. Скалярные значения (числа, строки, bool)
// передаются как есть; любое другое значение (срезы, map, структуры — например,
// inline-клавиатуры) сериализуется в JSON строку перед отправкой
type Params map[string]interface{}

// Merge вставляет значения по умолчанию для отсутствующих ключей
// Значения, переданные вызывающей стороной, всегда имеют приоритет
func (p Params) Merge(defaults Params) Params {
	merged := make(Params, len(p)+len(defaults))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range defaults {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return merged
}

// Encode преобразует параметры в url.Values
// Возвращает ошибку, если structured значение не сериализуется в JSON
func (p Params) Encode() (url.Values, error) {
	values := make(url.Values, len(p))
	for key, value := range p {
		s, err := normalizeValue(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
		values.Set(key, s)
	}
	return values, nil
}

// normalizeValue приводит значение параметра к строковому представлению
// Скаляры форматируются напрямую, всё остальное — через JSON
func normalizeValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to JSON-encode structured value: %v", err)
		}
		return string(encoded), nil
	}
}
