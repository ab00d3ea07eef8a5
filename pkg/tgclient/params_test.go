package tgclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Merge_DefaultsDoNotOverrideCaller(t *testing.T) {
	caller := Params{
		"chat_id": int64(999),
		"extra":   "value",
	}

	merged := caller.Merge(Params{
		"chat_id": int64(1),
		"text":    "hello",
	})

	assert.Equal(t, int64(999), merged["chat_id"], "значение вызывающей стороны должно иметь приоритет")
	assert.Equal(t, "hello", merged["text"])
	assert.Equal(t, "value", merged["extra"])
}

func TestParams_Merge_NilCaller(t *testing.T) {
	var caller Params

	merged := caller.Merge(Params{"text": "hi"})

	assert.Equal(t, Params{"text": "hi"}, merged)
}

func TestParams_Encode_Scalars(t *testing.T) {
	params := Params{
		"int":    42,
		"int64":  int64(-7),
		"float":  45.5,
		"string": "text",
		"bool":   true,
	}

	values, err := params.Encode()
	require.NoError(t, err)

	assert.Equal(t, "42", values.Get("int"))
	assert.Equal(t, "-7", values.Get("int64"))
	assert.Equal(t, "45.5", values.Get("float"))
	assert.Equal(t, "text", values.Get("string"))
	assert.Equal(t, "true", values.Get("bool"))
}

func TestParams_Encode_StructuredValueRoundTrip(t *testing.T) {
	keyboard := InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{{Text: "Open", URL: "https://example.com"}},
		},
	}

	values, err := Params{"reply_markup": keyboard}.Encode()
	require.NoError(t, err)

	encoded := values.Get("reply_markup")
	require.NotEmpty(t, encoded)

	// Structured значение должно быть валидной JSON строкой,
	// восстанавливаемой в исходную структуру
	var decoded InlineKeyboardMarkup
	require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
	assert.Equal(t, keyboard, decoded)
}

func TestParams_Encode_NestedMapRoundTrip(t *testing.T) {
	nested := map[string]interface{}{
		"keyboard": []interface{}{[]interface{}{"a", "b"}},
		"resize":   true,
	}

	values, err := Params{"reply_markup": nested}.Encode()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(values.Get("reply_markup")), &decoded))
	assert.Equal(t, nested, decoded)
}

func TestParams_Encode_UnserializableValue(t *testing.T) {
	_, err := Params{"bad": func() {}}.Encode()
	assert.Error(t, err)
}
