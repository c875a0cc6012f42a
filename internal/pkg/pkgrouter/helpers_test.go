package pkgrouter

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCID(t *testing.T) {
	assert.Equal(t, "abc", normalizeCID("  abc  "))
	assert.Empty(t, normalizeCID("\n"))
	assert.Empty(t, normalizeCID("a\r\nb"))
	assert.Len(t, normalizeCID(strings.Repeat("a", 200)), 128)
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "secret")
	headers.Set("X-Api-Key", "key")
	headers.Set("X-Trace", "ok")

	masked := maskHeaders(headers)
	assert.Equal(t, "***", masked.Get("Authorization"))
	assert.Equal(t, "***", masked.Get("X-Api-Key"))
	assert.Equal(t, "ok", masked.Get("X-Trace"))
	assert.Equal(t, "secret", headers.Get("Authorization"), "original headers must stay unchanged")
}

func TestMaskData(t *testing.T) {
	input := map[string]any{
		"password": "secret",
		"profile": map[string]any{
			"access_token": "token",
		},
		"items": []any{
			map[string]any{"refresh_token": "rt"},
		},
	}

	masked, ok := maskData(input).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "***", masked["password"])
	assert.Equal(t, "***", masked["profile"].(map[string]any)["access_token"])
	assert.Equal(t, "***", masked["items"].([]any)[0].(map[string]any)["refresh_token"])
}

func TestDescribeBody(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		parsed, ok := describeBody("application/json", []byte(`{"password":"secret","label":"march"}`), false).(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "***", parsed["password"])
		assert.Equal(t, "march", parsed["label"])
	})

	t.Run("form", func(t *testing.T) {
		parsed, ok := describeBody("application/x-www-form-urlencoded", []byte("password=secret&label=march"), false).(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "***", parsed["password"])
		assert.Equal(t, "march", parsed["label"])
	})

	t.Run("binary", func(t *testing.T) {
		assert.Equal(t, "<binary body omitted>", describeBody("text/plain", []byte{0xff, 0xfe, 0xfd}, false))
	})

	t.Run("capped", func(t *testing.T) {
		parsed, ok := describeBody("text/plain", []byte("partial"), true).(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "partial", parsed["body"])
		assert.Equal(t, true, parsed["truncated"])
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, describeBody("application/json", nil, false))
	})
}

func TestIsMultipart(t *testing.T) {
	assert.True(t, isMultipart("multipart/form-data; boundary=xyz"))
	assert.True(t, isMultipart("Multipart/Mixed"))
	assert.False(t, isMultipart("application/json"))
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusAccepted))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusRequestEntityTooLarge))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusInternalServerError))
}
