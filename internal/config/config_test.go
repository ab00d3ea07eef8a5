package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8083

[telegram]
bot_token = "123:abc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 70, cfg.Telegram.ClientTimeout)
	assert.Equal(t, 100, cfg.Poller.Limit)
}

func TestLoad_MissingBotToken(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8083
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot token")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("POLLER_ENABLED", "false")

	path := writeConfig(t, `
[server]
http_port = 8083

[telegram]
bot_token = "file-token"

[poller]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram.BotToken)
	assert.False(t, cfg.Poller.Enabled)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 0

[telegram]
bot_token = "123:abc"
`)

	_, err := Load(path)
	require.Error(t, err)
}
