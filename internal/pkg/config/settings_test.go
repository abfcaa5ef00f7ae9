//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  grpc_port: "6000"
  rest_port: "6001"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
auth:
  pass_pepper: file-pepper-0123456789
  secret_key: file-secret-0123456789
  secure_routes: /news.v1.NewsService/CreateArticle,/news.v1.AuthService/SignOut
  session_ttl: 2h
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	settings, err := Load(writeConfigFile(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "6000", settings.Server.GrpcPort)
	assert.Equal(t, SqliteDbType, settings.Database.Type)
	assert.Equal(t, LogLevelDebug, settings.Logger.LogLevel)
	assert.Equal(t, 2*time.Hour, settings.Auth.SessionTTL)
	assert.Equal(t, []string{
		"/news.v1.NewsService/CreateArticle",
		"/news.v1.AuthService/SignOut",
	}, settings.Auth.SecureRouteList())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("NEWS_API_AUTH__PASS_PEPPER", "env-pepper-0123456789")
	t.Setenv("NEWS_API_SERVER__GRPC_PORT", "7000")

	settings, err := Load(writeConfigFile(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-pepper-0123456789", settings.Auth.PassPepper)
	assert.Equal(t, "7000", settings.Server.GrpcPort)
	assert.Equal(t, "file-secret-0123456789", settings.Auth.SecretKey)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("NEWS_API_DATABASE__TYPE", SqliteDbType)
	t.Setenv("NEWS_API_DATABASE__DSN", ":memory:")
	t.Setenv("NEWS_API_AUTH__PASS_PEPPER", "env-pepper-0123456789")
	t.Setenv("NEWS_API_AUTH__SECRET_KEY", "env-secret-0123456789")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "50051", settings.Server.GrpcPort)
	assert.Equal(t, 720*time.Hour, settings.Auth.SessionTTL)
	assert.Empty(t, settings.Auth.SecureRouteList())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing secrets", func(t *testing.T) {
		_, err := Load(writeConfigFile(t, `
database:
  type: sqlite
  dsn: ":memory:"
`))
		assert.Error(t, err)
	})
}
