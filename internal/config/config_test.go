package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  read_timeout: 15
  write_timeout: 20

database:
  host: db.internal
  port: 5432
  user: app
  password: secret
  dbname: sms_dispatch

redis:
  host: cache.internal
  port: 6379

sms:
  provider: twilio
  callback_url: https://example.com/status
  twilio:
    account_id: AC123
    auth_token: token
    sender_number: "+15005550006"
  circuit_breaker:
    consecutive_fails: 10

middleware:
  rate_limit: 50
  allowed_origins:
    - https://dashboard.example.com
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, "twilio", cfg.SMS.Provider)
	assert.Equal(t, "https://example.com/status", cfg.SMS.CallbackURL)
	assert.Equal(t, "AC123", cfg.SMS.Twilio.AccountID)
	assert.Equal(t, "+15005550006", cfg.SMS.Twilio.SenderNumber)
	assert.Equal(t, uint32(10), cfg.SMS.CircuitBreaker.ConsecutiveFails)
	assert.Equal(t, 50, cfg.Middleware.RateLimit)
	assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.Middleware.AllowedOrigins)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
  port: 5432
  user: postgres
  password: postgres
  dbname: sms_dispatch
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "noop", cfg.SMS.Provider)
	assert.Equal(t, 30, cfg.SMS.Timeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, uint32(3), cfg.SMS.CircuitBreaker.MaxRequests)
	assert.Equal(t, 0.6, cfg.SMS.CircuitBreaker.FailureRatio)
	assert.Equal(t, 100, cfg.Middleware.RateLimit)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
sms:
  provider: twilio
  twilio:
    account_id: AC123
    auth_token: from-file
    sender_number: "+15005550006"
`)

	t.Setenv("SMS_TWILIO_AUTH_TOKEN", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SMS.Twilio.AuthToken)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "sms_dispatch",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=sms_dispatch sslmode=disable",
		cfg.GetDSN())
}
