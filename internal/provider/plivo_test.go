package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/models"
)

func newTestPlivoProvider(t *testing.T, handler http.HandlerFunc) *PlivoProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := Credentials{
		AccountID:    "MA_test",
		AuthToken:    "secret",
		SenderNumber: "+15005550006",
	}

	return NewPlivoProvider(creds, server.URL, 5*time.Second, zap.NewNop())
}

func TestPlivoProvider_Send_Success(t *testing.T) {
	p := newTestPlivoProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15005550006", r.PostFormValue("src"))
		assert.Equal(t, "+12125551234", r.PostFormValue("dst"))
		assert.Equal(t, "See you tonight", r.PostFormValue("text"))
		assert.Equal(t, "/Account/MA_test/Message/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"message_uuid": ["uuid-abc-123"]}`))
	})

	result, err := p.Send(context.Background(), SendRequest{
		PhoneNumber: mustPhone(t, "+12125551234"),
		Message:     "See you tonight",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "uuid-abc-123", result.MessageID)
}

func TestPlivoProvider_Send_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantCode   models.ErrorCode
	}{
		{"bad request", http.StatusBadRequest, `{"error": "invalid destination"}`, models.ErrorCodeInvalidPhone},
		{"unauthorized", http.StatusUnauthorized, `{"error": "invalid credentials"}`, models.ErrorCodeProviderError},
		{"forbidden", http.StatusForbidden, `{"error": "destination blocked"}`, models.ErrorCodeOptedOut},
		{"rate limited", http.StatusTooManyRequests, `{"error": "rate limit exceeded"}`, models.ErrorCodeRateLimited},
		{"server error", http.StatusInternalServerError, `{"error": "internal error"}`, models.ErrorCodeProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlivoProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := p.Send(context.Background(), SendRequest{
				PhoneNumber: mustPhone(t, "+12125551234"),
				Message:     "hello",
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantCode, result.ErrorCode)
		})
	}
}

func TestPlivoProvider_Send_EmptyMessageUUID(t *testing.T) {
	p := newTestPlivoProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"message_uuid": []}`))
	})

	result, err := p.Send(context.Background(), SendRequest{
		PhoneNumber: mustPhone(t, "+12125551234"),
		Message:     "hello",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, models.ErrorCodeProviderError, result.ErrorCode)
}

func TestPlivoProvider_Send_MissingCredentials(t *testing.T) {
	p := NewPlivoProvider(Credentials{AccountID: "MA_test"}, "", 5*time.Second, zap.NewNop())

	result, err := p.Send(context.Background(), SendRequest{
		PhoneNumber: mustPhone(t, "+12125551234"),
		Message:     "hello",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.ErrorCodeMissingCredentials, result.ErrorCode)
}

func TestPlivoProvider_Send_ContextCancelled(t *testing.T) {
	p := newTestPlivoProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Send(ctx, SendRequest{
		PhoneNumber: mustPhone(t, "+12125551234"),
		Message:     "hello",
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
