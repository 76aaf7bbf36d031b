package provider

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/models"
)

func testTwilioCreds() Credentials {
	return Credentials{
		AccountID:    "AC_test",
		AuthToken:    "secret",
		SenderNumber: "+15005550006",
	}
}

func newTestTwilioProvider(t *testing.T, handler http.HandlerFunc) (*TwilioProvider, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewTwilioProvider(testTwilioCreds(), server.URL, 5*time.Second, zap.NewNop())
	return p, server
}

func TestTwilioProvider_Send_Success(t *testing.T) {
	var gotForm map[string]string

	p, _ := newTestTwilioProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"From":           r.PostFormValue("From"),
			"To":             r.PostFormValue("To"),
			"Body":           r.PostFormValue("Body"),
			"StatusCallback": r.PostFormValue("StatusCallback"),
		}

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC_test", user)
		assert.Equal(t, "secret", pass)

		assert.Equal(t, "/Accounts/AC_test/Messages.json", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid": "SM123", "status": "queued"}`))
	})

	result, err := p.Send(context.Background(), SendRequest{
		PhoneNumber: mustPhone(t, "+12125551234"),
		Message:     "Your order is ready",
		CallbackURL: "https://example.com/status",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "SM123", result.MessageID)
	assert.Empty(t, result.ErrorCode)

	assert.Equal(t, "+15005550006", gotForm["From"])
	assert.Equal(t, "+12125551234", gotForm["To"])
	assert.Equal(t, "Your order is ready", gotForm["Body"])
	assert.Equal(t, "https://example.com/status", gotForm["StatusCallback"])
}

func TestTwilioProvider_Send_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantCode   models.ErrorCode
		wantMsg    string
	}{
		{
			name:       "unsubscribed recipient code",
			statusCode: http.StatusBadRequest,
			body:       `{"code": 21610, "message": "The recipient has unsubscribed"}`,
			wantCode:   models.ErrorCodeOptedOut,
			wantMsg:    "The recipient has unsubscribed",
		},
		{
			name:       "invalid to number code",
			statusCode: http.StatusBadRequest,
			body:       `{"code": 21211, "message": "Invalid 'To' Phone Number"}`,
			wantCode:   models.ErrorCodeInvalidPhone,
			wantMsg:    "Invalid 'To' Phone Number",
		},
		{
			name:       "carrier violation code",
			statusCode: http.StatusBadRequest,
			body:       `{"code": 30007, "message": "Carrier violation"}`,
			wantCode:   models.ErrorCodeCarrierViolation,
			wantMsg:    "Carrier violation",
		},
		{
			name:       "forbidden without code",
			statusCode: http.StatusForbidden,
			body:       `{"message": "Forbidden"}`,
			wantCode:   models.ErrorCodeOptedOut,
			wantMsg:    "Forbidden",
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			body:       `{"message": "Too many requests"}`,
			wantCode:   models.ErrorCodeRateLimited,
			wantMsg:    "Too many requests",
		},
		{
			name:       "server error with empty message",
			statusCode: http.StatusInternalServerError,
			body:       `{}`,
			wantCode:   models.ErrorCodeProviderError,
			wantMsg:    "unknown error occurred while sending SMS",
		},
		{
			name:       "success status without sid",
			statusCode: http.StatusCreated,
			body:       `{"status": "queued"}`,
			wantCode:   models.ErrorCodeProviderError,
			wantMsg:    "unknown error occurred while sending SMS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestTwilioProvider(t, func(w http.ResponseWriter, r *http.Request) {
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
			assert.Equal(t, tt.wantMsg, result.ErrorMessage)
		})
	}
}

func TestTwilioProvider_Send_MalformedResponse(t *testing.T) {
	p, _ := newTestTwilioProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`not json`))
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

func TestTwilioProvider_Send_MissingCredentials(t *testing.T) {
	p := NewTwilioProvider(Credentials{}, "", 5*time.Second, zap.NewNop())

	result, err := p.Send(context.Background(), SendRequest{
		PhoneNumber: mustPhone(t, "+12125551234"),
		Message:     "hello",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, models.ErrorCodeMissingCredentials, result.ErrorCode)
}

func TestTwilioProvider_Send_ValidationBeforeNetwork(t *testing.T) {
	serverHit := false

	p, _ := newTestTwilioProvider(t, func(w http.ResponseWriter, r *http.Request) {
		serverHit = true
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		req      SendRequest
		wantCode models.ErrorCode
	}{
		{
			name:     "invalid phone",
			req:      SendRequest{Message: "hello"},
			wantCode: models.ErrorCodeInvalidPhone,
		},
		{
			name: "empty message",
			req: SendRequest{
				PhoneNumber: mustPhone(t, "+12125551234"),
			},
			wantCode: models.ErrorCodeEmptyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Send(context.Background(), tt.req)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantCode, result.ErrorCode)
			assert.False(t, serverHit, "validation failures must not reach the provider")
		})
	}
}

func TestTwilioProvider_Send_ContextCancelled(t *testing.T) {
	p, _ := newTestTwilioProvider(t, func(w http.ResponseWriter, r *http.Request) {
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

func TestTwilioProvider_Send_ContextCancelledMidRequest(t *testing.T) {
	started := make(chan struct{})

	p, _ := newTestTwilioProvider(t, func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect
		// and cancel the request context.
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	result, err := p.Send(ctx, SendRequest{
		PhoneNumber: mustPhone(t, "+12125551234"),
		Message:     "hello",
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
