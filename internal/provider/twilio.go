package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/models"
)

const defaultTwilioBaseURL = "https://api.twilio.com/2010-04-01"

// Credentials is the static credential triple every live adapter requires.
type Credentials struct {
	AccountID    string
	AuthToken    string
	SenderNumber string
}

func (c Credentials) complete() bool {
	return c.AccountID != "" && c.AuthToken != "" && c.SenderNumber != ""
}

// TwilioProvider sends messages through the Twilio Messages API.
type TwilioProvider struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTwilioProvider(creds Credentials, baseURL string, timeout time.Duration, logger *zap.Logger) *TwilioProvider {
	if baseURL == "" {
		baseURL = defaultTwilioBaseURL
	}

	return &TwilioProvider{
		creds:   creds,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (p *TwilioProvider) Name() models.ProviderName {
	return models.ProviderTwilio
}

// twilioResponse is the subset of the Messages API response we consume.
type twilioResponse struct {
	Sid     string `json:"sid"`
	Status  string `json:"status"`
	Code    *int   `json:"code"`
	Message string `json:"message"`
}

func (p *TwilioProvider) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if res := validateRequest(req); res != nil {
		return res, nil
	}

	if !p.creds.complete() {
		return failure(models.ErrorCodeMissingCredentials, "twilio credentials not configured"), nil
	}

	form := url.Values{}
	form.Set("From", p.creds.SenderNumber)
	form.Set("To", req.PhoneNumber.String())
	form.Set("Body", req.Message)
	if req.CallbackURL != "" {
		form.Set("StatusCallback", req.CallbackURL)
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", p.baseURL, p.creds.AccountID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("twilio provider error: %v", err)), nil
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(p.creds.AccountID, p.creds.AuthToken)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		// Cancellation stays a distinct error; everything else is normalized.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("twilio provider error: %v", err)), nil
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close twilio response body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("twilio provider error: %v", err)), nil
	}

	var parsed twilioResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("twilio provider error: failed to decode response: %v", err)), nil
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && parsed.Sid != "" {
		return &SendResult{
			Success:   true,
			MessageID: parsed.Sid,
		}, nil
	}

	errorMessage := parsed.Message
	if errorMessage == "" {
		errorMessage = "unknown error occurred while sending SMS"
	}

	return failure(mapTwilioError(parsed.Code, resp.StatusCode), errorMessage), nil
}
