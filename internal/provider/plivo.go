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

const defaultPlivoBaseURL = "https://api.plivo.com/v1"

// PlivoProvider sends messages through the Plivo Message API.
type PlivoProvider struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewPlivoProvider(creds Credentials, baseURL string, timeout time.Duration, logger *zap.Logger) *PlivoProvider {
	if baseURL == "" {
		baseURL = defaultPlivoBaseURL
	}

	return &PlivoProvider{
		creds:   creds,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (p *PlivoProvider) Name() models.ProviderName {
	return models.ProviderPlivo
}

// plivoResponse is the subset of the Message API response we consume.
// Plivo returns the message identifier as a one-element array.
type plivoResponse struct {
	MessageUUID []string `json:"message_uuid"`
	Error       string   `json:"error"`
}

func (p *PlivoProvider) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if res := validateRequest(req); res != nil {
		return res, nil
	}

	if !p.creds.complete() {
		return failure(models.ErrorCodeMissingCredentials, "plivo credentials not configured"), nil
	}

	form := url.Values{}
	form.Set("src", p.creds.SenderNumber)
	form.Set("dst", req.PhoneNumber.String())
	form.Set("text", req.Message)

	endpoint := fmt.Sprintf("%s/Account/%s/Message/", p.baseURL, p.creds.AccountID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("plivo provider error: %v", err)), nil
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(p.creds.AccountID, p.creds.AuthToken)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("plivo provider error: %v", err)), nil
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close plivo response body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("plivo provider error: %v", err)), nil
	}

	var parsed plivoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return failure(models.ErrorCodeProviderError, fmt.Sprintf("plivo provider error: failed to decode response: %v", err)), nil
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && len(parsed.MessageUUID) > 0 && parsed.MessageUUID[0] != "" {
		return &SendResult{
			Success:   true,
			MessageID: parsed.MessageUUID[0],
		}, nil
	}

	errorMessage := parsed.Error
	if errorMessage == "" {
		errorMessage = "unknown error occurred while sending SMS"
	}

	// Plivo has no recognized numeric error vocabulary; map by status alone.
	return failure(mapStatusCode(resp.StatusCode), errorMessage), nil
}
