// Package provider implements the outbound SMS transport abstraction and one
// adapter per supported provider.
package provider

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/venuehq/sms-dispatch/internal/models"
)

// maxMessageLength is the provider SMS segment ceiling; a message of exactly
// this length is still valid.
const maxMessageLength = 1600

// SendRequest carries one message to one recipient.
type SendRequest struct {
	PhoneNumber models.PhoneNumber
	Message     string
	CallbackURL string
}

// SendResult is the normalized outcome of one provider call. Every
// provider-side failure is reported here with a canonical error code;
// nothing past the adapter boundary sees raw provider errors.
type SendResult struct {
	Success      bool
	MessageID    string
	ErrorCode    models.ErrorCode
	ErrorMessage string
}

// SmsProvider is the transport capability implemented by each adapter.
type SmsProvider interface {
	// Send delivers one message. The returned error is non-nil only when ctx
	// is cancelled; it is checked before any work starts and is never folded
	// into a SendResult failure.
	Send(ctx context.Context, req SendRequest) (*SendResult, error)

	// Name identifies the transport for audit records and metrics.
	Name() models.ProviderName
}

func failure(code models.ErrorCode, message string) *SendResult {
	return &SendResult{
		ErrorCode:    code,
		ErrorMessage: message,
	}
}

// validateRequest applies the shared adapter preconditions. It returns a
// failure result before any network I/O when the request is malformed, or
// nil when the request may proceed.
func validateRequest(req SendRequest) *SendResult {
	if req.PhoneNumber.IsZero() || !models.IsValidE164(req.PhoneNumber.String()) {
		return failure(models.ErrorCodeInvalidPhone, "phone number must be in E.164 format (e.g. +1234567890)")
	}

	if strings.TrimSpace(req.Message) == "" {
		return failure(models.ErrorCodeEmptyMessage, "message cannot be empty")
	}

	if n := utf8.RuneCountInString(req.Message); n > maxMessageLength {
		return failure(models.ErrorCodeMessageTooLong,
			fmt.Sprintf("message exceeds %d character limit (current length: %d)", maxMessageLength, n))
	}

	return nil
}
