package provider

import (
	"net/http"

	"github.com/venuehq/sms-dispatch/internal/models"
)

// twilioErrorCodes maps Twilio's numeric error vocabulary into the canonical
// taxonomy. A recognized numeric code always wins over the HTTP status.
var twilioErrorCodes = map[int]models.ErrorCode{
	21211: models.ErrorCodeInvalidPhone,     // invalid 'To' phone number
	21408: models.ErrorCodeOptedOut,         // SMS permission not enabled for region
	21610: models.ErrorCodeOptedOut,         // recipient has unsubscribed
	30003: models.ErrorCodeOptedOut,         // unreachable destination handset
	30005: models.ErrorCodeInvalidPhone,     // unknown destination handset
	30006: models.ErrorCodeCarrierViolation, // landline or unreachable carrier
	30007: models.ErrorCodeCarrierViolation, // carrier violation
	30008: models.ErrorCodeInvalidPhone,     // unknown error
}

// mapTwilioError resolves a Twilio failure to a canonical code, preferring
// the provider-specific numeric code over the HTTP status.
func mapTwilioError(code *int, statusCode int) models.ErrorCode {
	if code != nil {
		if mapped, ok := twilioErrorCodes[*code]; ok {
			return mapped
		}
	}
	return mapStatusCode(statusCode)
}

// mapStatusCode is the status-code-keyed fallback shared by all transport
// adapters when no provider-specific code is recognized.
func mapStatusCode(statusCode int) models.ErrorCode {
	switch statusCode {
	case http.StatusBadRequest:
		return models.ErrorCodeInvalidPhone
	case http.StatusUnauthorized:
		return models.ErrorCodeProviderError
	case http.StatusForbidden:
		return models.ErrorCodeOptedOut
	case http.StatusNotFound:
		return models.ErrorCodeProviderError
	case http.StatusTooManyRequests:
		return models.ErrorCodeRateLimited
	default:
		return models.ErrorCodeProviderError
	}
}
