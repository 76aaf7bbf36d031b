package models

// ErrorCode is the canonical, provider-agnostic classification of a dispatch
// failure. Every adapter normalizes its native error vocabulary into this set.
type ErrorCode string

const (
	ErrorCodeInvalidPhone       ErrorCode = "INVALID_PHONE"
	ErrorCodeEmptyMessage       ErrorCode = "EMPTY_MESSAGE"
	ErrorCodeMessageTooLong     ErrorCode = "MESSAGE_TOO_LONG"
	ErrorCodeMissingCredentials ErrorCode = "MISSING_CREDENTIALS"
	ErrorCodeOptedOut           ErrorCode = "OPTED_OUT"
	ErrorCodeCarrierViolation   ErrorCode = "CARRIER_VIOLATION"
	ErrorCodeRateLimited        ErrorCode = "RATE_LIMITED"
	ErrorCodeProviderError      ErrorCode = "PROVIDER_ERROR"
	ErrorCodeNoActiveNumber     ErrorCode = "NO_ACTIVE_NUMBER"
)

// IsTransient reports whether the failure is a provider-side condition that a
// later attempt could plausibly succeed on. Used to feed the circuit breaker;
// validation and policy codes never trip it.
func (c ErrorCode) IsTransient() bool {
	return c == ErrorCodeProviderError || c == ErrorCodeRateLimited
}
