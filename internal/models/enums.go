package models

import "fmt"

// ConsentStatus is the recorded opt-in/opt-out state for a (venue, phone) pair.
type ConsentStatus string

const (
	ConsentStatusOptedIn  ConsentStatus = "opted_in"
	ConsentStatusOptedOut ConsentStatus = "opted_out"
)

// ConsentSource identifies where a consent signal originated.
type ConsentSource string

const (
	ConsentSourceCheckout        ConsentSource = "checkout"
	ConsentSourceAccountSettings ConsentSource = "account_settings"
	ConsentSourceSupportRequest  ConsentSource = "support_request"
	ConsentSourceUnknown         ConsentSource = "unknown"
)

// ParseConsentSource maps a raw source string to a known ConsentSource,
// falling back to ConsentSourceUnknown.
func ParseConsentSource(raw string) ConsentSource {
	switch ConsentSource(raw) {
	case ConsentSourceCheckout, ConsentSourceAccountSettings, ConsentSourceSupportRequest:
		return ConsentSource(raw)
	default:
		return ConsentSourceUnknown
	}
}

// NumberStatus is the lifecycle state of a venue's provisioned phone number.
type NumberStatus string

const (
	NumberStatusActive   NumberStatus = "active"
	NumberStatusInactive NumberStatus = "inactive"
	NumberStatusReleased NumberStatus = "released"
)

// SendStatus is the terminal outcome of one dispatch attempt.
type SendStatus string

const (
	SendStatusSent             SendStatus = "sent"
	SendStatusFailed           SendStatus = "failed"
	SendStatusSkippedNoConsent SendStatus = "skipped_no_consent"
	SendStatusBlockedOptedOut  SendStatus = "blocked_opted_out"
)

// ProviderName identifies an SMS transport provider.
type ProviderName string

const (
	ProviderTwilio ProviderName = "twilio"
	ProviderPlivo  ProviderName = "plivo"
	ProviderNoop   ProviderName = "noop"
)

// ParseProviderName validates a configured provider name.
func ParseProviderName(raw string) (ProviderName, error) {
	switch ProviderName(raw) {
	case ProviderTwilio, ProviderPlivo, ProviderNoop:
		return ProviderName(raw), nil
	default:
		return "", fmt.Errorf("unknown sms provider: %q", raw)
	}
}
