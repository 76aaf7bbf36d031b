package provider

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/config"
	"github.com/venuehq/sms-dispatch/internal/models"
)

// NewProvider builds the adapter selected by configuration. Unknown provider
// names are a wiring error, not a runtime failure.
func NewProvider(cfg *config.SMSConfig, logger *zap.Logger) (SmsProvider, error) {
	name, err := models.ParseProviderName(cfg.Provider)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Timeout) * time.Second

	switch name {
	case models.ProviderNoop:
		return NewNoopProvider(), nil
	case models.ProviderTwilio:
		return NewTwilioProvider(credentials(cfg.Twilio), cfg.Twilio.BaseURL, timeout, logger), nil
	case models.ProviderPlivo:
		return NewPlivoProvider(credentials(cfg.Plivo), cfg.Plivo.BaseURL, timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown sms provider: %q", cfg.Provider)
	}
}

func credentials(c config.ProviderCredentials) Credentials {
	return Credentials{
		AccountID:    c.AccountID,
		AuthToken:    c.AuthToken,
		SenderNumber: c.SenderNumber,
	}
}
