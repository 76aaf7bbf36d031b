package provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/venuehq/sms-dispatch/internal/models"
)

// NoopProvider accepts every valid request without touching the network.
// Used for environments without live provider credentials.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Name() models.ProviderName {
	return models.ProviderNoop
}

// Send validates the request like a real adapter and returns a fresh opaque
// message id on success.
func (p *NoopProvider) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if res := validateRequest(req); res != nil {
		return res, nil
	}

	return &SendResult{
		Success:   true,
		MessageID: "noop-" + uuid.New().String(),
	}, nil
}
