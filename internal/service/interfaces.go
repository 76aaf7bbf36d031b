package service

import (
	"context"

	"github.com/venuehq/sms-dispatch/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// DispatchService runs the compliance-aware send pipeline.
type DispatchService interface {
	// Dispatch performs one dispatch attempt: number resolution, consent
	// gate, provider call and audit write. It returns an error only for
	// infrastructure faults (storage, cancellation); every classifiable
	// attempt terminates in a DispatchResult.
	Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error)

	// CircuitBreakerStatus reports the provider breaker state for health checks.
	CircuitBreakerStatus() (state string, requests, failures uint32)
}

// ConsentService is the consent ledger.
type ConsentService interface {
	GetStatus(ctx context.Context, venueID int64, phoneNumber string) (models.ConsentStatus, error)
	RecordOptIn(ctx context.Context, venueID int64, phoneNumber string, source models.ConsentSource) (*models.ConsentRecord, error)
	RecordOptOut(ctx context.Context, venueID int64, phoneNumber string) (*models.ConsentRecord, error)
}

// NumberService manages the venue phone number lifecycle.
type NumberService interface {
	GetActiveNumber(ctx context.Context, venueID int64, providerName models.ProviderName) (*models.VenuePhoneNumber, error)
	Assign(ctx context.Context, req AssignNumberRequest) (*models.VenuePhoneNumber, error)
	Release(ctx context.Context, id int64) error
}

// HistoryService reads the send history audit trail.
type HistoryService interface {
	ListByVenue(ctx context.Context, venueID int64, page, limit int) (*HistoryPage, error)
}

// HealthService reports component health.
type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
