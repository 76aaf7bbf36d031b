package repository

import (
	"context"

	"github.com/venuehq/sms-dispatch/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Repository aggregates all persistence operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Consent returns the consent ledger repository
	Consent() ConsentRepository

	// VenueNumber returns the venue phone number repository
	VenueNumber() VenueNumberRepository

	// SendHistory returns the send history repository
	SendHistory() SendHistoryRepository
}

// ConsentRepository persists per-venue-per-phone consent state.
type ConsentRepository interface {
	GetByVenueAndPhone(ctx context.Context, venueID int64, phoneNumber string) (*models.ConsentRecord, error)
	RecordOptIn(ctx context.Context, venueID int64, phoneNumber string, source models.ConsentSource) (*models.ConsentRecord, error)
	RecordOptOut(ctx context.Context, venueID int64, phoneNumber string) (*models.ConsentRecord, error)
}

// AssignNumberParams describes one number assignment.
type AssignNumberParams struct {
	VenueID            int64
	ProviderName       models.ProviderName
	PhoneNumber        string
	ProviderExternalID string
}

// VenueNumberRepository persists the provisioned-number lifecycle.
type VenueNumberRepository interface {
	GetActive(ctx context.Context, venueID int64, providerName models.ProviderName) (*models.VenuePhoneNumber, error)
	Assign(ctx context.Context, params AssignNumberParams) (*models.VenuePhoneNumber, error)
	Release(ctx context.Context, id int64) error
}

// SendHistoryRepository persists the append-only dispatch audit trail.
type SendHistoryRepository interface {
	Create(ctx context.Context, entry *models.SendHistoryEntry) (int64, error)
	ListByVenue(ctx context.Context, venueID int64, offset, limit int) ([]*models.SendHistoryEntry, error)
	CountByVenue(ctx context.Context, venueID int64) (int64, error)
}
