// Package repository implements Postgres persistence for consent records,
// venue phone numbers and the send history audit trail.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of the Repository interface.
type repositoryImpl struct {
	db          *sqlx.DB
	consent     ConsentRepository
	venueNumber VenueNumberRepository
	sendHistory SendHistoryRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:          db,
		consent:     NewConsentRepository(db),
		venueNumber: NewVenueNumberRepository(db),
		sendHistory: NewSendHistoryRepository(db),
	}
}

// Consent returns the consent ledger repository.
func (r *repositoryImpl) Consent() ConsentRepository {
	return r.consent
}

// VenueNumber returns the venue phone number repository.
func (r *repositoryImpl) VenueNumber() VenueNumberRepository {
	return r.venueNumber
}

// SendHistory returns the send history repository.
func (r *repositoryImpl) SendHistory() SendHistoryRepository {
	return r.sendHistory
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
