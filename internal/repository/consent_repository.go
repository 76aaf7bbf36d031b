package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/venuehq/sms-dispatch/internal/models"
)

type consentRepository struct {
	db *sqlx.DB
}

func NewConsentRepository(db *sqlx.DB) ConsentRepository {
	return &consentRepository{
		db: db,
	}
}

const consentColumns = `id, venue_id, phone_number, status, source,
	initial_consent_at, opted_in_at, opted_out_at, created_at, updated_at`

// GetByVenueAndPhone retrieves the consent record for a (venue, phone) pair.
func (r *consentRepository) GetByVenueAndPhone(ctx context.Context, venueID int64, phoneNumber string) (*models.ConsentRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sms_consents
		WHERE venue_id = $1 AND phone_number = $2
	`, consentColumns)

	var record models.ConsentRecord
	err := r.db.GetContext(ctx, &record, query, venueID, phoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConsentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consent record: %w", err)
	}

	return &record, nil
}

// RecordOptIn creates an opted-in record, or flips an existing record back to
// opted-in. initial_consent_at is only written on first creation; a previous
// opted_out_at is left in place.
func (r *consentRepository) RecordOptIn(ctx context.Context, venueID int64, phoneNumber string, source models.ConsentSource) (*models.ConsentRecord, error) {
	query := fmt.Sprintf(`
		INSERT INTO sms_consents (venue_id, phone_number, status, source, initial_consent_at, opted_in_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5, $5, $5)
		ON CONFLICT (venue_id, phone_number) DO UPDATE
		SET status = $3,
		    source = $4,
		    opted_in_at = $5,
		    updated_at = $5
		RETURNING %s
	`, consentColumns)

	var record models.ConsentRecord
	err := r.db.GetContext(ctx, &record, query, venueID, phoneNumber, models.ConsentStatusOptedIn, source, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to record opt-in: %w", err)
	}

	return &record, nil
}

// RecordOptOut flips the record to opted-out, creating one if none exists so
// that an explicit opt-out without prior consent is representable.
func (r *consentRepository) RecordOptOut(ctx context.Context, venueID int64, phoneNumber string) (*models.ConsentRecord, error) {
	query := fmt.Sprintf(`
		INSERT INTO sms_consents (venue_id, phone_number, status, source, opted_out_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5, $5)
		ON CONFLICT (venue_id, phone_number) DO UPDATE
		SET status = $3,
		    opted_out_at = $5,
		    updated_at = $5
		RETURNING %s
	`, consentColumns)

	var record models.ConsentRecord
	err := r.db.GetContext(ctx, &record, query, venueID, phoneNumber, models.ConsentStatusOptedOut, models.ConsentSourceUnknown, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to record opt-out: %w", err)
	}

	return &record, nil
}
