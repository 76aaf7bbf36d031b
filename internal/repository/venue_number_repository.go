package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/venuehq/sms-dispatch/internal/models"
)

// pqUniqueViolation is the Postgres error code for unique constraint
// violations, raised by the partial unique index on active numbers.
const pqUniqueViolation = "23505"

type venueNumberRepository struct {
	db *sqlx.DB
}

func NewVenueNumberRepository(db *sqlx.DB) VenueNumberRepository {
	return &venueNumberRepository{
		db: db,
	}
}

const venueNumberColumns = `id, venue_id, phone_number, provider_external_id,
	provider_name, status, assigned_at, released_at, created_at, updated_at`

// GetActive retrieves the venue's currently active number for a provider.
func (r *venueNumberRepository) GetActive(ctx context.Context, venueID int64, providerName models.ProviderName) (*models.VenuePhoneNumber, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM venue_phone_numbers
		WHERE venue_id = $1 AND provider_name = $2 AND status = $3
	`, venueNumberColumns)

	var number models.VenuePhoneNumber
	err := r.db.GetContext(ctx, &number, query, venueID, providerName, models.NumberStatusActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoActiveNumber
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active number: %w", err)
	}

	return &number, nil
}

// Assign inserts a new active number. The partial unique index on
// (venue_id, provider_name) WHERE status = 'active' makes the
// one-active-number invariant atomic at the storage layer; a violation is
// surfaced as ErrActiveNumberExists.
func (r *venueNumberRepository) Assign(ctx context.Context, params AssignNumberParams) (*models.VenuePhoneNumber, error) {
	query := fmt.Sprintf(`
		INSERT INTO venue_phone_numbers (venue_id, phone_number, provider_external_id, provider_name, status, assigned_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $6)
		RETURNING %s
	`, venueNumberColumns)

	var number models.VenuePhoneNumber
	err := r.db.GetContext(ctx, &number, query,
		params.VenueID, params.PhoneNumber, params.ProviderExternalID,
		params.ProviderName, models.NumberStatusActive, time.Now())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrActiveNumberExists
		}
		return nil, fmt.Errorf("failed to assign number: %w", err)
	}

	return &number, nil
}

// Release transitions an active number to released. Releasing a number that
// is not active fails with ErrNumberNotActive.
func (r *venueNumberRepository) Release(ctx context.Context, id int64) error {
	query := `
		UPDATE venue_phone_numbers
		SET status = $2,
		    released_at = $3,
		    updated_at = $3
		WHERE id = $1 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, id, models.NumberStatusReleased, time.Now(), models.NumberStatusActive)
	if err != nil {
		return fmt.Errorf("failed to release number: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check release result: %w", err)
	}
	if affected == 0 {
		return ErrNumberNotActive
	}

	return nil
}
