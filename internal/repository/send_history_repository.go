package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/venuehq/sms-dispatch/internal/models"
)

type sendHistoryRepository struct {
	db *sqlx.DB
}

func NewSendHistoryRepository(db *sqlx.DB) SendHistoryRepository {
	return &sendHistoryRepository{
		db: db,
	}
}

// Create appends one audit entry. Entries are insert-only; there is no
// update path anywhere in the repository.
func (r *sendHistoryRepository) Create(ctx context.Context, entry *models.SendHistoryEntry) (int64, error) {
	query := `
		INSERT INTO sms_send_history (order_id, venue_id, venue_phone_number_id, customer_id,
			customer_phone_number, message, provider_name, status, provider_message_id, error_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		entry.OrderID, entry.VenueID, entry.VenuePhoneNumberID, entry.CustomerID,
		entry.CustomerPhoneNumber, entry.Message, entry.ProviderName, entry.Status,
		entry.ProviderMessageID, entry.ErrorCode, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create send history entry: %w", err)
	}

	return id, nil
}

// ListByVenue retrieves a venue's audit entries, newest first.
func (r *sendHistoryRepository) ListByVenue(ctx context.Context, venueID int64, offset, limit int) ([]*models.SendHistoryEntry, error) {
	query := `
		SELECT id, order_id, venue_id, venue_phone_number_id, customer_id,
			customer_phone_number, message, provider_name, status, provider_message_id, error_code, created_at
		FROM sms_send_history
		WHERE venue_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	var entries []*models.SendHistoryEntry
	err := r.db.SelectContext(ctx, &entries, query, venueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list send history: %w", err)
	}

	return entries, nil
}

// CountByVenue returns the total number of audit entries for a venue.
func (r *sendHistoryRepository) CountByVenue(ctx context.Context, venueID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM sms_send_history WHERE venue_id = $1`

	err := r.db.GetContext(ctx, &count, query, venueID)
	if err != nil {
		return 0, fmt.Errorf("failed to count send history: %w", err)
	}

	return count, nil
}
