package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// SendHistoryEntry is the append-only audit row written at the end of every
// dispatch attempt, including attempts that were skipped or blocked before
// any provider call. Entries are never mutated after creation.
//
// VenuePhoneNumberID is null when the attempt failed before a number could be
// resolved (NO_ACTIVE_NUMBER). CustomerPhoneNumber carries the raw request
// input so that rejected phone numbers remain auditable.
type SendHistoryEntry struct {
	ID                  int64          `db:"id" json:"id"`
	OrderID             uuid.NullUUID  `db:"order_id" json:"order_id,omitempty"`
	VenueID             int64          `db:"venue_id" json:"venue_id"`
	VenuePhoneNumberID  sql.NullInt64  `db:"venue_phone_number_id" json:"venue_phone_number_id,omitempty"`
	CustomerID          uuid.NullUUID  `db:"customer_id" json:"customer_id,omitempty"`
	CustomerPhoneNumber string         `db:"customer_phone_number" json:"customer_phone_number"`
	Message             string         `db:"message" json:"message"`
	ProviderName        ProviderName   `db:"provider_name" json:"provider_name"`
	Status              SendStatus     `db:"status" json:"status"`
	ProviderMessageID   sql.NullString `db:"provider_message_id" json:"provider_message_id,omitempty"`
	ErrorCode           sql.NullString `db:"error_code" json:"error_code,omitempty"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
}
