package models

import (
	"database/sql"
	"time"
)

// ConsentRecord tracks the current consent state for one (venue, phone) pair.
// At most one record exists per pair; records are mutated on status
// transitions and never deleted.
type ConsentRecord struct {
	ID               int64         `db:"id" json:"id"`
	VenueID          int64         `db:"venue_id" json:"venue_id"`
	PhoneNumber      string        `db:"phone_number" json:"phone_number"`
	Status           ConsentStatus `db:"status" json:"status"`
	Source           ConsentSource `db:"source" json:"source"`
	InitialConsentAt sql.NullTime  `db:"initial_consent_at" json:"initial_consent_at,omitempty"`
	OptedInAt        sql.NullTime  `db:"opted_in_at" json:"opted_in_at,omitempty"`
	OptedOutAt       sql.NullTime  `db:"opted_out_at" json:"opted_out_at,omitempty"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}
