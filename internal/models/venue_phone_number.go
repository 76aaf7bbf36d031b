package models

import (
	"database/sql"
	"time"
)

// VenuePhoneNumber is an outbound number provisioned for a venue at a
// transport provider. A partial unique index in the database guarantees at
// most one active row per (venue, provider) pair.
type VenuePhoneNumber struct {
	ID                 int64        `db:"id" json:"id"`
	VenueID            int64        `db:"venue_id" json:"venue_id"`
	PhoneNumber        string       `db:"phone_number" json:"phone_number"`
	ProviderExternalID string       `db:"provider_external_id" json:"provider_external_id"`
	ProviderName       ProviderName `db:"provider_name" json:"provider_name"`
	Status             NumberStatus `db:"status" json:"status"`
	AssignedAt         time.Time    `db:"assigned_at" json:"assigned_at"`
	ReleasedAt         sql.NullTime `db:"released_at" json:"released_at,omitempty"`
	CreatedAt          time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at" json:"updated_at"`
}
