package service

import (
	"github.com/google/uuid"

	"github.com/venuehq/sms-dispatch/internal/models"
)

// DispatchRequest is one send request as forwarded by the HTTP layer.
// PhoneNumber carries the raw input; the pipeline validates it.
type DispatchRequest struct {
	VenueID     int64
	PhoneNumber string
	Message     string
	CallbackURL string
	OrderID     uuid.NullUUID
	CustomerID  uuid.NullUUID
}

// DispatchResult is the classified terminal outcome of one dispatch attempt.
type DispatchResult struct {
	Status            models.SendStatus `json:"status"`
	Success           bool              `json:"success"`
	ProviderMessageID string            `json:"provider_message_id,omitempty"`
	ErrorCode         models.ErrorCode  `json:"error_code,omitempty"`
	ErrorMessage      string            `json:"error_message,omitempty"`
}

// AssignNumberRequest describes one number assignment.
type AssignNumberRequest struct {
	VenueID            int64
	ProviderName       string
	PhoneNumber        string
	ProviderExternalID string
}

// HistoryPage is a paginated slice of the audit trail.
type HistoryPage struct {
	Entries    []*models.SendHistoryEntry `json:"entries"`
	Pagination Pagination                 `json:"pagination"`
}

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

// Health status labels reported by the health service.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"

	ComponentStatusConnected    = "connected"
	ComponentStatusDisconnected = "disconnected"
)

type HealthStatus struct {
	Status               string `json:"status"`
	DatabaseStatus       string `json:"database_status"`
	RedisStatus          string `json:"redis_status"`
	CircuitBreakerState  string `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerCounts string `json:"circuit_breaker_counts,omitempty"`
}
