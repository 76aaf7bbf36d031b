// Package handler provides the HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/middleware"
	"github.com/venuehq/sms-dispatch/internal/models"
	"github.com/venuehq/sms-dispatch/internal/repository"
	"github.com/venuehq/sms-dispatch/internal/service"
)

const (
	errorCodeInvalidRequest       = "INVALID_REQUEST"
	errorCodeInvalidPhone         = "INVALID_PHONE"
	errorCodeConsentNotFound      = "CONSENT_NOT_FOUND"
	errorCodeActiveNumberConflict = "CONFLICT_ACTIVE_NUMBER_EXISTS"
	errorCodeNumberNotActive      = "NUMBER_NOT_ACTIVE"
)

type Handler struct {
	service  *service.Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates the handler set backing the HTTP routes.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type sendSmsRequest struct {
	VenueID     int64  `json:"venue_id" validate:"required,gt=0"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Message     string `json:"message" validate:"required"`
	CallbackURL string `json:"callback_url" validate:"omitempty,url"`
	OrderID     string `json:"order_id" validate:"omitempty,uuid"`
	CustomerID  string `json:"customer_id" validate:"omitempty,uuid"`
}

// SendSms runs one dispatch attempt. Policy and validation outcomes are
// returned as structured results with HTTP 200; only malformed requests and
// infrastructure faults map to error statuses.
func (h *Handler) SendSms(w http.ResponseWriter, r *http.Request) {
	var req sendSmsRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	dispatchReq := service.DispatchRequest{
		VenueID:     req.VenueID,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		CallbackURL: req.CallbackURL,
		OrderID:     parseOptionalUUID(req.OrderID),
		CustomerID:  parseOptionalUUID(req.CustomerID),
	}

	result, err := h.service.Dispatch.Dispatch(r.Context(), dispatchReq)
	if err != nil {
		h.logger.Error("Dispatch attempt failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Int64("venue_id", req.VenueID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to dispatch message")
		return
	}

	render.JSON(w, r, result)
}

type optInRequest struct {
	VenueID     int64  `json:"venue_id" validate:"required,gt=0"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Source      string `json:"source"`
}

// OptIn records an opt-in consent signal.
func (h *Handler) OptIn(w http.ResponseWriter, r *http.Request) {
	var req optInRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	record, err := h.service.Consent.RecordOptIn(r.Context(), req.VenueID, req.PhoneNumber, models.ParseConsentSource(req.Source))
	if err != nil {
		h.handleConsentError(w, r, err, "Failed to record opt-in")
		return
	}

	render.JSON(w, r, record)
}

type optOutRequest struct {
	VenueID     int64  `json:"venue_id" validate:"required,gt=0"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// OptOut records an opt-out consent signal.
func (h *Handler) OptOut(w http.ResponseWriter, r *http.Request) {
	var req optOutRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	record, err := h.service.Consent.RecordOptOut(r.Context(), req.VenueID, req.PhoneNumber)
	if err != nil {
		h.handleConsentError(w, r, err, "Failed to record opt-out")
		return
	}

	render.JSON(w, r, record)
}

// GetConsent returns the current consent status for a (venue, phone) pair.
func (h *Handler) GetConsent(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(r.URL.Query().Get("venue_id"), 10, 64)
	if err != nil || venueID <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "venue_id must be a positive integer")
		return
	}

	phoneNumber := r.URL.Query().Get("phone_number")

	status, err := h.service.Consent.GetStatus(r.Context(), venueID, phoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPhoneFormat):
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPhone, err.Error())
		case errors.Is(err, repository.ErrConsentNotFound):
			h.sendError(w, r, http.StatusNotFound, errorCodeConsentNotFound, "No consent record for venue and phone number")
		default:
			h.logger.Error("Failed to get consent status",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Error(err))
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to get consent status")
		}
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"venue_id":     venueID,
		"phone_number": phoneNumber,
		"status":       status,
	})
}

type assignNumberRequest struct {
	VenueID            int64  `json:"venue_id" validate:"required,gt=0"`
	Provider           string `json:"provider" validate:"required"`
	PhoneNumber        string `json:"phone_number" validate:"required"`
	ProviderExternalID string `json:"provider_external_id" validate:"required"`
}

// AssignNumber provisions an active outbound number for a venue.
func (h *Handler) AssignNumber(w http.ResponseWriter, r *http.Request) {
	var req assignNumberRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	number, err := h.service.Number.Assign(r.Context(), service.AssignNumberRequest{
		VenueID:            req.VenueID,
		ProviderName:       req.Provider,
		PhoneNumber:        req.PhoneNumber,
		ProviderExternalID: req.ProviderExternalID,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPhoneFormat):
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPhone, err.Error())
		case errors.Is(err, repository.ErrActiveNumberExists):
			h.sendError(w, r, http.StatusConflict, errorCodeActiveNumberConflict, "An active number already exists for this venue and provider")
		default:
			h.logger.Error("Failed to assign number",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Error(err))
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to assign number")
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, number)
}

// ReleaseNumber transitions an active number to released.
func (h *Handler) ReleaseNumber(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "id must be a positive integer")
		return
	}

	if err := h.service.Number.Release(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNumberNotActive) {
			h.sendError(w, r, http.StatusConflict, errorCodeNumberNotActive, "Phone number is not currently active")
			return
		}
		h.logger.Error("Failed to release number",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Int64("number_id", id),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to release number")
		return
	}

	render.JSON(w, r, map[string]string{"status": "released"})
}

// GetSendHistory returns a page of the venue's audit trail.
func (h *Handler) GetSendHistory(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(r.URL.Query().Get("venue_id"), 10, 64)
	if err != nil || venueID <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "venue_id must be a positive integer")
		return
	}

	page := 1
	limit := 20

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p >= 1 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l >= 1 && l <= 100 {
		limit = l
	}

	result, err := h.service.History.ListByVenue(r.Context(), venueID, page, limit)
	if err != nil {
		h.logger.Error("Failed to get send history",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve send history")
		return
	}

	render.JSON(w, r, result)
}

// HealthCheck reports component health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	if health.Status == service.HealthStatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, health)
}

// bindJSON decodes and validates the request body, writing a 400 response
// and returning false when it is malformed.
func (h *Handler) bindJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Request body must be valid JSON")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, err.Error())
		return false
	}

	return true
}

func (h *Handler) handleConsentError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, models.ErrInvalidPhoneFormat) {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPhone, err.Error())
		return
	}

	h.logger.Error(message,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, errorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func parseOptionalUUID(raw string) uuid.NullUUID {
	if raw == "" {
		return uuid.NullUUID{}
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: id, Valid: true}
}
