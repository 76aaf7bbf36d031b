package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/config"
	"github.com/venuehq/sms-dispatch/internal/metrics"
	"github.com/venuehq/sms-dispatch/internal/models"
	"github.com/venuehq/sms-dispatch/internal/provider"
	"github.com/venuehq/sms-dispatch/internal/repository"
)

// errProviderUnavailable marks provider-side failures inside the breaker so
// that only transient transport conditions count toward tripping it.
var errProviderUnavailable = errors.New("provider call failed")

type dispatchService struct {
	cfg            *config.Config
	repo           repository.Repository
	smsProvider    provider.SmsProvider
	redisClient    *redis.Client
	circuitBreaker *CircuitBreaker
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

func NewDispatchService(
	cfg *config.Config,
	repo repository.Repository,
	smsProvider provider.SmsProvider,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) DispatchService {
	cb := NewCircuitBreaker(&cfg.SMS.CircuitBreaker, logger)

	return &dispatchService{
		cfg:            cfg,
		repo:           repo,
		smsProvider:    smsProvider,
		redisClient:    redisClient,
		circuitBreaker: cb,
		metrics:        m,
		logger:         logger,
	}
}

// Dispatch sequences one send attempt: resolve the venue's active number,
// gate on consent, call the provider, classify the outcome and append the
// audit entry. Every classifiable path terminates in exactly one audit row;
// only infrastructure faults (storage errors, cancellation) return an error.
func (s *dispatchService) Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error) {
	phone, err := models.NewPhoneNumber(req.PhoneNumber)
	if err != nil {
		return s.finish(ctx, req, nil, &DispatchResult{
			Status:       models.SendStatusFailed,
			ErrorCode:    models.ErrorCodeInvalidPhone,
			ErrorMessage: err.Error(),
		})
	}

	number, err := s.repo.VenueNumber().GetActive(ctx, req.VenueID, s.smsProvider.Name())
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveNumber) {
			return s.finish(ctx, req, nil, &DispatchResult{
				Status:       models.SendStatusFailed,
				ErrorCode:    models.ErrorCodeNoActiveNumber,
				ErrorMessage: "venue has no active outbound number for the configured provider",
			})
		}
		return nil, fmt.Errorf("failed to resolve active number: %w", err)
	}

	consent, err := s.repo.Consent().GetByVenueAndPhone(ctx, req.VenueID, phone.String())
	switch {
	case errors.Is(err, repository.ErrConsentNotFound):
		// Absence of consent is not implicit permission.
		return s.finish(ctx, req, number, &DispatchResult{
			Status: models.SendStatusSkippedNoConsent,
		})
	case err != nil:
		return nil, fmt.Errorf("failed to look up consent: %w", err)
	case consent.Status == models.ConsentStatusOptedOut:
		return s.finish(ctx, req, number, &DispatchResult{
			Status: models.SendStatusBlockedOptedOut,
		})
	}

	result, err := s.callProvider(ctx, provider.SendRequest{
		PhoneNumber: phone,
		Message:     req.Message,
		CallbackURL: s.callbackURL(req),
	})
	if err != nil {
		return nil, err
	}

	res := &DispatchResult{}
	if result.Success {
		res.Status = models.SendStatusSent
		res.Success = true
		res.ProviderMessageID = result.MessageID
		s.cacheMessageID(ctx, result.MessageID, req.VenueID)
	} else {
		res.Status = models.SendStatusFailed
		res.ErrorCode = result.ErrorCode
		res.ErrorMessage = result.ErrorMessage
	}

	return s.finish(ctx, req, number, res)
}

// callProvider invokes the adapter through the circuit breaker. Cancellation
// propagates as an error; a rejected or failed call becomes a normalized
// failure result.
func (s *dispatchService) callProvider(ctx context.Context, preq provider.SendRequest) (*provider.SendResult, error) {
	var result *provider.SendResult

	start := time.Now()
	execErr := s.circuitBreaker.Execute(ctx, func() error {
		res, sendErr := s.smsProvider.Send(ctx, preq)
		if sendErr != nil {
			return sendErr
		}
		result = res
		if !res.Success && res.ErrorCode.IsTransient() {
			return errProviderUnavailable
		}
		return nil
	})
	s.metrics.ProviderSendDuration.WithLabelValues(string(s.smsProvider.Name())).Observe(time.Since(start).Seconds())

	if result != nil {
		return result, nil
	}

	if execErr != nil {
		if errors.Is(execErr, context.Canceled) || errors.Is(execErr, context.DeadlineExceeded) {
			return nil, execErr
		}
		return &provider.SendResult{
			ErrorCode:    models.ErrorCodeProviderError,
			ErrorMessage: execErr.Error(),
		}, nil
	}

	// Breaker reported success without a result; treat as a provider fault.
	return &provider.SendResult{
		ErrorCode:    models.ErrorCodeProviderError,
		ErrorMessage: "provider returned no result",
	}, nil
}

// finish writes the audit entry for the classified outcome and returns the
// result. A failed audit write fails the whole attempt: silently losing an
// audit record is not acceptable for a compliance system.
func (s *dispatchService) finish(ctx context.Context, req DispatchRequest, number *models.VenuePhoneNumber, res *DispatchResult) (*DispatchResult, error) {
	entry := &models.SendHistoryEntry{
		OrderID:             req.OrderID,
		VenueID:             req.VenueID,
		CustomerID:          req.CustomerID,
		CustomerPhoneNumber: req.PhoneNumber,
		Message:             req.Message,
		ProviderName:        s.smsProvider.Name(),
		Status:              res.Status,
	}

	if number != nil {
		entry.VenuePhoneNumberID = sql.NullInt64{Int64: number.ID, Valid: true}
	}
	if res.ProviderMessageID != "" {
		entry.ProviderMessageID = sql.NullString{String: res.ProviderMessageID, Valid: true}
	}
	if res.ErrorCode != "" {
		entry.ErrorCode = sql.NullString{String: string(res.ErrorCode), Valid: true}
	}

	if _, err := s.repo.SendHistory().Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record send history",
			zap.Int64("venueID", req.VenueID),
			zap.String("status", string(res.Status)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to record send history: %w", err)
	}

	s.metrics.DispatchAttempts.WithLabelValues(string(s.smsProvider.Name()), string(res.Status)).Inc()

	s.logger.Info("Dispatch attempt completed",
		zap.Int64("venueID", req.VenueID),
		zap.String("status", string(res.Status)),
		zap.String("errorCode", string(res.ErrorCode)),
		zap.String("providerMessageID", res.ProviderMessageID))

	return res, nil
}

// CircuitBreakerStatus reports the provider breaker state for health checks.
func (s *dispatchService) CircuitBreakerStatus() (state string, requests, failures uint32) {
	state = s.circuitBreaker.GetState()
	requests, failures = s.circuitBreaker.GetCounts()
	return
}

func (s *dispatchService) callbackURL(req DispatchRequest) string {
	if req.CallbackURL != "" {
		return req.CallbackURL
	}
	return s.cfg.SMS.CallbackURL
}

// cacheMessageID stores the provider message id in Redis best-effort; a
// cache failure never affects the dispatch outcome.
func (s *dispatchService) cacheMessageID(ctx context.Context, messageID string, venueID int64) {
	if s.redisClient == nil {
		return
	}

	cacheKey := fmt.Sprintf("sms:message:%s", messageID)
	cacheValue := fmt.Sprintf("%d:%s", venueID, time.Now().Format(time.RFC3339))

	if err := s.redisClient.Set(ctx, cacheKey, cacheValue, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache provider message ID",
			zap.String("messageID", messageID),
			zap.Error(err))
	}
}
