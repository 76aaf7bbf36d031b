package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/models"
	"github.com/venuehq/sms-dispatch/internal/repository"
)

type consentService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewConsentService(repo repository.Repository, logger *zap.Logger) ConsentService {
	return &consentService{
		repo:   repo,
		logger: logger,
	}
}

// GetStatus returns the current consent status for a (venue, phone) pair.
// Propagates repository.ErrConsentNotFound when no record exists.
func (s *consentService) GetStatus(ctx context.Context, venueID int64, phoneNumber string) (models.ConsentStatus, error) {
	phone, err := models.NewPhoneNumber(phoneNumber)
	if err != nil {
		return "", err
	}

	record, err := s.repo.Consent().GetByVenueAndPhone(ctx, venueID, phone.String())
	if err != nil {
		return "", err
	}

	return record.Status, nil
}

func (s *consentService) RecordOptIn(ctx context.Context, venueID int64, phoneNumber string, source models.ConsentSource) (*models.ConsentRecord, error) {
	phone, err := models.NewPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Consent().RecordOptIn(ctx, venueID, phone.String(), source)
	if err != nil {
		return nil, fmt.Errorf("failed to record opt-in: %w", err)
	}

	s.logger.Info("Consent opt-in recorded",
		zap.Int64("venueID", venueID),
		zap.String("source", string(source)))

	return record, nil
}

func (s *consentService) RecordOptOut(ctx context.Context, venueID int64, phoneNumber string) (*models.ConsentRecord, error) {
	phone, err := models.NewPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Consent().RecordOptOut(ctx, venueID, phone.String())
	if err != nil {
		return nil, fmt.Errorf("failed to record opt-out: %w", err)
	}

	s.logger.Info("Consent opt-out recorded",
		zap.Int64("venueID", venueID))

	return record, nil
}
