package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/models"
	"github.com/venuehq/sms-dispatch/internal/repository"
)

type numberService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewNumberService(repo repository.Repository, logger *zap.Logger) NumberService {
	return &numberService{
		repo:   repo,
		logger: logger,
	}
}

func (s *numberService) GetActiveNumber(ctx context.Context, venueID int64, providerName models.ProviderName) (*models.VenuePhoneNumber, error) {
	return s.repo.VenueNumber().GetActive(ctx, venueID, providerName)
}

// Assign provisions a number as the venue's active outbound number for a
// provider. The uniqueness of the active number is enforced by the storage
// layer; repository.ErrActiveNumberExists propagates unchanged.
func (s *numberService) Assign(ctx context.Context, req AssignNumberRequest) (*models.VenuePhoneNumber, error) {
	providerName, err := models.ParseProviderName(req.ProviderName)
	if err != nil {
		return nil, err
	}

	phone, err := models.NewPhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	number, err := s.repo.VenueNumber().Assign(ctx, repository.AssignNumberParams{
		VenueID:            req.VenueID,
		ProviderName:       providerName,
		PhoneNumber:        phone.String(),
		ProviderExternalID: req.ProviderExternalID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Phone number assigned",
		zap.Int64("venueID", req.VenueID),
		zap.String("provider", string(providerName)),
		zap.Int64("numberID", number.ID))

	return number, nil
}

func (s *numberService) Release(ctx context.Context, id int64) error {
	if err := s.repo.VenueNumber().Release(ctx, id); err != nil {
		return fmt.Errorf("failed to release number %d: %w", id, err)
	}

	s.logger.Info("Phone number released", zap.Int64("numberID", id))
	return nil
}
