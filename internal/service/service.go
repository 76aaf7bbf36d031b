package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/config"
	"github.com/venuehq/sms-dispatch/internal/metrics"
	"github.com/venuehq/sms-dispatch/internal/provider"
	"github.com/venuehq/sms-dispatch/internal/repository"
)

// Service aggregates the application services consumed by the HTTP layer.
type Service struct {
	Dispatch DispatchService
	Consent  ConsentService
	Number   NumberService
	History  HistoryService
	Health   HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	smsProvider provider.SmsProvider,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	dispatchService := NewDispatchService(cfg, repo, smsProvider, redisClient, m, logger)
	consentService := NewConsentService(repo, logger)
	numberService := NewNumberService(repo, logger)
	historyService := NewHistoryService(repo)
	healthService := NewHealthService(repo, redisClient, dispatchService)

	return &Service{
		Dispatch: dispatchService,
		Consent:  consentService,
		Number:   numberService,
		History:  historyService,
		Health:   healthService,
	}
}
