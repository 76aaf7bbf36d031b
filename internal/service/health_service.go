package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sony/gobreaker"

	"github.com/venuehq/sms-dispatch/internal/repository"
)

type healthService struct {
	repo            repository.Repository
	redisClient     *redis.Client
	dispatchService DispatchService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	dispatchService DispatchService,
) HealthService {
	return &healthService{
		repo:            repo,
		redisClient:     redisClient,
		dispatchService: dispatchService,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status: HealthStatusHealthy,
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth(ctx)

	state, requests, failures := s.dispatchService.CircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerCounts = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerCounts = "No requests yet"
	}

	if status.DatabaseStatus != ComponentStatusConnected || status.RedisStatus != ComponentStatusConnected {
		status.Status = HealthStatusUnhealthy
	}

	// An open breaker means the provider is failing but the service itself
	// is still reachable.
	if state == gobreaker.StateOpen.String() && status.Status == HealthStatusHealthy {
		status.Status = HealthStatusDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() string {
	if err := s.repo.Ping(); err != nil {
		return ComponentStatusDisconnected
	}
	return ComponentStatusConnected
}

func (s *healthService) checkRedisHealth(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return ComponentStatusDisconnected
	}

	return ComponentStatusConnected
}
