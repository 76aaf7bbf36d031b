package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/venuehq/sms-dispatch/internal/repository/mocks"
	"github.com/venuehq/sms-dispatch/internal/service"
	servicemocks "github.com/venuehq/sms-dispatch/internal/service/mocks"
)

// disconnectedRedis points at a closed port so redis health reads as down
// without any external dependency.
func disconnectedRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "localhost:1"})
}

func TestHealthService_GetHealth_RedisDisconnected(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockDispatch := servicemocks.NewMockDispatchService(ctrl)

	mockRepo.EXPECT().Ping().Return(nil)
	mockDispatch.EXPECT().CircuitBreakerStatus().Return("closed", uint32(100), uint32(5))

	healthService := service.NewHealthService(mockRepo, disconnectedRedis(), mockDispatch)

	status := healthService.GetHealth(context.Background())

	require.NotNil(t, status)
	assert.Equal(t, service.HealthStatusUnhealthy, status.Status)
	assert.Equal(t, service.ComponentStatusConnected, status.DatabaseStatus)
	assert.Equal(t, service.ComponentStatusDisconnected, status.RedisStatus)
	assert.Equal(t, "closed", status.CircuitBreakerState)
	assert.Equal(t, "Requests: 100, Failures: 5 (5.0%)", status.CircuitBreakerCounts)
}

func TestHealthService_GetHealth_DatabaseDisconnected(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockDispatch := servicemocks.NewMockDispatchService(ctrl)

	mockRepo.EXPECT().Ping().Return(errors.New("connection refused"))
	mockDispatch.EXPECT().CircuitBreakerStatus().Return("closed", uint32(0), uint32(0))

	healthService := service.NewHealthService(mockRepo, disconnectedRedis(), mockDispatch)

	status := healthService.GetHealth(context.Background())

	assert.Equal(t, service.HealthStatusUnhealthy, status.Status)
	assert.Equal(t, service.ComponentStatusDisconnected, status.DatabaseStatus)
	assert.Equal(t, "No requests yet", status.CircuitBreakerCounts)
}

func TestHealthService_GetHealth_OpenBreakerOutranksDisconnectedComponents(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockDispatch := servicemocks.NewMockDispatchService(ctrl)

	mockRepo.EXPECT().Ping().Return(errors.New("connection refused"))
	mockDispatch.EXPECT().CircuitBreakerStatus().Return("open", uint32(10), uint32(10))

	healthService := service.NewHealthService(mockRepo, disconnectedRedis(), mockDispatch)

	status := healthService.GetHealth(context.Background())

	// A dead database is unhealthy regardless of the breaker state.
	assert.Equal(t, service.HealthStatusUnhealthy, status.Status)
	assert.Equal(t, "open", status.CircuitBreakerState)
}
