package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/venuehq/sms-dispatch/internal/models"
	"github.com/venuehq/sms-dispatch/internal/repository"
	"github.com/venuehq/sms-dispatch/internal/repository/mocks"
)

func newConsentFixture(t *testing.T) (*mocks.MockConsentRepository, ConsentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	consentRepo := mocks.NewMockConsentRepository(ctrl)
	repo.EXPECT().Consent().Return(consentRepo).AnyTimes()

	return consentRepo, NewConsentService(repo, zap.NewNop())
}

func TestConsentService_GetStatus(t *testing.T) {
	consentRepo, svc := newConsentFixture(t)

	consentRepo.EXPECT().
		GetByVenueAndPhone(gomock.Any(), int64(7), "+12125551234").
		Return(&models.ConsentRecord{Status: models.ConsentStatusOptedIn}, nil)

	status, err := svc.GetStatus(context.Background(), 7, "+12125551234")
	require.NoError(t, err)
	assert.Equal(t, models.ConsentStatusOptedIn, status)
}

func TestConsentService_GetStatus_NotFound(t *testing.T) {
	consentRepo, svc := newConsentFixture(t)

	consentRepo.EXPECT().
		GetByVenueAndPhone(gomock.Any(), int64(7), "+12125551234").
		Return(nil, repository.ErrConsentNotFound)

	_, err := svc.GetStatus(context.Background(), 7, "+12125551234")
	require.ErrorIs(t, err, repository.ErrConsentNotFound)
}

func TestConsentService_GetStatus_InvalidPhone(t *testing.T) {
	_, svc := newConsentFixture(t)

	_, err := svc.GetStatus(context.Background(), 7, "not-a-phone")
	require.ErrorIs(t, err, models.ErrInvalidPhoneFormat)
}

func TestConsentService_RecordOptIn(t *testing.T) {
	consentRepo, svc := newConsentFixture(t)

	want := &models.ConsentRecord{
		ID:          1,
		VenueID:     7,
		PhoneNumber: "+12125551234",
		Status:      models.ConsentStatusOptedIn,
		Source:      models.ConsentSourceCheckout,
	}

	consentRepo.EXPECT().
		RecordOptIn(gomock.Any(), int64(7), "+12125551234", models.ConsentSourceCheckout).
		Return(want, nil)

	record, err := svc.RecordOptIn(context.Background(), 7, "+12125551234", models.ConsentSourceCheckout)
	require.NoError(t, err)
	assert.Equal(t, want, record)
}

func TestConsentService_RecordOptIn_InvalidPhone(t *testing.T) {
	_, svc := newConsentFixture(t)

	_, err := svc.RecordOptIn(context.Background(), 7, "12125551234", models.ConsentSourceCheckout)
	require.ErrorIs(t, err, models.ErrInvalidPhoneFormat)
}

func TestConsentService_RecordOptOut(t *testing.T) {
	consentRepo, svc := newConsentFixture(t)

	want := &models.ConsentRecord{
		ID:          1,
		VenueID:     7,
		PhoneNumber: "+12125551234",
		Status:      models.ConsentStatusOptedOut,
	}

	consentRepo.EXPECT().
		RecordOptOut(gomock.Any(), int64(7), "+12125551234").
		Return(want, nil)

	record, err := svc.RecordOptOut(context.Background(), 7, "+12125551234")
	require.NoError(t, err)
	assert.Equal(t, models.ConsentStatusOptedOut, record.Status)
}
