package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/venuehq/sms-dispatch/internal/models"
	"github.com/venuehq/sms-dispatch/internal/repository/mocks"
)

func TestHistoryService_ListByVenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	historyRepo := mocks.NewMockSendHistoryRepository(ctrl)
	repo.EXPECT().SendHistory().Return(historyRepo).AnyTimes()

	svc := NewHistoryService(repo)

	entries := []*models.SendHistoryEntry{
		{ID: 2, VenueID: 7, Status: models.SendStatusSent},
		{ID: 1, VenueID: 7, Status: models.SendStatusSkippedNoConsent},
	}

	// Page 2 with limit 10 translates to offset 10.
	historyRepo.EXPECT().
		ListByVenue(gomock.Any(), int64(7), 10, 10).
		Return(entries, nil)
	historyRepo.EXPECT().
		CountByVenue(gomock.Any(), int64(7)).
		Return(int64(25), nil)

	page, err := svc.ListByVenue(context.Background(), 7, 2, 10)
	require.NoError(t, err)

	assert.Equal(t, entries, page.Entries)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, int64(25), page.Pagination.TotalItems)
	assert.Equal(t, 10, page.Pagination.ItemsPerPage)
}
