package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehq/sms-dispatch/internal/models"
	"github.com/venuehq/sms-dispatch/internal/repository"
)

func TestVenueNumberRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewVenueNumberRepository(db)
	ctx := context.Background()

	assignParams := func(venueID int64) repository.AssignNumberParams {
		return repository.AssignNumberParams{
			VenueID:            venueID,
			ProviderName:       models.ProviderTwilio,
			PhoneNumber:        "+15005550006",
			ProviderExternalID: "PN123",
		}
	}

	t.Run("Assign and GetActive", func(t *testing.T) {
		cleanupTestData(db)

		assigned, err := repo.Assign(ctx, assignParams(1))
		require.NoError(t, err)
		assert.Equal(t, models.NumberStatusActive, assigned.Status)
		assert.False(t, assigned.ReleasedAt.Valid)

		active, err := repo.GetActive(ctx, 1, models.ProviderTwilio)
		require.NoError(t, err)
		assert.Equal(t, assigned.ID, active.ID)
		assert.Equal(t, "+15005550006", active.PhoneNumber)
	})

	t.Run("GetActive for venue without number", func(t *testing.T) {
		cleanupTestData(db)

		_, err := repo.GetActive(ctx, 99, models.ProviderTwilio)
		require.ErrorIs(t, err, repository.ErrNoActiveNumber)
	})

	t.Run("second active assignment is rejected", func(t *testing.T) {
		cleanupTestData(db)

		_, err := repo.Assign(ctx, assignParams(1))
		require.NoError(t, err)

		_, err = repo.Assign(ctx, assignParams(1))
		require.ErrorIs(t, err, repository.ErrActiveNumberExists)
	})

	t.Run("same venue may hold active numbers at different providers", func(t *testing.T) {
		cleanupTestData(db)

		_, err := repo.Assign(ctx, assignParams(1))
		require.NoError(t, err)

		plivoParams := assignParams(1)
		plivoParams.ProviderName = models.ProviderPlivo
		_, err = repo.Assign(ctx, plivoParams)
		require.NoError(t, err)
	})

	t.Run("concurrent assignments produce exactly one active number", func(t *testing.T) {
		cleanupTestData(db)

		const workers = 8

		var wg sync.WaitGroup
		errs := make([]error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = repo.Assign(ctx, assignParams(1))
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				require.ErrorIs(t, err, repository.ErrActiveNumberExists)
			}
		}
		assert.Equal(t, 1, succeeded)

		var activeCount int
		err := db.Get(&activeCount,
			"SELECT COUNT(*) FROM venue_phone_numbers WHERE venue_id = 1 AND provider_name = 'twilio' AND status = 'active'")
		require.NoError(t, err)
		assert.Equal(t, 1, activeCount)
	})

	t.Run("Release transitions active number", func(t *testing.T) {
		cleanupTestData(db)

		assigned, err := repo.Assign(ctx, assignParams(1))
		require.NoError(t, err)

		require.NoError(t, repo.Release(ctx, assigned.ID))

		_, err = repo.GetActive(ctx, 1, models.ProviderTwilio)
		require.ErrorIs(t, err, repository.ErrNoActiveNumber)

		var status string
		require.NoError(t, db.Get(&status, "SELECT status FROM venue_phone_numbers WHERE id = $1", assigned.ID))
		assert.Equal(t, "released", status)
	})

	t.Run("Release of non-active number fails", func(t *testing.T) {
		cleanupTestData(db)

		assigned, err := repo.Assign(ctx, assignParams(1))
		require.NoError(t, err)

		require.NoError(t, repo.Release(ctx, assigned.ID))
		require.ErrorIs(t, repo.Release(ctx, assigned.ID), repository.ErrNumberNotActive)
		require.ErrorIs(t, repo.Release(ctx, 9999), repository.ErrNumberNotActive)
	})

	t.Run("new number can be assigned after release", func(t *testing.T) {
		cleanupTestData(db)

		first, err := repo.Assign(ctx, assignParams(1))
		require.NoError(t, err)
		require.NoError(t, repo.Release(ctx, first.ID))

		second, err := repo.Assign(ctx, assignParams(1))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}
