package persistence

import (
	"context"
	"testing"

	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/training"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormSessionRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	trainerID := uuid.New()

	afternoon, err := training.NewSession(orderID, trainerID, "Go training",
		"2024-04-01", "14:00", "17:00", "Paris", "on-site")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, afternoon))

	morning, err := training.NewSession(orderID, trainerID, "Go training",
		"2024-04-01", "09:00", "12:00", "Paris", "on-site")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, morning))

	t.Run("matches the full schedule key", func(t *testing.T) {
		found, err := repo.FindBySchedule(ctx, orderID, "2024-04-01", "09:00", "12:00")
		require.NoError(t, err)
		assert.Equal(t, morning.ID, found.ID)
		assert.Equal(t, training.SessionStateConfirmed, found.State)

		_, err = repo.FindBySchedule(ctx, orderID, "2024-04-01", "09:00", "13:00")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindBySchedule(ctx, uuid.New(), "2024-04-01", "09:00", "12:00")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists sessions in schedule order", func(t *testing.T) {
		sessions, err := repo.ListByOrder(ctx, orderID)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, morning.ID, sessions[0].ID)
		assert.Equal(t, afternoon.ID, sessions[1].ID)
	})
}
