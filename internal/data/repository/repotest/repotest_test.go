package repotest

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fakes must behave like the SQL repositories at the seam: reads
// return nil for missing rows, writes to missing rows fail.
func TestFakeWriteSemantics(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	missing := uuid.New()

	t.Run("booking update on a missing row fails", func(t *testing.T) {
		err := repo.Booking.Update(ctx, &entity.Booking{Base: entity.Base{ID: missing}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("student delete on a missing row fails", func(t *testing.T) {
		err := repo.Student.Delete(ctx, missing)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("payment update on a missing row fails", func(t *testing.T) {
		err := repo.Payment.Update(ctx, &entity.Payment{Base: entity.Base{ID: missing}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("reads on missing rows stay nil, nil", func(t *testing.T) {
		user, err := repo.User.FindByID(ctx, missing)
		require.NoError(t, err)
		assert.Nil(t, user)

		booking, err := repo.Booking.FindByID(ctx, missing)
		require.NoError(t, err)
		assert.Nil(t, booking)
	})

	t.Run("booking update keeps the parent immutable", func(t *testing.T) {
		now := time.Now()
		booking := &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ParentID:    uuid.New(),
			StudentID:   uuid.New(),
			TourID:      uuid.New(),
			BookingDate: now,
			Status:      entity.BookingStatusPending,
		}
		require.NoError(t, repo.Booking.Create(ctx, booking))

		moved := *booking
		moved.ParentID = uuid.New()
		require.NoError(t, repo.Booking.Update(ctx, &moved))

		stored, err := repo.Booking.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, booking.ParentID, stored.ParentID)
	})
}
