package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository/repotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardStats(t *testing.T) {
	repo := repotest.NewRepository()
	svc := NewDashboardService(repo, zap.NewNop())

	t.Run("empty database counts zero", func(t *testing.T) {
		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 0, stats.TotalPayments)
		assert.EqualValues(t, 0, stats.TotalStudents)
		assert.EqualValues(t, 0, stats.TotalTours)
	})

	t.Run("counts reflect stored rows", func(t *testing.T) {
		seedStudent(t, repo, "Agus")
		seedStudent(t, repo, "Rina")
		seedStudent(t, repo, "Dewi")
		student := seedStudent(t, repo, "Joko")
		seedTour(t, repo, "Museum Trip")

		now := time.Now()
		for i := 0; i < 2; i++ {
			payment := &entity.Payment{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				Amount:      100000,
				Method:      entity.PaymentMethodCash,
				Status:      entity.PaymentStatusPaid,
				PaymentDate: now,
				StudentID:   student.ID,
			}
			require.NoError(t, repo.Payment.Create(context.Background(), payment))
		}

		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 2, stats.TotalPayments)
		assert.EqualValues(t, 4, stats.TotalStudents)
		assert.EqualValues(t, 1, stats.TotalTours)
	})
}
