package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository/repotest"
	"tour-booking/internal/domain"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentCreate(t *testing.T) {
	repo := repotest.NewRepository()
	payments := NewPaymentService(repo, zap.NewNop())
	bookings := NewBookingService(repo, zap.NewNop())

	parent := seedUser(t, repo, "budi", "secret123", entity.RoleParent, true)
	student := seedStudent(t, repo, "Agus")
	tour := seedTour(t, repo, "Museum Trip")

	booking, err := bookings.Create(context.Background(), asCaller(parent), &request.BookingRequest{
		StudentID:   student.ID.String(),
		TourID:      tour.ID.String(),
		BookingDate: "2026-09-15",
		Amount:      250000,
	})
	require.NoError(t, err)

	strPtr := func(s string) *string { return &s }

	t.Run("with booking link resolves parent name", func(t *testing.T) {
		payment, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      250000,
			Method:      "cash",
			Status:      "paid",
			PaymentDate: "2026-09-10",
			StudentID:   student.ID.String(),
			BookingID:   strPtr(booking.ID),
		})
		require.NoError(t, err)

		assert.Equal(t, "Agus", payment.StudentName)
		require.NotNil(t, payment.ParentName)
		assert.Equal(t, parent.DisplayName(), *payment.ParentName)
	})

	t.Run("without booking link parent name is null", func(t *testing.T) {
		payment, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      100000,
			Method:      "bank",
			Status:      "pending",
			PaymentDate: "2026-09-11",
			StudentID:   student.ID.String(),
		})
		require.NoError(t, err)

		assert.Equal(t, "Agus", payment.StudentName)
		assert.Nil(t, payment.ParentName)
	})

	t.Run("unknown student is rejected", func(t *testing.T) {
		_, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      100000,
			Method:      "cash",
			Status:      "paid",
			PaymentDate: "2026-09-10",
			StudentID:   uuid.NewString(),
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.EqualError(t, err, "student: does not exist")
	})

	t.Run("unknown booking is rejected", func(t *testing.T) {
		_, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      100000,
			Method:      "cash",
			Status:      "paid",
			PaymentDate: "2026-09-10",
			StudentID:   student.ID.String(),
			BookingID:   strPtr(uuid.NewString()),
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.EqualError(t, err, "booking: does not exist")
	})

	t.Run("patch without the booking field keeps the link", func(t *testing.T) {
		created, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      250000,
			Method:      "card",
			Status:      "paid",
			PaymentDate: "2026-09-12",
			StudentID:   student.ID.String(),
			BookingID:   strPtr(booking.ID),
		})
		require.NoError(t, err)

		var patch request.PaymentPatch
		require.NoError(t, json.Unmarshal([]byte(`{"amount": 300000}`), &patch))

		updated, err := payments.Patch(context.Background(), uuid.MustParse(created.ID), &patch)
		require.NoError(t, err)
		assert.Equal(t, 300000, updated.Amount)
		require.NotNil(t, updated.BookingID)
		assert.Equal(t, booking.ID, *updated.BookingID)
	})

	t.Run("patch with booking null clears the link", func(t *testing.T) {
		created, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      250000,
			Method:      "card",
			Status:      "paid",
			PaymentDate: "2026-09-12",
			StudentID:   student.ID.String(),
			BookingID:   strPtr(booking.ID),
		})
		require.NoError(t, err)
		require.NotNil(t, created.BookingID)

		var patch request.PaymentPatch
		require.NoError(t, json.Unmarshal([]byte(`{"booking": null}`), &patch))

		updated, err := payments.Patch(context.Background(), uuid.MustParse(created.ID), &patch)
		require.NoError(t, err)
		assert.Nil(t, updated.BookingID)
		assert.Nil(t, updated.ParentName)
	})

	t.Run("patch can relink a booking", func(t *testing.T) {
		created, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      100000,
			Method:      "mobile",
			Status:      "pending",
			PaymentDate: "2026-09-13",
			StudentID:   student.ID.String(),
		})
		require.NoError(t, err)

		var patch request.PaymentPatch
		require.NoError(t, json.Unmarshal([]byte(`{"booking": "`+booking.ID+`"}`), &patch))

		updated, err := payments.Patch(context.Background(), uuid.MustParse(created.ID), &patch)
		require.NoError(t, err)
		require.NotNil(t, updated.BookingID)
		assert.Equal(t, booking.ID, *updated.BookingID)
		require.NotNil(t, updated.ParentName)
		assert.Equal(t, parent.DisplayName(), *updated.ParentName)
	})

	t.Run("bad method fails validation", func(t *testing.T) {
		_, err := payments.Create(context.Background(), &request.PaymentRequest{
			Amount:      100000,
			Method:      "crypto",
			Status:      "paid",
			PaymentDate: "2026-09-10",
			StudentID:   student.ID.String(),
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
