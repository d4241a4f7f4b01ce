package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/data/repository/repotest"
	"tour-booking/internal/domain"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedStudent(t *testing.T, repo *repository.Repository, name string) *entity.Student {
	t.Helper()

	now := time.Now()
	student := &entity.Student{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   name,
		Age:    10,
		Class:  "4A",
		Gender: entity.GenderMale,
	}
	require.NoError(t, repo.Student.Create(context.Background(), student))
	return student
}

func seedTour(t *testing.T, repo *repository.Repository, title string) *entity.Tour {
	t.Helper()

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       title,
		Description: "A day trip",
		Date:        now.AddDate(0, 1, 0),
		Destination: "Bandung",
		Amount:      250000,
	}
	require.NoError(t, repo.Tour.Create(context.Background(), tour))
	return tour
}

func asCaller(user *entity.User) Caller {
	return Caller{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func TestBookingCreate(t *testing.T) {
	repo := repotest.NewRepository()
	svc := NewBookingService(repo, zap.NewNop())

	parent := seedUser(t, repo, "budi", "secret123", entity.RoleParent, true)
	student := seedStudent(t, repo, "Agus")
	tour := seedTour(t, repo, "Museum Trip")

	t.Run("parent id and status come from the server", func(t *testing.T) {
		booking, err := svc.Create(context.Background(), asCaller(parent), &request.BookingRequest{
			StudentID:   student.ID.String(),
			TourID:      tour.ID.String(),
			BookingDate: "2026-09-15",
			Amount:      250000,
		})
		require.NoError(t, err)

		assert.Equal(t, parent.ID.String(), booking.ParentID)
		assert.Equal(t, entity.BookingStatusPending, booking.Status)
		assert.Equal(t, "2026-09-15", booking.BookingDate)
		assert.Equal(t, "Agus", booking.StudentName)
		assert.Equal(t, "Museum Trip", booking.TourTitle)
		assert.Equal(t, "budi", booking.ParentName)
	})

	t.Run("unknown student is a validation error", func(t *testing.T) {
		_, err := svc.Create(context.Background(), asCaller(parent), &request.BookingRequest{
			StudentID:   uuid.NewString(),
			TourID:      tour.ID.String(),
			BookingDate: "2026-09-15",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.EqualError(t, err, "student: does not exist")
	})

	t.Run("unknown tour is a validation error", func(t *testing.T) {
		_, err := svc.Create(context.Background(), asCaller(parent), &request.BookingRequest{
			StudentID:   student.ID.String(),
			TourID:      uuid.NewString(),
			BookingDate: "2026-09-15",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.EqualError(t, err, "tour: does not exist")
	})

	t.Run("malformed date fails validation", func(t *testing.T) {
		_, err := svc.Create(context.Background(), asCaller(parent), &request.BookingRequest{
			StudentID:   student.ID.String(),
			TourID:      tour.ID.String(),
			BookingDate: "15-09-2026",
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestBookingListAndGet(t *testing.T) {
	repo := repotest.NewRepository()
	svc := NewBookingService(repo, zap.NewNop())

	staff := seedUser(t, repo, "admin", "secret123", entity.RoleStaff, true)
	budi := seedUser(t, repo, "budi", "secret123", entity.RoleParent, true)
	siti := seedUser(t, repo, "siti", "secret123", entity.RoleParent, true)
	student := seedStudent(t, repo, "Agus")
	tour := seedTour(t, repo, "Museum Trip")

	mkBooking := func(caller Caller) string {
		booking, err := svc.Create(context.Background(), caller, &request.BookingRequest{
			StudentID:   student.ID.String(),
			TourID:      tour.ID.String(),
			BookingDate: "2026-09-15",
			Amount:      250000,
		})
		require.NoError(t, err)
		return booking.ID
	}

	budiBooking := mkBooking(asCaller(budi))
	mkBooking(asCaller(siti))
	mkBooking(asCaller(siti))

	t.Run("staff sees every booking", func(t *testing.T) {
		bookings, err := svc.List(context.Background(), asCaller(staff))
		require.NoError(t, err)
		assert.Len(t, bookings, 3)
	})

	t.Run("parent sees only their own", func(t *testing.T) {
		bookings, err := svc.List(context.Background(), asCaller(budi))
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, budiBooking, bookings[0].ID)
	})

	t.Run("parent cannot read another parent's booking", func(t *testing.T) {
		_, err := svc.Get(context.Background(), asCaller(siti), uuid.MustParse(budiBooking))
		require.Error(t, err)
		assert.True(t, domain.IsPermission(err))
	})

	t.Run("staff can read any booking", func(t *testing.T) {
		booking, err := svc.Get(context.Background(), asCaller(staff), uuid.MustParse(budiBooking))
		require.NoError(t, err)
		assert.Equal(t, budiBooking, booking.ID)
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), asCaller(staff), uuid.New())
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestBookingPatch(t *testing.T) {
	repo := repotest.NewRepository()
	svc := NewBookingService(repo, zap.NewNop())

	staff := seedUser(t, repo, "admin", "secret123", entity.RoleStaff, true)
	budi := seedUser(t, repo, "budi", "secret123", entity.RoleParent, true)
	siti := seedUser(t, repo, "siti", "secret123", entity.RoleParent, true)
	agus := seedStudent(t, repo, "Agus")
	rina := seedStudent(t, repo, "Rina")
	tour := seedTour(t, repo, "Museum Trip")

	booking, err := svc.Create(context.Background(), asCaller(budi), &request.BookingRequest{
		StudentID:   agus.ID.String(),
		TourID:      tour.ID.String(),
		BookingDate: "2026-09-15",
		Amount:      250000,
	})
	require.NoError(t, err)
	bookingID := uuid.MustParse(booking.ID)

	strPtr := func(s string) *string { return &s }

	t.Run("parent patch applies only the student field", func(t *testing.T) {
		patched, err := svc.Patch(context.Background(), asCaller(budi), bookingID, &request.BookingPatch{
			StudentID: strPtr(rina.ID.String()),
			Status:    strPtr("confirmed"),
			Amount:    func(v int) *int { return &v }(1),
		})
		require.NoError(t, err)

		assert.Equal(t, rina.ID.String(), patched.StudentID)
		// the rest of the payload is silently ignored
		assert.Equal(t, entity.BookingStatusPending, patched.Status)
		assert.Equal(t, 250000, patched.Amount)
	})

	t.Run("parent cannot patch someone else's booking", func(t *testing.T) {
		_, err := svc.Patch(context.Background(), asCaller(siti), bookingID, &request.BookingPatch{
			StudentID: strPtr(agus.ID.String()),
		})
		require.Error(t, err)
		assert.True(t, domain.IsPermission(err))
	})

	t.Run("staff patch applies every field", func(t *testing.T) {
		patched, err := svc.Patch(context.Background(), asCaller(staff), bookingID, &request.BookingPatch{
			Status:      strPtr("confirmed"),
			BookingDate: strPtr("2026-10-01"),
		})
		require.NoError(t, err)

		assert.Equal(t, "confirmed", patched.Status)
		assert.Equal(t, "2026-10-01", patched.BookingDate)
		assert.Equal(t, rina.ID.String(), patched.StudentID)
	})

	t.Run("parent cannot move their booking to a missing student", func(t *testing.T) {
		_, err := svc.Patch(context.Background(), asCaller(budi), bookingID, &request.BookingPatch{
			StudentID: strPtr(uuid.NewString()),
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
