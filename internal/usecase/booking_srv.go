package usecase

import (
	"context"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/domain"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService is role aware and therefore does not fit the generic
// resource contract: every operation takes the authenticated caller.
type BookingService interface {
	List(ctx context.Context, caller Caller) ([]response.BookingResponse, error)
	Get(ctx context.Context, caller Caller, id uuid.UUID) (response.BookingResponse, error)
	Create(ctx context.Context, caller Caller, req *request.BookingRequest) (response.BookingResponse, error)
	Patch(ctx context.Context, caller Caller, id uuid.UUID, patch *request.BookingPatch) (response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log,
	}
}

// List returns every booking for staff and only the caller's own
// bookings for parents.
func (s *bookingService) List(ctx context.Context, caller Caller) ([]response.BookingResponse, error) {
	var (
		bookings []*entity.BookingDetail
		err      error
	)

	if caller.Role == entity.RoleStaff {
		bookings, err = s.repo.Booking.FindAll(ctx)
	} else {
		bookings, err = s.repo.Booking.FindByParentID(ctx, caller.ID)
	}
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}

	resp := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, response.BookingToResponse(booking))
	}
	return resp, nil
}

func (s *bookingService) Get(ctx context.Context, caller Caller, id uuid.UUID) (response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return response.BookingResponse{}, err
	}

	if caller.Role != entity.RoleStaff && booking.ParentID != caller.ID {
		return response.BookingResponse{}, domain.PermissionError{Msg: "you do not have access to this booking"}
	}

	return response.BookingToResponse(booking), nil
}

// Create always books on behalf of the caller: the parent id comes
// from the token, never from the payload, and status starts pending.
func (s *bookingService) Create(ctx context.Context, caller Caller, req *request.BookingRequest) (response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return response.BookingResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	studentID, err := s.resolveStudent(ctx, req.StudentID)
	if err != nil {
		return response.BookingResponse{}, err
	}

	tourID, err := s.resolveTour(ctx, req.TourID)
	if err != nil {
		return response.BookingResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.BookingDate)

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ParentID:    caller.ID,
		StudentID:   studentID,
		TourID:      tourID,
		BookingDate: date,
		Status:      entity.BookingStatusPending,
		Amount:      req.Amount,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return response.BookingResponse{}, domain.InternalError{Msg: "failed to create booking", Err: err}
	}

	detail, err := s.findBooking(ctx, booking.ID)
	if err != nil {
		return response.BookingResponse{}, err
	}
	return response.BookingToResponse(detail), nil
}

// Patch applies the payload according to the caller's role. Staff may
// change any writable field. Parents may only move their own booking to
// another student; every other field in their payload is ignored.
func (s *bookingService) Patch(ctx context.Context, caller Caller, id uuid.UUID, patch *request.BookingPatch) (response.BookingResponse, error) {
	if errs := utils.ValidateStruct(patch); len(errs) > 0 {
		return response.BookingResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	existing, err := s.findBooking(ctx, id)
	if err != nil {
		return response.BookingResponse{}, err
	}

	booking := existing.Booking

	switch caller.Role {
	case entity.RoleStaff:
		if patch.StudentID != nil {
			studentID, err := s.resolveStudent(ctx, *patch.StudentID)
			if err != nil {
				return response.BookingResponse{}, err
			}
			booking.StudentID = studentID
		}
		if patch.TourID != nil {
			tourID, err := s.resolveTour(ctx, *patch.TourID)
			if err != nil {
				return response.BookingResponse{}, err
			}
			booking.TourID = tourID
		}
		if patch.BookingDate != nil {
			date, _ := time.Parse("2006-01-02", *patch.BookingDate)
			booking.BookingDate = date
		}
		if patch.Status != nil {
			booking.Status = *patch.Status
		}
		if patch.Amount != nil {
			booking.Amount = *patch.Amount
		}
	case entity.RoleParent:
		if booking.ParentID != caller.ID {
			return response.BookingResponse{}, domain.PermissionError{Msg: "you do not have access to this booking"}
		}
		if patch.StudentID != nil {
			studentID, err := s.resolveStudent(ctx, *patch.StudentID)
			if err != nil {
				return response.BookingResponse{}, err
			}
			booking.StudentID = studentID
		}
	default:
		return response.BookingResponse{}, domain.PermissionError{Msg: "you do not have access to this booking"}
	}

	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, &booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", id.String()))
		return response.BookingResponse{}, domain.InternalError{Msg: "failed to update booking", Err: err}
	}

	detail, err := s.findBooking(ctx, id)
	if err != nil {
		return response.BookingResponse{}, err
	}
	return response.BookingToResponse(detail), nil
}

func (s *bookingService) findBooking(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, domain.InternalError{Msg: "failed to find booking", Err: err}
	}
	if booking == nil {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	return booking, nil
}

func (s *bookingService) resolveStudent(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ValidationError{Field: "student", Msg: "must be a valid UUID"}
	}

	student, err := s.repo.Student.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check student", zap.Error(err), zap.String("student_id", id.String()))
		return uuid.Nil, domain.InternalError{Msg: "failed to check student", Err: err}
	}
	if student == nil {
		return uuid.Nil, domain.ValidationError{Field: "student", Msg: "does not exist"}
	}

	return id, nil
}

func (s *bookingService) resolveTour(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ValidationError{Field: "tour", Msg: "must be a valid UUID"}
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check tour", zap.Error(err), zap.String("tour_id", id.String()))
		return uuid.Nil, domain.InternalError{Msg: "failed to check tour", Err: err}
	}
	if tour == nil {
		return uuid.Nil, domain.ValidationError{Field: "tour", Msg: "does not exist"}
	}

	return id, nil
}
