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

// paymentService needs the student and booking repos as well: the
// linked rows are validated on write and the display names come from
// the joined read queries.
type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log,
	}
}

func (s *paymentService) List(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to list payments", Err: err}
	}

	resp := make([]response.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		resp = append(resp, response.PaymentToResponse(payment))
	}
	return resp, nil
}

func (s *paymentService) Get(ctx context.Context, id uuid.UUID) (response.PaymentResponse, error) {
	payment, err := s.findPayment(ctx, id)
	if err != nil {
		return response.PaymentResponse{}, err
	}
	return response.PaymentToResponse(payment), nil
}

func (s *paymentService) Create(ctx context.Context, req *request.PaymentRequest) (response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return response.PaymentResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	studentID, err := s.resolveStudent(ctx, req.StudentID)
	if err != nil {
		return response.PaymentResponse{}, err
	}

	bookingID, err := s.resolveBooking(ctx, req.BookingID)
	if err != nil {
		return response.PaymentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.PaymentDate)

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Amount:      req.Amount,
		Method:      entity.PaymentMethod(req.Method),
		Status:      entity.PaymentStatus(req.Status),
		PaymentDate: date,
		StudentID:   studentID,
		BookingID:   bookingID,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment", zap.Error(err))
		return response.PaymentResponse{}, domain.InternalError{Msg: "failed to create payment", Err: err}
	}

	// Re-read for the joined display fields.
	detail, err := s.findPayment(ctx, payment.ID)
	if err != nil {
		return response.PaymentResponse{}, err
	}
	return response.PaymentToResponse(detail), nil
}

func (s *paymentService) Replace(ctx context.Context, id uuid.UUID, req *request.PaymentRequest) (response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return response.PaymentResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	existing, err := s.findPayment(ctx, id)
	if err != nil {
		return response.PaymentResponse{}, err
	}

	studentID, err := s.resolveStudent(ctx, req.StudentID)
	if err != nil {
		return response.PaymentResponse{}, err
	}

	bookingID, err := s.resolveBooking(ctx, req.BookingID)
	if err != nil {
		return response.PaymentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.PaymentDate)

	payment := existing.Payment
	payment.Amount = req.Amount
	payment.Method = entity.PaymentMethod(req.Method)
	payment.Status = entity.PaymentStatus(req.Status)
	payment.PaymentDate = date
	payment.StudentID = studentID
	payment.BookingID = bookingID
	payment.UpdatedAt = time.Now()

	if err := s.repo.Payment.Update(ctx, &payment); err != nil {
		s.log.Error("Failed to update payment", zap.Error(err), zap.String("payment_id", id.String()))
		return response.PaymentResponse{}, domain.InternalError{Msg: "failed to update payment", Err: err}
	}

	detail, err := s.findPayment(ctx, id)
	if err != nil {
		return response.PaymentResponse{}, err
	}
	return response.PaymentToResponse(detail), nil
}

func (s *paymentService) Patch(ctx context.Context, id uuid.UUID, patch *request.PaymentPatch) (response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(patch); len(errs) > 0 {
		return response.PaymentResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	existing, err := s.findPayment(ctx, id)
	if err != nil {
		return response.PaymentResponse{}, err
	}

	payment := existing.Payment

	if patch.Amount != nil {
		payment.Amount = *patch.Amount
	}
	if patch.Method != nil {
		payment.Method = entity.PaymentMethod(*patch.Method)
	}
	if patch.Status != nil {
		payment.Status = entity.PaymentStatus(*patch.Status)
	}
	if patch.PaymentDate != nil {
		date, _ := time.Parse("2006-01-02", *patch.PaymentDate)
		payment.PaymentDate = date
	}
	if patch.StudentID != nil {
		studentID, err := s.resolveStudent(ctx, *patch.StudentID)
		if err != nil {
			return response.PaymentResponse{}, err
		}
		payment.StudentID = studentID
	}
	if patch.BookingID.Set {
		// an explicit null clears the link
		bookingID, err := s.resolveBooking(ctx, patch.BookingID.Value)
		if err != nil {
			return response.PaymentResponse{}, err
		}
		payment.BookingID = bookingID
	}
	payment.UpdatedAt = time.Now()

	if err := s.repo.Payment.Update(ctx, &payment); err != nil {
		s.log.Error("Failed to update payment", zap.Error(err), zap.String("payment_id", id.String()))
		return response.PaymentResponse{}, domain.InternalError{Msg: "failed to update payment", Err: err}
	}

	detail, err := s.findPayment(ctx, id)
	if err != nil {
		return response.PaymentResponse{}, err
	}
	return response.PaymentToResponse(detail), nil
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findPayment(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Payment.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete payment", zap.Error(err), zap.String("payment_id", id.String()))
		return domain.InternalError{Msg: "failed to delete payment", Err: err}
	}

	return nil
}

func (s *paymentService) findPayment(ctx context.Context, id uuid.UUID) (*entity.PaymentDetail, error) {
	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find payment", zap.Error(err), zap.String("payment_id", id.String()))
		return nil, domain.InternalError{Msg: "failed to find payment", Err: err}
	}
	if payment == nil {
		return nil, domain.NotFoundError{Resource: "payment"}
	}
	return payment, nil
}

// resolveStudent verifies the referenced student exists.
func (s *paymentService) resolveStudent(ctx context.Context, raw string) (uuid.UUID, error) {
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

// resolveBooking verifies the optional booking link when present.
func (s *paymentService) resolveBooking(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domain.ValidationError{Field: "booking", Msg: "must be a valid UUID"}
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, domain.InternalError{Msg: "failed to check booking", Err: err}
	}
	if booking == nil {
		return nil, domain.ValidationError{Field: "booking", Msg: "does not exist"}
	}

	return &id, nil
}
