package usecase

import (
	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller is the authenticated identity handlers pass down from token claims.
type Caller struct {
	ID       uuid.UUID
	Username string
	Role     entity.UserRole
}

type Service struct {
	Auth      AuthService
	User      UserService
	Student   StudentService
	Tour      TourService
	Payment   PaymentService
	Booking   BookingService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, config, log),
		User:      NewUserService(repo.User, log),
		Student:   NewStudentService(repo.Student, log),
		Tour:      NewTourService(repo.Tour, log),
		Payment:   NewPaymentService(repo, log),
		Booking:   NewBookingService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
