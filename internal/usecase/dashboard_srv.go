package usecase

import (
	"context"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/domain"
	"tour-booking/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	Stats(ctx context.Context) (response.DashboardStatsResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (response.DashboardStatsResponse, error) {
	payments, err := s.repo.Payment.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count payments", zap.Error(err))
		return response.DashboardStatsResponse{}, domain.InternalError{Msg: "failed to count payments", Err: err}
	}

	students, err := s.repo.Student.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count students", zap.Error(err))
		return response.DashboardStatsResponse{}, domain.InternalError{Msg: "failed to count students", Err: err}
	}

	tours, err := s.repo.Tour.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count tours", zap.Error(err))
		return response.DashboardStatsResponse{}, domain.InternalError{Msg: "failed to count tours", Err: err}
	}

	return response.DashboardStatsResponse{
		TotalPayments: payments,
		TotalStudents: students,
		TotalTours:    tours,
	}, nil
}
