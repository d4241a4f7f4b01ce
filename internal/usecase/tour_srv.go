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

type tourService struct {
	repo repository.TourRepository
	log  *zap.Logger
}

func NewTourService(repo repository.TourRepository, log *zap.Logger) TourService {
	return &tourService{
		repo: repo,
		log:  log,
	}
}

func (s *tourService) List(ctx context.Context) ([]response.TourResponse, error) {
	tours, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list tours", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to list tours", Err: err}
	}

	resp := make([]response.TourResponse, 0, len(tours))
	for _, tour := range tours {
		resp = append(resp, response.TourToResponse(tour))
	}
	return resp, nil
}

func (s *tourService) Get(ctx context.Context, id uuid.UUID) (response.TourResponse, error) {
	tour, err := s.findTour(ctx, id)
	if err != nil {
		return response.TourResponse{}, err
	}
	return response.TourToResponse(tour), nil
}

func (s *tourService) Create(ctx context.Context, req *request.TourRequest) (response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Tour validation failed", zap.Any("errors", errs))
		return response.TourResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	date, _ := time.Parse("2006-01-02", req.Date) // format checked by the datetime tag

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Destination: req.Destination,
		Amount:      req.Amount,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		s.log.Error("Failed to create tour", zap.Error(err), zap.String("title", req.Title))
		return response.TourResponse{}, domain.InternalError{Msg: "failed to create tour", Err: err}
	}

	return response.TourToResponse(tour), nil
}

func (s *tourService) Replace(ctx context.Context, id uuid.UUID, req *request.TourRequest) (response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return response.TourResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	tour, err := s.findTour(ctx, id)
	if err != nil {
		return response.TourResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	tour.Title = req.Title
	tour.Description = req.Description
	tour.Date = date
	tour.Destination = req.Destination
	tour.Amount = req.Amount
	tour.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tour); err != nil {
		s.log.Error("Failed to update tour", zap.Error(err), zap.String("tour_id", id.String()))
		return response.TourResponse{}, domain.InternalError{Msg: "failed to update tour", Err: err}
	}

	return response.TourToResponse(tour), nil
}

func (s *tourService) Patch(ctx context.Context, id uuid.UUID, patch *request.TourPatch) (response.TourResponse, error) {
	if errs := utils.ValidateStruct(patch); len(errs) > 0 {
		return response.TourResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	tour, err := s.findTour(ctx, id)
	if err != nil {
		return response.TourResponse{}, err
	}

	if patch.Title != nil {
		tour.Title = *patch.Title
	}
	if patch.Description != nil {
		tour.Description = *patch.Description
	}
	if patch.Date != nil {
		date, _ := time.Parse("2006-01-02", *patch.Date)
		tour.Date = date
	}
	if patch.Destination != nil {
		tour.Destination = *patch.Destination
	}
	if patch.Amount != nil {
		tour.Amount = *patch.Amount
	}
	tour.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tour); err != nil {
		s.log.Error("Failed to update tour", zap.Error(err), zap.String("tour_id", id.String()))
		return response.TourResponse{}, domain.InternalError{Msg: "failed to update tour", Err: err}
	}

	return response.TourToResponse(tour), nil
}

func (s *tourService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findTour(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete tour", zap.Error(err), zap.String("tour_id", id.String()))
		return domain.InternalError{Msg: "failed to delete tour", Err: err}
	}

	return nil
}

func (s *tourService) findTour(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	tour, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find tour", zap.Error(err), zap.String("tour_id", id.String()))
		return nil, domain.InternalError{Msg: "failed to find tour", Err: err}
	}
	if tour == nil {
		return nil, domain.NotFoundError{Resource: "tour"}
	}
	return tour, nil
}
