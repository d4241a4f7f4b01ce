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

type studentService struct {
	repo repository.StudentRepository
	log  *zap.Logger
}

func NewStudentService(repo repository.StudentRepository, log *zap.Logger) StudentService {
	return &studentService{
		repo: repo,
		log:  log,
	}
}

func (s *studentService) List(ctx context.Context) ([]response.StudentResponse, error) {
	students, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list students", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to list students", Err: err}
	}

	resp := make([]response.StudentResponse, 0, len(students))
	for _, student := range students {
		resp = append(resp, response.StudentToResponse(student))
	}
	return resp, nil
}

func (s *studentService) Get(ctx context.Context, id uuid.UUID) (response.StudentResponse, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return response.StudentResponse{}, err
	}
	return response.StudentToResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, req *request.StudentRequest) (response.StudentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Student validation failed", zap.Any("errors", errs))
		return response.StudentResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	now := time.Now()
	student := &entity.Student{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   req.Name,
		Age:    req.Age,
		Class:  req.Class,
		Gender: entity.Gender(req.Gender),
	}

	if err := s.repo.Create(ctx, student); err != nil {
		s.log.Error("Failed to create student", zap.Error(err), zap.String("name", req.Name))
		return response.StudentResponse{}, domain.InternalError{Msg: "failed to create student", Err: err}
	}

	return response.StudentToResponse(student), nil
}

func (s *studentService) Replace(ctx context.Context, id uuid.UUID, req *request.StudentRequest) (response.StudentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return response.StudentResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	student, err := s.findStudent(ctx, id)
	if err != nil {
		return response.StudentResponse{}, err
	}

	student.Name = req.Name
	student.Age = req.Age
	student.Class = req.Class
	student.Gender = entity.Gender(req.Gender)
	student.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, student); err != nil {
		s.log.Error("Failed to update student", zap.Error(err), zap.String("student_id", id.String()))
		return response.StudentResponse{}, domain.InternalError{Msg: "failed to update student", Err: err}
	}

	return response.StudentToResponse(student), nil
}

func (s *studentService) Patch(ctx context.Context, id uuid.UUID, patch *request.StudentPatch) (response.StudentResponse, error) {
	if errs := utils.ValidateStruct(patch); len(errs) > 0 {
		return response.StudentResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	student, err := s.findStudent(ctx, id)
	if err != nil {
		return response.StudentResponse{}, err
	}

	if patch.Name != nil {
		student.Name = *patch.Name
	}
	if patch.Age != nil {
		student.Age = *patch.Age
	}
	if patch.Class != nil {
		student.Class = *patch.Class
	}
	if patch.Gender != nil {
		student.Gender = entity.Gender(*patch.Gender)
	}
	student.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, student); err != nil {
		s.log.Error("Failed to update student", zap.Error(err), zap.String("student_id", id.String()))
		return response.StudentResponse{}, domain.InternalError{Msg: "failed to update student", Err: err}
	}

	return response.StudentToResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findStudent(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete student", zap.Error(err), zap.String("student_id", id.String()))
		return domain.InternalError{Msg: "failed to delete student", Err: err}
	}

	return nil
}

func (s *studentService) findStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find student", zap.Error(err), zap.String("student_id", id.String()))
		return nil, domain.InternalError{Msg: "failed to find student", Err: err}
	}
	if student == nil {
		return nil, domain.NotFoundError{Resource: "student"}
	}
	return student, nil
}
