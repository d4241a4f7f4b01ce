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

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) List(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to list users", Err: err}
	}

	resp := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, response.UserToResponse(user))
	}
	return resp, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (response.UserResponse, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return response.UserResponse{}, err
	}
	return response.UserToResponse(user), nil
}

func (s *userService) Create(ctx context.Context, req *request.UserRequest) (response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("User validation failed", zap.Any("errors", errs))
		return response.UserResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	existing, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return response.UserResponse{}, domain.InternalError{Msg: "failed to check username", Err: err}
	}
	if existing != nil {
		return response.UserResponse{}, domain.ConflictError{Msg: "Username already exists"}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return response.UserResponse{}, domain.InternalError{Msg: "failed to process password", Err: err}
	}

	now := time.Now()
	role := entity.UserRole(req.Role)
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
		IsStaff:      role == entity.RoleStaff,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return response.UserResponse{}, domain.InternalError{Msg: "failed to create user", Err: err}
	}

	return response.UserToResponse(user), nil
}

func (s *userService) Replace(ctx context.Context, id uuid.UUID, req *request.UserRequest) (response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return response.UserResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return response.UserResponse{}, err
	}

	if req.Username != user.Username {
		if err := s.checkUsernameFree(ctx, req.Username); err != nil {
			return response.UserResponse{}, err
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return response.UserResponse{}, domain.InternalError{Msg: "failed to process password", Err: err}
	}

	role := entity.UserRole(req.Role)
	user.Username = req.Username
	user.PasswordHash = hash
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.Role = role
	user.IsStaff = role == entity.RoleStaff
	user.IsActive = true
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return response.UserResponse{}, domain.InternalError{Msg: "failed to update user", Err: err}
	}

	return response.UserToResponse(user), nil
}

func (s *userService) Patch(ctx context.Context, id uuid.UUID, patch *request.UserPatch) (response.UserResponse, error) {
	if errs := utils.ValidateStruct(patch); len(errs) > 0 {
		return response.UserResponse{}, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return response.UserResponse{}, err
	}

	if patch.Username != nil && *patch.Username != user.Username {
		if err := s.checkUsernameFree(ctx, *patch.Username); err != nil {
			return response.UserResponse{}, err
		}
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		hash, err := utils.HashPassword(*patch.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return response.UserResponse{}, domain.InternalError{Msg: "failed to process password", Err: err}
		}
		user.PasswordHash = hash
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = patch.Phone
	}
	if patch.Role != nil {
		user.Role = entity.UserRole(*patch.Role)
		user.IsStaff = user.Role == entity.RoleStaff
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return response.UserResponse{}, domain.InternalError{Msg: "failed to update user", Err: err}
	}

	return response.UserToResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return domain.InternalError{Msg: "failed to delete user", Err: err}
	}

	return nil
}

func (s *userService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, domain.InternalError{Msg: "failed to find user", Err: err}
	}
	if user == nil {
		return nil, domain.NotFoundError{Resource: "user"}
	}
	return user, nil
}

func (s *userService) checkUsernameFree(ctx context.Context, username string) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", username))
		return domain.InternalError{Msg: "failed to check username", Err: err}
	}
	if existing != nil {
		return domain.ConflictError{Msg: "Username already exists"}
	}
	return nil
}
