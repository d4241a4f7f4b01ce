package usecase

import (
	"context"
	"strings"
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

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error)
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
}

type authService struct {
	users  repository.UserRepository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		config: config,
		log:    log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return nil, domain.InternalError{Msg: "failed to find user", Err: err}
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, domain.AuthenticationError{Msg: "invalid credentials"}
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, domain.AuthenticationError{Msg: "invalid credentials"}
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, domain.AuthenticationError{Msg: "account is deactivated"}
	}

	// A role outside the enum means corrupt account data, not a bad login.
	role := strings.ToLower(string(user.Role))
	if !entity.ValidRole(entity.UserRole(role)) {
		s.log.Error("User has unknown role",
			zap.String("user_id", user.ID.String()),
			zap.String("role", string(user.Role)))
		return nil, domain.ValidationError{Msg: "unknown or invalid role"}
	}

	access, err := utils.GenerateAccessToken(s.config.JWT, user.ID, user.Username, role)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to create token", Err: err}
	}

	refresh, err := utils.GenerateRefreshToken(s.config.JWT, user.ID, user.Username, role)
	if err != nil {
		s.log.Error("Failed to sign refresh token", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to create token", Err: err}
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", role))

	return &response.TokenPairResponse{
		Access:   access,
		Refresh:  refresh,
		Username: user.Username,
		Role:     role,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, domain.ValidationError{Msg: utils.FormatValidationErrors(errs), Fields: errs}
	}

	claims, err := utils.ParseToken(s.config.JWT.Secret, req.Refresh)
	if err != nil {
		s.log.Warn("Invalid refresh token", zap.Error(err))
		return nil, domain.AuthenticationError{Msg: "invalid or expired refresh token", Err: err}
	}

	if claims.TokenType != utils.TokenTypeRefresh {
		return nil, domain.AuthenticationError{Msg: "token is not a refresh token"}
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domain.AuthenticationError{Msg: "invalid token claims", Err: err}
	}

	access, err := utils.GenerateAccessToken(s.config.JWT, userID, claims.Username, claims.Role)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to create token", Err: err}
	}

	return &response.AccessTokenResponse{Access: access}, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// Presence is checked field by field so the response names the
	// first missing one.
	required := []struct {
		name  string
		value string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"phone", req.Phone},
		{"username", req.Username},
		{"password", req.Password},
		{"role", req.Role},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, domain.ValidationError{Field: field.name, Msg: "is required"}
		}
	}

	role := entity.UserRole(strings.ToLower(req.Role))
	if !entity.ValidRole(role) {
		return nil, domain.ValidationError{Field: "role", Msg: "must be staff or parent"}
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, domain.InternalError{Msg: "failed to check username", Err: err}
	}
	if existing != nil {
		return nil, domain.ConflictError{Msg: "Username already exists"}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, domain.InternalError{Msg: "failed to process password", Err: err}
	}

	now := time.Now()
	phone := req.Phone
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        &phone,
		Role:         role,
		IsActive:     true,
		IsStaff:      role == entity.RoleStaff,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, domain.InternalError{Msg: "failed to create account", Err: err}
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return &response.RegisterResponse{Message: "User registered successfully"}, nil
}
