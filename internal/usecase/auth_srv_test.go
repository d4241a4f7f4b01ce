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
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:              "test-secret",
			AccessExpiryMinutes: 60,
			RefreshExpiryHours:  24,
		},
	}
}

func seedUser(t *testing.T, repo *repository.Repository, username, password string, role entity.UserRole, active bool) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	phone := "0811111111"
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Phone:        &phone,
		Role:         role,
		IsActive:     active,
		IsStaff:      role == entity.RoleStaff,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func TestLogin(t *testing.T) {
	repo := repotest.NewRepository()
	config := testConfig()
	svc := NewAuthService(repo.User, config, zap.NewNop())

	seedUser(t, repo, "budi", "secret123", entity.RoleParent, true)

	t.Run("success returns both tokens with claims", func(t *testing.T) {
		tokens, err := svc.Login(context.Background(), &request.LoginRequest{
			Username: "budi",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.Access)
		assert.NotEmpty(t, tokens.Refresh)
		assert.Equal(t, "budi", tokens.Username)
		assert.Equal(t, "parent", tokens.Role)

		claims, err := utils.ParseToken(config.JWT.Secret, tokens.Access)
		require.NoError(t, err)
		assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, "parent", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Username: "budi",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.True(t, domain.IsAuthentication(err))
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("unknown username gets the same message", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Username: "nobody",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.True(t, domain.IsAuthentication(err))
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("inactive account", func(t *testing.T) {
		seedUser(t, repo, "sleepy", "secret123", entity.RoleParent, false)

		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Username: "sleepy",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.True(t, domain.IsAuthentication(err))
		assert.EqualError(t, err, "account is deactivated")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "budi"})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRefresh(t *testing.T) {
	repo := repotest.NewRepository()
	config := testConfig()
	svc := NewAuthService(repo.User, config, zap.NewNop())

	seedUser(t, repo, "budi", "secret123", entity.RoleParent, true)

	tokens, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "budi",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("refresh token yields a new access token", func(t *testing.T) {
		result, err := svc.Refresh(context.Background(), &request.RefreshRequest{Refresh: tokens.Refresh})
		require.NoError(t, err)

		claims, err := utils.ParseToken(config.JWT.Secret, result.Access)
		require.NoError(t, err)
		assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, "budi", claims.Username)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), &request.RefreshRequest{Refresh: tokens.Access})
		require.Error(t, err)
		assert.True(t, domain.IsAuthentication(err))
		assert.EqualError(t, err, "token is not a refresh token")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), &request.RefreshRequest{Refresh: "not.a.token"})
		require.Error(t, err)
		assert.True(t, domain.IsAuthentication(err))
	})
}

func TestRegister(t *testing.T) {
	repo := repotest.NewRepository()
	svc := NewAuthService(repo.User, testConfig(), zap.NewNop())

	valid := func() *request.RegisterRequest {
		return &request.RegisterRequest{
			FirstName: "Siti",
			LastName:  "Rahma",
			Phone:     "0812222222",
			Username:  "siti",
			Password:  "secret123",
			Role:      "parent",
		}
	}

	t.Run("success stores a hashed password", func(t *testing.T) {
		result, err := svc.Register(context.Background(), valid())
		require.NoError(t, err)
		assert.Equal(t, "User registered successfully", result.Message)

		user, err := repo.User.FindByUsername(context.Background(), "siti")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("secret123", user.PasswordHash))
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := svc.Register(context.Background(), valid())
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
		assert.EqualError(t, err, "Username already exists")
	})

	t.Run("first missing field is named in order", func(t *testing.T) {
		cases := []struct {
			blank string
			apply func(*request.RegisterRequest)
		}{
			{"first_name", func(r *request.RegisterRequest) { r.FirstName = "" }},
			{"last_name", func(r *request.RegisterRequest) { r.LastName = "" }},
			{"phone", func(r *request.RegisterRequest) { r.Phone = "" }},
			{"username", func(r *request.RegisterRequest) { r.Username = "" }},
			{"password", func(r *request.RegisterRequest) { r.Password = "" }},
			{"role", func(r *request.RegisterRequest) { r.Role = "" }},
		}
		for _, tc := range cases {
			req := valid()
			tc.apply(req)

			_, err := svc.Register(context.Background(), req)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.EqualError(t, err, tc.blank+": is required")
		}
	})

	t.Run("empty payload names first_name first", func(t *testing.T) {
		_, err := svc.Register(context.Background(), &request.RegisterRequest{})
		require.Error(t, err)
		assert.EqualError(t, err, "first_name: is required")
	})

	t.Run("unknown role", func(t *testing.T) {
		req := valid()
		req.Username = "andi"
		req.Role = "admin"

		_, err := svc.Register(context.Background(), req)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("staff registration is accepted", func(t *testing.T) {
		req := valid()
		req.Username = "admin1"
		req.Role = "staff"

		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)

		user, err := repo.User.FindByUsername(context.Background(), "admin1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.True(t, user.IsStaff)
	})
}
