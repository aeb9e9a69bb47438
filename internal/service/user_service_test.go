package service

import (
	"context"
	"testing"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/repository/models"
	"balanceai/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, validation.NewValidator())

		userRepo.On("GetUserByEmail", ctx, "kim@example.com").Return(nil, nil)
		userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "kim@example.com" && u.Name == "Kim"
		})).Return(int64(7), nil)

		resp, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			Email: "kim@example.com",
			Name:  "Kim",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Nil(t, resp.AvatarURL)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, validation.NewValidator())

		userRepo.On("GetUserByEmail", ctx, "kim@example.com").Return(testUser(7), nil)

		resp, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			Email: "kim@example.com",
			Name:  "Kim",
		})

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeValidation, domainErr.Code)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("malformed email never reaches storage", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, validation.NewValidator())

		resp, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
			Email: "not-an-email",
			Name:  "Kim",
		})

		assert.Nil(t, resp)
		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		userRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("all-nil update returns the user unchanged", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, validation.NewValidator())

		userRepo.On("GetUserByID", ctx, int64(7)).Return(testUser(7), nil)

		resp, err := svc.UpdateUser(ctx, 7, &dto.UpdateUserRequest{})

		require.NoError(t, err)
		assert.Equal(t, "Kim", resp.Name)
		userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("partial update persists", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, validation.NewValidator())

		userRepo.On("GetUserByID", ctx, int64(7)).Return(testUser(7), nil)
		userRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "Kim A." && u.Email == "kim@example.com"
		})).Return(nil)

		resp, err := svc.UpdateUser(ctx, 7, &dto.UpdateUserRequest{Name: strPtr("Kim A.")})

		require.NoError(t, err)
		assert.Equal(t, "Kim A.", resp.Name)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, validation.NewValidator())

		userRepo.On("GetUserByID", ctx, int64(404)).Return(nil, nil)

		resp, err := svc.UpdateUser(ctx, 404, &dto.UpdateUserRequest{Name: strPtr("Ghost")})

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUserNotFound, domainErr.Code)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, validation.NewValidator())

	userRepo.On("DeleteUser", ctx, int64(7)).Return(true, nil)
	userRepo.On("DeleteUser", ctx, int64(404)).Return(false, nil)

	assert.NoError(t, svc.DeleteUser(ctx, 7))

	err := svc.DeleteUser(ctx, 404)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUserNotFound, domainErr.Code)
}
