package service

import (
	"context"
	"fmt"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/repository"
	"balanceai/internal/repository/models"
	"balanceai/internal/util"
	"balanceai/internal/validation"
)

// UserService defines the interface for user account operations.
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id int64) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, limit, offset int) ([]dto.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository, validator *validation.Validator) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		validator: validator,
	}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if errs := s.validator.ValidateCreateUser(req); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.NewError(domain.CodeValidation, "email already registered", nil)
	}

	now := util.NowRFC3339()
	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		AvatarURL: util.PtrToNullString(req.AvatarURL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return dto.NewUserResponses(users), nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	if req.Email == nil && req.Name == nil && req.AvatarURL == nil {
		resp := dto.NewUserResponse(user)
		return &resp, nil
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = util.StringToNullString(*req.AvatarURL)
	}
	user.UpdatedAt = util.NowRFC3339()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	deleted, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}
	return nil
}
