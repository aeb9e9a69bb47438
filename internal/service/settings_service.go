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

// SettingsService defines the interface for user preference operations.
type SettingsService interface {
	CreateSettings(ctx context.Context, req *dto.CreateUserSettingsRequest) (*dto.UserSettingsResponse, error)
	GetSettings(ctx context.Context, id int64) (*dto.UserSettingsResponse, error)
	ListSettings(ctx context.Context, userID *int64, limit, offset int) ([]dto.UserSettingsResponse, error)
	UpdateSettings(ctx context.Context, id int64, req *dto.UpdateUserSettingsRequest) (*dto.UserSettingsResponse, error)
	DeleteSettings(ctx context.Context, id int64) error
}

type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
	validator    *validation.Validator
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	userRepo repository.UserRepository,
	validator *validation.Validator,
) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		validator:    validator,
	}
}

func (s *settingsServiceImpl) CreateSettings(ctx context.Context, req *dto.CreateUserSettingsRequest) (*dto.UserSettingsResponse, error) {
	if errs := s.validator.ValidateCreateUserSettings(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	settings := &models.UserSettings{
		UserID:               req.UserID,
		Theme:                string(domain.ThemeLight),
		NotificationsEnabled: true,
		SMSEnabled:           false,
		EmailEnabled:         true,
		UpdatedAt:            util.NowRFC3339(),
	}
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.SMSEnabled != nil {
		settings.SMSEnabled = *req.SMSEnabled
	}
	if req.EmailEnabled != nil {
		settings.EmailEnabled = *req.EmailEnabled
	}

	id, err := s.settingsRepo.CreateSettings(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create user settings: %w", err)
	}
	settings.ID = id

	resp := dto.NewUserSettingsResponse(settings)
	return &resp, nil
}

func (s *settingsServiceImpl) GetSettings(ctx context.Context, id int64) (*dto.UserSettingsResponse, error) {
	settings, err := s.settingsRepo.GetSettingsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	if settings == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "settings not found")
	}

	resp := dto.NewUserSettingsResponse(settings)
	return &resp, nil
}

func (s *settingsServiceImpl) ListSettings(ctx context.Context, userID *int64, limit, offset int) ([]dto.UserSettingsResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	settings, err := s.settingsRepo.ListSettings(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list user settings: %w", err)
	}

	return dto.NewUserSettingsResponses(settings), nil
}

func (s *settingsServiceImpl) UpdateSettings(ctx context.Context, id int64, req *dto.UpdateUserSettingsRequest) (*dto.UserSettingsResponse, error) {
	if errs := s.validator.ValidateUpdateUserSettings(req); len(errs) > 0 {
		return nil, errs
	}

	settings, err := s.settingsRepo.GetSettingsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	if settings == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "settings not found")
	}

	if req.Theme == nil && req.NotificationsEnabled == nil && req.SMSEnabled == nil && req.EmailEnabled == nil {
		resp := dto.NewUserSettingsResponse(settings)
		return &resp, nil
	}

	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.SMSEnabled != nil {
		settings.SMSEnabled = *req.SMSEnabled
	}
	if req.EmailEnabled != nil {
		settings.EmailEnabled = *req.EmailEnabled
	}
	settings.UpdatedAt = util.NowRFC3339()

	if err := s.settingsRepo.UpdateSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update user settings: %w", err)
	}

	resp := dto.NewUserSettingsResponse(settings)
	return &resp, nil
}

func (s *settingsServiceImpl) DeleteSettings(ctx context.Context, id int64) error {
	deleted, err := s.settingsRepo.DeleteSettings(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user settings: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "settings not found")
	}
	return nil
}
