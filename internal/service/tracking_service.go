package service

import (
	"context"
	"fmt"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/logger"
	"balanceai/internal/repository"
	"balanceai/internal/repository/models"
	"balanceai/internal/util"
	"balanceai/internal/validation"

	"go.uber.org/zap"
)

// TrackingService defines the interface for metrics, badges, streaks, and
// daily tasks.
type TrackingService interface {
	CreateMetric(ctx context.Context, req *dto.CreateUserMetricRequest) (*dto.UserMetricResponse, error)
	GetMetric(ctx context.Context, id int64) (*dto.UserMetricResponse, error)
	ListMetrics(ctx context.Context, userID *int64, metricType *string, limit, offset int) ([]dto.UserMetricResponse, error)
	UpdateMetric(ctx context.Context, id int64, req *dto.UpdateUserMetricRequest) (*dto.UserMetricResponse, error)
	DeleteMetric(ctx context.Context, id int64) error

	CreateBadge(ctx context.Context, req *dto.CreateBadgeRequest) (*dto.BadgeResponse, error)
	GetBadge(ctx context.Context, id int64) (*dto.BadgeResponse, error)
	ListBadges(ctx context.Context, userID *int64, limit, offset int) ([]dto.BadgeResponse, error)
	UpdateBadge(ctx context.Context, id int64, req *dto.UpdateBadgeRequest) (*dto.BadgeResponse, error)
	DeleteBadge(ctx context.Context, id int64) error

	CreateStreak(ctx context.Context, req *dto.CreateUserStreakRequest) (*dto.UserStreakResponse, error)
	GetStreak(ctx context.Context, id int64) (*dto.UserStreakResponse, error)
	ListStreaks(ctx context.Context, userID *int64, limit, offset int) ([]dto.UserStreakResponse, error)
	UpdateStreak(ctx context.Context, id int64, req *dto.UpdateUserStreakRequest) (*dto.UserStreakResponse, error)
	DeleteStreak(ctx context.Context, id int64) error

	CreateTask(ctx context.Context, req *dto.CreateDailyTaskRequest) (*dto.DailyTaskResponse, error)
	GetTask(ctx context.Context, id int64) (*dto.DailyTaskResponse, error)
	ListTasks(ctx context.Context, userID *int64, limit, offset int) ([]dto.DailyTaskResponse, error)
	UpdateTask(ctx context.Context, id int64, req *dto.UpdateDailyTaskRequest) (*dto.DailyTaskResponse, error)
	DeleteTask(ctx context.Context, id int64) error
}

type trackingServiceImpl struct {
	trackingRepo repository.TrackingRepository
	userRepo     repository.UserRepository
	txManager    domain.TransactionManager
	validator    *validation.Validator
}

// NewTrackingService creates a new instance of TrackingService.
func NewTrackingService(
	trackingRepo repository.TrackingRepository,
	userRepo repository.UserRepository,
	txManager domain.TransactionManager,
	validator *validation.Validator,
) TrackingService {
	return &trackingServiceImpl{
		trackingRepo: trackingRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		validator:    validator,
	}
}

func (s *trackingServiceImpl) requireUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}
	return nil
}

func (s *trackingServiceImpl) CreateMetric(ctx context.Context, req *dto.CreateUserMetricRequest) (*dto.UserMetricResponse, error) {
	if errs := s.validator.ValidateCreateUserMetric(req); len(errs) > 0 {
		return nil, errs
	}
	if err := s.requireUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	date := util.Today()
	if req.Date != nil {
		date = *req.Date
	}
	metric := &models.UserMetric{
		UserID:     req.UserID,
		MetricType: req.MetricType,
		Value:      req.Value,
		Date:       date,
		CreatedAt:  util.NowRFC3339(),
	}

	id, err := s.trackingRepo.CreateMetric(ctx, metric)
	if err != nil {
		return nil, fmt.Errorf("failed to create user metric: %w", err)
	}
	metric.ID = id

	out := dto.NewUserMetricResponse(metric)
	return &out, nil
}

func (s *trackingServiceImpl) GetMetric(ctx context.Context, id int64) (*dto.UserMetricResponse, error) {
	metric, err := s.trackingRepo.GetMetricByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user metric: %w", err)
	}
	if metric == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "metric not found")
	}

	out := dto.NewUserMetricResponse(metric)
	return &out, nil
}

func (s *trackingServiceImpl) ListMetrics(ctx context.Context, userID *int64, metricType *string, limit, offset int) ([]dto.UserMetricResponse, error) {
	if metricType != nil && !domain.IsValidMetricType(*metricType) {
		return nil, domain.ValidationErrors{
			domain.NewFieldError("metricType", "INVALID_METRIC_TYPE", "unknown metric type"),
		}
	}
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.trackingRepo.ListMetrics(ctx, userID, metricType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list user metrics: %w", err)
	}

	return dto.NewUserMetricResponses(rows), nil
}

func (s *trackingServiceImpl) UpdateMetric(ctx context.Context, id int64, req *dto.UpdateUserMetricRequest) (*dto.UserMetricResponse, error) {
	if errs := s.validator.ValidateUpdateUserMetric(req); len(errs) > 0 {
		return nil, errs
	}

	metric, err := s.trackingRepo.GetMetricByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user metric: %w", err)
	}
	if metric == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "metric not found")
	}

	if req.MetricType == nil && req.Value == nil && req.Date == nil {
		out := dto.NewUserMetricResponse(metric)
		return &out, nil
	}

	if req.MetricType != nil {
		metric.MetricType = *req.MetricType
	}
	if req.Value != nil {
		metric.Value = *req.Value
	}
	if req.Date != nil {
		metric.Date = *req.Date
	}

	if err := s.trackingRepo.UpdateMetric(ctx, metric); err != nil {
		return nil, fmt.Errorf("failed to update user metric: %w", err)
	}

	out := dto.NewUserMetricResponse(metric)
	return &out, nil
}

func (s *trackingServiceImpl) DeleteMetric(ctx context.Context, id int64) error {
	deleted, err := s.trackingRepo.DeleteMetric(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user metric: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "metric not found")
	}
	return nil
}

func (s *trackingServiceImpl) CreateBadge(ctx context.Context, req *dto.CreateBadgeRequest) (*dto.BadgeResponse, error) {
	if errs := s.validator.ValidateCreateBadge(req); len(errs) > 0 {
		return nil, errs
	}
	if err := s.requireUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	badge := &models.Badge{
		UserID:    req.UserID,
		BadgeID:   req.BadgeID,
		BadgeName: req.BadgeName,
		EarnedAt:  util.NowRFC3339(),
	}

	id, err := s.trackingRepo.CreateBadge(ctx, badge)
	if err != nil {
		return nil, fmt.Errorf("failed to create badge: %w", err)
	}
	badge.ID = id

	out := dto.NewBadgeResponse(badge)
	return &out, nil
}

func (s *trackingServiceImpl) GetBadge(ctx context.Context, id int64) (*dto.BadgeResponse, error) {
	badge, err := s.trackingRepo.GetBadgeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	if badge == nil {
		return nil, domain.NewNotFoundError(domain.CodeBadgeNotFound, "badge not found")
	}

	out := dto.NewBadgeResponse(badge)
	return &out, nil
}

func (s *trackingServiceImpl) ListBadges(ctx context.Context, userID *int64, limit, offset int) ([]dto.BadgeResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.trackingRepo.ListBadges(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}

	return dto.NewBadgeResponses(rows), nil
}

func (s *trackingServiceImpl) UpdateBadge(ctx context.Context, id int64, req *dto.UpdateBadgeRequest) (*dto.BadgeResponse, error) {
	badge, err := s.trackingRepo.GetBadgeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	if badge == nil {
		return nil, domain.NewNotFoundError(domain.CodeBadgeNotFound, "badge not found")
	}

	if req.BadgeID == nil && req.BadgeName == nil {
		out := dto.NewBadgeResponse(badge)
		return &out, nil
	}

	if req.BadgeID != nil {
		badge.BadgeID = *req.BadgeID
	}
	if req.BadgeName != nil {
		badge.BadgeName = *req.BadgeName
	}

	if err := s.trackingRepo.UpdateBadge(ctx, badge); err != nil {
		return nil, fmt.Errorf("failed to update badge: %w", err)
	}

	out := dto.NewBadgeResponse(badge)
	return &out, nil
}

func (s *trackingServiceImpl) DeleteBadge(ctx context.Context, id int64) error {
	deleted, err := s.trackingRepo.DeleteBadge(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete badge: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeBadgeNotFound, "badge not found")
	}
	return nil
}

func (s *trackingServiceImpl) CreateStreak(ctx context.Context, req *dto.CreateUserStreakRequest) (*dto.UserStreakResponse, error) {
	if errs := s.validator.ValidateCreateUserStreak(req); len(errs) > 0 {
		return nil, errs
	}
	if err := s.requireUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	existing, err := s.trackingRepo.GetStreakByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing streak: %w", err)
	}
	if existing != nil {
		return nil, domain.NewError(domain.CodeValidation, "streak already exists for user", nil)
	}

	streak := &models.UserStreak{
		UserID:           req.UserID,
		LastActivityDate: util.PtrToNullString(req.LastActivityDate),
		UpdatedAt:        util.NowRFC3339(),
	}
	if req.CurrentStreak != nil {
		streak.CurrentStreak = *req.CurrentStreak
	}
	if req.LongestStreak != nil {
		streak.LongestStreak = *req.LongestStreak
	}
	if streak.LongestStreak < streak.CurrentStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	id, err := s.trackingRepo.CreateStreak(ctx, streak)
	if err != nil {
		return nil, fmt.Errorf("failed to create user streak: %w", err)
	}
	streak.ID = id

	out := dto.NewUserStreakResponse(streak)
	return &out, nil
}

func (s *trackingServiceImpl) GetStreak(ctx context.Context, id int64) (*dto.UserStreakResponse, error) {
	streak, err := s.trackingRepo.GetStreakByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user streak: %w", err)
	}
	if streak == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "streak not found")
	}

	out := dto.NewUserStreakResponse(streak)
	return &out, nil
}

func (s *trackingServiceImpl) ListStreaks(ctx context.Context, userID *int64, limit, offset int) ([]dto.UserStreakResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.trackingRepo.ListStreaks(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list user streaks: %w", err)
	}

	return dto.NewUserStreakResponses(rows), nil
}

func (s *trackingServiceImpl) UpdateStreak(ctx context.Context, id int64, req *dto.UpdateUserStreakRequest) (*dto.UserStreakResponse, error) {
	streak, err := s.trackingRepo.GetStreakByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user streak: %w", err)
	}
	if streak == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "streak not found")
	}

	if req.CurrentStreak == nil && req.LongestStreak == nil && req.LastActivityDate == nil {
		out := dto.NewUserStreakResponse(streak)
		return &out, nil
	}

	if req.CurrentStreak != nil {
		streak.CurrentStreak = *req.CurrentStreak
	}
	if req.LongestStreak != nil {
		streak.LongestStreak = *req.LongestStreak
	}
	if req.LastActivityDate != nil {
		streak.LastActivityDate = util.StringToNullString(*req.LastActivityDate)
	}
	if streak.LongestStreak < streak.CurrentStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.UpdatedAt = util.NowRFC3339()

	if err := s.trackingRepo.UpdateStreak(ctx, streak); err != nil {
		return nil, fmt.Errorf("failed to update user streak: %w", err)
	}

	out := dto.NewUserStreakResponse(streak)
	return &out, nil
}

func (s *trackingServiceImpl) DeleteStreak(ctx context.Context, id int64) error {
	deleted, err := s.trackingRepo.DeleteStreak(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user streak: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "streak not found")
	}
	return nil
}

func (s *trackingServiceImpl) CreateTask(ctx context.Context, req *dto.CreateDailyTaskRequest) (*dto.DailyTaskResponse, error) {
	if errs := s.validator.ValidateCreateDailyTask(req); len(errs) > 0 {
		return nil, errs
	}
	if err := s.requireUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	task := &models.DailyTask{
		UserID:   req.UserID,
		TaskName: req.TaskName,
		TaskTime: req.TaskTime,
	}

	id, err := s.trackingRepo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily task: %w", err)
	}
	task.ID = id

	out := dto.NewDailyTaskResponse(task)
	return &out, nil
}

func (s *trackingServiceImpl) GetTask(ctx context.Context, id int64) (*dto.DailyTaskResponse, error) {
	task, err := s.trackingRepo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily task: %w", err)
	}
	if task == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "task not found")
	}

	out := dto.NewDailyTaskResponse(task)
	return &out, nil
}

func (s *trackingServiceImpl) ListTasks(ctx context.Context, userID *int64, limit, offset int) ([]dto.DailyTaskResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.trackingRepo.ListTasks(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily tasks: %w", err)
	}

	return dto.NewDailyTaskResponses(rows), nil
}

// UpdateTask applies field changes; a transition to completed stamps the
// completion date and advances the user's streak in the same transaction.
func (s *trackingServiceImpl) UpdateTask(ctx context.Context, id int64, req *dto.UpdateDailyTaskRequest) (*dto.DailyTaskResponse, error) {
	task, err := s.trackingRepo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily task: %w", err)
	}
	if task == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "task not found")
	}

	if req.TaskName == nil && req.TaskTime == nil && req.Completed == nil {
		out := dto.NewDailyTaskResponse(task)
		return &out, nil
	}

	if req.TaskName != nil {
		task.TaskName = *req.TaskName
	}
	if req.TaskTime != nil {
		task.TaskTime = *req.TaskTime
	}

	completing := req.Completed != nil && *req.Completed && !task.Completed
	if req.Completed != nil {
		task.Completed = *req.Completed
		if *req.Completed {
			task.CompletionDate = util.StringToNullString(util.Today())
		} else {
			task.CompletionDate = util.StringToNullString("")
		}
	}

	if !completing {
		if err := s.trackingRepo.UpdateTask(ctx, task); err != nil {
			return nil, fmt.Errorf("failed to update daily task: %w", err)
		}
		out := dto.NewDailyTaskResponse(task)
		return &out, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.trackingRepo.UpdateTask(txCtx, task); err != nil {
			return fmt.Errorf("failed to update daily task: %w", err)
		}
		return s.touchStreak(txCtx, task.UserID)
	})
	if err != nil {
		return nil, err
	}

	out := dto.NewDailyTaskResponse(task)
	return &out, nil
}

// touchStreak applies today's activity to the user's streak, creating the
// row on first activity.
func (s *trackingServiceImpl) touchStreak(ctx context.Context, userID int64) error {
	today := util.Today()
	now := util.NowRFC3339()

	streak, err := s.trackingRepo.GetStreakByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user streak: %w", err)
	}

	if streak == nil {
		streak = &models.UserStreak{
			UserID:           userID,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: util.StringToNullString(today),
			UpdatedAt:        now,
		}
		if _, err := s.trackingRepo.CreateStreak(ctx, streak); err != nil {
			return fmt.Errorf("failed to create user streak: %w", err)
		}
		return nil
	}

	update := domain.AdvanceStreak(
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastActivityDate.String,
		today,
		util.Yesterday(),
	)
	streak.CurrentStreak = update.CurrentStreak
	streak.LongestStreak = update.LongestStreak
	streak.LastActivityDate = util.StringToNullString(update.LastActivityDate)
	streak.UpdatedAt = now

	if err := s.trackingRepo.UpdateStreak(ctx, streak); err != nil {
		return fmt.Errorf("failed to update user streak: %w", err)
	}

	logger.Get().Debug("Streak advanced",
		zap.Int64("userID", userID),
		zap.Int("currentStreak", update.CurrentStreak))
	return nil
}

func (s *trackingServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	deleted, err := s.trackingRepo.DeleteTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily task: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "task not found")
	}
	return nil
}
