package service

import (
	"context"
	"fmt"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/repository"
	"balanceai/internal/repository/models"

	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the aggregate home-screen view.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	quizRepo     repository.QuizRepository
	trackingRepo repository.TrackingRepository
	userRepo     repository.UserRepository
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(
	quizRepo repository.QuizRepository,
	trackingRepo repository.TrackingRepository,
	userRepo repository.UserRepository,
) DashboardService {
	return &dashboardServiceImpl{
		quizRepo:     quizRepo,
		trackingRepo: trackingRepo,
		userRepo:     userRepo,
	}
}

// GetDashboard fans out the per-section reads concurrently. Sections are
// independently optional; only a user with no rows in any of the four
// tracking sections gets an error.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	var (
		result     *models.QuizResult
		metrics    []models.UserMetric
		badges     []models.Badge
		badgeCount int
		streak     *models.UserStreak
		tasks      []models.DailyTask
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result, err = s.quizRepo.GetLatestResultByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load quiz result: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		metrics, err = s.trackingRepo.ListAllMetricsByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load metrics: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		badges, err = s.trackingRepo.ListAllBadgesByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load badges: %w", err)
		}
		badgeCount, err = s.trackingRepo.CountBadgesByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to count badges: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		streak, err = s.trackingRepo.GetStreakByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load streak: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tasks, err = s.trackingRepo.ListAllTasksByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Emptiness is judged on the four tracking sections; a quiz result
	// alone does not make a dashboard.
	if len(metrics) == 0 && len(badges) == 0 && streak == nil && len(tasks) == 0 {
		return nil, domain.NewNotFoundError(domain.CodeDashboardEmpty, "no data recorded for user")
	}

	resp := &dto.DashboardResponse{
		UserID:     userID,
		Metrics:    dto.NewUserMetricResponses(metrics),
		Badges:     dto.NewBadgeResponses(badges),
		BadgeCount: badgeCount,
		Tasks:      dto.NewDailyTaskResponses(tasks),
	}
	if result != nil {
		r := dto.NewQuizResultResponse(result)
		resp.QuizResult = &r
	}
	if streak != nil {
		st := dto.NewUserStreakResponse(streak)
		resp.Streak = &st
	}

	return resp, nil
}
