package service

import (
	"context"
	"database/sql"
	"testing"

	"balanceai/internal/domain"
	"balanceai/internal/repository/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles all sections", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		trackingRepo := new(MockTrackingRepository)
		userRepo := new(MockUserRepository)
		svc := NewDashboardService(quizRepo, trackingRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(7)).Return(testUser(7), nil)
		quizRepo.On("GetLatestResultByUserID", mock.Anything, int64(7)).Return(&models.QuizResult{
			ID:           42,
			UserID:       7,
			BalanceScore: 16,
			MoodResult:   "Balanced",
			CreatedAt:    "2025-03-12T09:00:00Z",
		}, nil)
		trackingRepo.On("ListAllMetricsByUserID", mock.Anything, int64(7)).Return([]models.UserMetric{
			{ID: 1, UserID: 7, MetricType: "sleep", Value: "7.5", Date: "2025-03-12"},
		}, nil)
		trackingRepo.On("ListAllBadgesByUserID", mock.Anything, int64(7)).Return([]models.Badge{
			{ID: 1, UserID: 7, BadgeID: "streak-7", BadgeName: "One Week Strong", EarnedAt: "2025-03-10T09:00:00Z"},
		}, nil)
		trackingRepo.On("CountBadgesByUserID", mock.Anything, int64(7)).Return(1, nil)
		trackingRepo.On("GetStreakByUserID", mock.Anything, int64(7)).Return(&models.UserStreak{
			ID:               1,
			UserID:           7,
			CurrentStreak:    4,
			LongestStreak:    6,
			LastActivityDate: sql.NullString{String: "2025-03-12", Valid: true},
		}, nil)
		trackingRepo.On("ListAllTasksByUserID", mock.Anything, int64(7)).Return([]models.DailyTask{
			{ID: 15, UserID: 7, TaskName: "Evening walk", TaskTime: "19:00"},
		}, nil)

		resp, err := svc.GetDashboard(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, resp.QuizResult)
		assert.Equal(t, "Balanced", resp.QuizResult.MoodResult)
		assert.Len(t, resp.Metrics, 1)
		assert.Len(t, resp.Badges, 1)
		assert.Equal(t, 1, resp.BadgeCount)
		require.NotNil(t, resp.Streak)
		assert.Equal(t, 4, resp.Streak.CurrentStreak)
		assert.Len(t, resp.Tasks, 1)
	})

	t.Run("sections are independently optional", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		trackingRepo := new(MockTrackingRepository)
		userRepo := new(MockUserRepository)
		svc := NewDashboardService(quizRepo, trackingRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(7)).Return(testUser(7), nil)
		quizRepo.On("GetLatestResultByUserID", mock.Anything, int64(7)).Return(nil, nil)
		trackingRepo.On("ListAllMetricsByUserID", mock.Anything, int64(7)).Return([]models.UserMetric{}, nil)
		trackingRepo.On("ListAllBadgesByUserID", mock.Anything, int64(7)).Return([]models.Badge{}, nil)
		trackingRepo.On("CountBadgesByUserID", mock.Anything, int64(7)).Return(0, nil)
		trackingRepo.On("GetStreakByUserID", mock.Anything, int64(7)).Return(nil, nil)
		trackingRepo.On("ListAllTasksByUserID", mock.Anything, int64(7)).Return([]models.DailyTask{
			{ID: 15, UserID: 7, TaskName: "Evening walk", TaskTime: "19:00"},
		}, nil)

		resp, err := svc.GetDashboard(ctx, 7)

		require.NoError(t, err)
		assert.Nil(t, resp.QuizResult)
		assert.Nil(t, resp.Streak)
		assert.Len(t, resp.Tasks, 1)
	})

	t.Run("user with no data at all", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		trackingRepo := new(MockTrackingRepository)
		userRepo := new(MockUserRepository)
		svc := NewDashboardService(quizRepo, trackingRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(7)).Return(testUser(7), nil)
		quizRepo.On("GetLatestResultByUserID", mock.Anything, int64(7)).Return(nil, nil)
		trackingRepo.On("ListAllMetricsByUserID", mock.Anything, int64(7)).Return([]models.UserMetric{}, nil)
		trackingRepo.On("ListAllBadgesByUserID", mock.Anything, int64(7)).Return([]models.Badge{}, nil)
		trackingRepo.On("CountBadgesByUserID", mock.Anything, int64(7)).Return(0, nil)
		trackingRepo.On("GetStreakByUserID", mock.Anything, int64(7)).Return(nil, nil)
		trackingRepo.On("ListAllTasksByUserID", mock.Anything, int64(7)).Return([]models.DailyTask{}, nil)

		resp, err := svc.GetDashboard(ctx, 7)

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDashboardEmpty, domainErr.Code)
	})

	t.Run("a quiz result alone does not fill the dashboard", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		trackingRepo := new(MockTrackingRepository)
		userRepo := new(MockUserRepository)
		svc := NewDashboardService(quizRepo, trackingRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(7)).Return(testUser(7), nil)
		quizRepo.On("GetLatestResultByUserID", mock.Anything, int64(7)).Return(&models.QuizResult{
			ID:           42,
			UserID:       7,
			BalanceScore: 16,
			MoodResult:   "Balanced",
			CreatedAt:    "2025-03-12T09:00:00Z",
		}, nil)
		trackingRepo.On("ListAllMetricsByUserID", mock.Anything, int64(7)).Return([]models.UserMetric{}, nil)
		trackingRepo.On("ListAllBadgesByUserID", mock.Anything, int64(7)).Return([]models.Badge{}, nil)
		trackingRepo.On("CountBadgesByUserID", mock.Anything, int64(7)).Return(0, nil)
		trackingRepo.On("GetStreakByUserID", mock.Anything, int64(7)).Return(nil, nil)
		trackingRepo.On("ListAllTasksByUserID", mock.Anything, int64(7)).Return([]models.DailyTask{}, nil)

		resp, err := svc.GetDashboard(ctx, 7)

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDashboardEmpty, domainErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		trackingRepo := new(MockTrackingRepository)
		userRepo := new(MockUserRepository)
		svc := NewDashboardService(quizRepo, trackingRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(404)).Return(nil, nil)

		resp, err := svc.GetDashboard(ctx, 404)

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUserNotFound, domainErr.Code)
		quizRepo.AssertNotCalled(t, "GetLatestResultByUserID", mock.Anything, mock.Anything)
	})
}
