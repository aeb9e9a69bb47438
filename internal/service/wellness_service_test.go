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

func newWellnessServiceForTest(wellnessRepo *MockWellnessRepository, userRepo *MockUserRepository) WellnessService {
	return NewWellnessService(wellnessRepo, userRepo, validation.NewValidator())
}

func TestWellnessService_CreatePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("plan data must be json", func(t *testing.T) {
		wellnessRepo := new(MockWellnessRepository)
		userRepo := new(MockUserRepository)
		svc := newWellnessServiceForTest(wellnessRepo, userRepo)

		resp, err := svc.CreatePlan(ctx, &dto.CreateWellnessPlanRequest{
			UserID:   7,
			PlanData: "{broken",
		})

		assert.Nil(t, resp)
		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Equal(t, "INVALID_PLAN_DATA", validationErrs[0].Code)
	})

	t.Run("valid plan persists", func(t *testing.T) {
		wellnessRepo := new(MockWellnessRepository)
		userRepo := new(MockUserRepository)
		svc := newWellnessServiceForTest(wellnessRepo, userRepo)

		userRepo.On("GetUserByID", ctx, int64(7)).Return(testUser(7), nil)
		wellnessRepo.On("CreatePlan", ctx, mock.AnythingOfType("*models.WellnessPlan")).Return(int64(21), nil)

		resp, err := svc.CreatePlan(ctx, &dto.CreateWellnessPlanRequest{
			UserID:   7,
			PlanData: `{"weeks":[{"focus":"sleep"}]}`,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(21), resp.ID)
		wellnessRepo.AssertExpectations(t)
	})
}

func TestWellnessService_GetWellnessPlanView(t *testing.T) {
	ctx := context.Background()

	t.Run("joins goals and the latest plan", func(t *testing.T) {
		wellnessRepo := new(MockWellnessRepository)
		userRepo := new(MockUserRepository)
		svc := newWellnessServiceForTest(wellnessRepo, userRepo)

		wellnessRepo.On("ListAllGoalsByUserID", mock.Anything, int64(7)).Return([]models.WellnessGoal{
			{ID: 1, UserID: 7, GoalID: "better-sleep", GoalTitle: "Sleep 8 hours", SelectedAt: "2025-03-01T09:00:00Z"},
		}, nil)
		wellnessRepo.On("GetLatestPlanByUserID", mock.Anything, int64(7)).Return(&models.WellnessPlan{
			ID:       21,
			UserID:   7,
			PlanData: `{"weeks":[{"focus":"sleep"}]}`,
		}, nil)

		resp, err := svc.GetWellnessPlanView(ctx, 7)

		require.NoError(t, err)
		assert.Len(t, resp.Goals, 1)
		assert.Equal(t, int64(21), resp.Plan.ID)
	})

	t.Run("goals without a plan is still not found", func(t *testing.T) {
		wellnessRepo := new(MockWellnessRepository)
		userRepo := new(MockUserRepository)
		svc := newWellnessServiceForTest(wellnessRepo, userRepo)

		wellnessRepo.On("ListAllGoalsByUserID", mock.Anything, int64(7)).Return([]models.WellnessGoal{
			{ID: 1, UserID: 7, GoalID: "better-sleep", GoalTitle: "Sleep 8 hours", SelectedAt: "2025-03-01T09:00:00Z"},
		}, nil)
		wellnessRepo.On("GetLatestPlanByUserID", mock.Anything, int64(7)).Return(nil, nil)

		resp, err := svc.GetWellnessPlanView(ctx, 7)

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodePlanNotFound, domainErr.Code)
	})
}

func TestWellnessService_UpdatePlan(t *testing.T) {
	ctx := context.Background()
	wellnessRepo := new(MockWellnessRepository)
	userRepo := new(MockUserRepository)
	svc := newWellnessServiceForTest(wellnessRepo, userRepo)

	wellnessRepo.On("GetPlanByID", ctx, int64(21)).Return(&models.WellnessPlan{
		ID:       21,
		UserID:   7,
		PlanData: `{"weeks":[]}`,
	}, nil)

	t.Run("all-nil update returns the plan unchanged", func(t *testing.T) {
		resp, err := svc.UpdatePlan(ctx, 21, &dto.UpdateWellnessPlanRequest{})

		require.NoError(t, err)
		assert.Equal(t, `{"weeks":[]}`, resp.PlanData)
		wellnessRepo.AssertNotCalled(t, "UpdatePlan", mock.Anything, mock.Anything)
	})

	t.Run("invalid replacement json is rejected", func(t *testing.T) {
		resp, err := svc.UpdatePlan(ctx, 21, &dto.UpdateWellnessPlanRequest{PlanData: strPtr("{oops")})

		assert.Nil(t, resp)
		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
	})
}
