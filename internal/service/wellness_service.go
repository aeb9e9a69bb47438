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

	"golang.org/x/sync/errgroup"
)

// WellnessService defines the interface for goals and generated plans.
type WellnessService interface {
	CreateGoal(ctx context.Context, req *dto.CreateWellnessGoalRequest) (*dto.WellnessGoalResponse, error)
	GetGoal(ctx context.Context, id int64) (*dto.WellnessGoalResponse, error)
	ListGoals(ctx context.Context, userID *int64, limit, offset int) ([]dto.WellnessGoalResponse, error)
	UpdateGoal(ctx context.Context, id int64, req *dto.UpdateWellnessGoalRequest) (*dto.WellnessGoalResponse, error)
	DeleteGoal(ctx context.Context, id int64) error

	CreatePlan(ctx context.Context, req *dto.CreateWellnessPlanRequest) (*dto.WellnessPlanResponse, error)
	GetPlan(ctx context.Context, id int64) (*dto.WellnessPlanResponse, error)
	ListPlans(ctx context.Context, userID *int64, limit, offset int) ([]dto.WellnessPlanResponse, error)
	UpdatePlan(ctx context.Context, id int64, req *dto.UpdateWellnessPlanRequest) (*dto.WellnessPlanResponse, error)
	DeletePlan(ctx context.Context, id int64) error

	GetWellnessPlanView(ctx context.Context, userID int64) (*dto.WellnessPlanViewResponse, error)
}

type wellnessServiceImpl struct {
	wellnessRepo repository.WellnessRepository
	userRepo     repository.UserRepository
	validator    *validation.Validator
}

// NewWellnessService creates a new instance of WellnessService.
func NewWellnessService(
	wellnessRepo repository.WellnessRepository,
	userRepo repository.UserRepository,
	validator *validation.Validator,
) WellnessService {
	return &wellnessServiceImpl{
		wellnessRepo: wellnessRepo,
		userRepo:     userRepo,
		validator:    validator,
	}
}

func (s *wellnessServiceImpl) CreateGoal(ctx context.Context, req *dto.CreateWellnessGoalRequest) (*dto.WellnessGoalResponse, error) {
	if errs := s.validator.ValidateCreateWellnessGoal(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	goal := &models.WellnessGoal{
		UserID:     req.UserID,
		GoalID:     req.GoalID,
		GoalTitle:  req.GoalTitle,
		SelectedAt: util.NowRFC3339(),
	}

	id, err := s.wellnessRepo.CreateGoal(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create wellness goal: %w", err)
	}
	goal.ID = id

	out := dto.NewWellnessGoalResponse(goal)
	return &out, nil
}

func (s *wellnessServiceImpl) GetGoal(ctx context.Context, id int64) (*dto.WellnessGoalResponse, error) {
	goal, err := s.wellnessRepo.GetGoalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness goal: %w", err)
	}
	if goal == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "wellness goal not found")
	}

	out := dto.NewWellnessGoalResponse(goal)
	return &out, nil
}

func (s *wellnessServiceImpl) ListGoals(ctx context.Context, userID *int64, limit, offset int) ([]dto.WellnessGoalResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.wellnessRepo.ListGoals(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness goals: %w", err)
	}

	return dto.NewWellnessGoalResponses(rows), nil
}

func (s *wellnessServiceImpl) UpdateGoal(ctx context.Context, id int64, req *dto.UpdateWellnessGoalRequest) (*dto.WellnessGoalResponse, error) {
	goal, err := s.wellnessRepo.GetGoalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness goal: %w", err)
	}
	if goal == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "wellness goal not found")
	}

	if req.GoalID == nil && req.GoalTitle == nil {
		out := dto.NewWellnessGoalResponse(goal)
		return &out, nil
	}

	if req.GoalID != nil {
		goal.GoalID = *req.GoalID
	}
	if req.GoalTitle != nil {
		goal.GoalTitle = *req.GoalTitle
	}

	if err := s.wellnessRepo.UpdateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update wellness goal: %w", err)
	}

	out := dto.NewWellnessGoalResponse(goal)
	return &out, nil
}

func (s *wellnessServiceImpl) DeleteGoal(ctx context.Context, id int64) error {
	deleted, err := s.wellnessRepo.DeleteGoal(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete wellness goal: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "wellness goal not found")
	}
	return nil
}

func (s *wellnessServiceImpl) CreatePlan(ctx context.Context, req *dto.CreateWellnessPlanRequest) (*dto.WellnessPlanResponse, error) {
	if errs := s.validator.ValidateCreateWellnessPlan(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	now := util.NowRFC3339()
	plan := &models.WellnessPlan{
		UserID:    req.UserID,
		PlanData:  req.PlanData,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.wellnessRepo.CreatePlan(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create wellness plan: %w", err)
	}
	plan.ID = id

	out := dto.NewWellnessPlanResponse(plan)
	return &out, nil
}

func (s *wellnessServiceImpl) GetPlan(ctx context.Context, id int64) (*dto.WellnessPlanResponse, error) {
	plan, err := s.wellnessRepo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness plan: %w", err)
	}
	if plan == nil {
		return nil, domain.NewNotFoundError(domain.CodePlanNotFound, "wellness plan not found")
	}

	out := dto.NewWellnessPlanResponse(plan)
	return &out, nil
}

func (s *wellnessServiceImpl) ListPlans(ctx context.Context, userID *int64, limit, offset int) ([]dto.WellnessPlanResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.wellnessRepo.ListPlans(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness plans: %w", err)
	}

	return dto.NewWellnessPlanResponses(rows), nil
}

func (s *wellnessServiceImpl) UpdatePlan(ctx context.Context, id int64, req *dto.UpdateWellnessPlanRequest) (*dto.WellnessPlanResponse, error) {
	if errs := s.validator.ValidateUpdateWellnessPlan(req); len(errs) > 0 {
		return nil, errs
	}

	plan, err := s.wellnessRepo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get wellness plan: %w", err)
	}
	if plan == nil {
		return nil, domain.NewNotFoundError(domain.CodePlanNotFound, "wellness plan not found")
	}

	if req.PlanData == nil {
		out := dto.NewWellnessPlanResponse(plan)
		return &out, nil
	}

	plan.PlanData = *req.PlanData
	plan.UpdatedAt = util.NowRFC3339()

	if err := s.wellnessRepo.UpdatePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update wellness plan: %w", err)
	}

	out := dto.NewWellnessPlanResponse(plan)
	return &out, nil
}

func (s *wellnessServiceImpl) DeletePlan(ctx context.Context, id int64) error {
	deleted, err := s.wellnessRepo.DeletePlan(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete wellness plan: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodePlanNotFound, "wellness plan not found")
	}
	return nil
}

// GetWellnessPlanView loads a user's selected goals alongside their latest
// generated plan. Goals alone are not enough; a missing plan is an error
// even when goals exist.
func (s *wellnessServiceImpl) GetWellnessPlanView(ctx context.Context, userID int64) (*dto.WellnessPlanViewResponse, error) {
	var (
		goals []models.WellnessGoal
		plan  *models.WellnessPlan
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = s.wellnessRepo.ListAllGoalsByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load wellness goals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		plan, err = s.wellnessRepo.GetLatestPlanByUserID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load wellness plan: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if plan == nil {
		return nil, domain.NewNotFoundError(domain.CodePlanNotFound, "no wellness plan for user")
	}

	return &dto.WellnessPlanViewResponse{
		UserID: userID,
		Goals:  dto.NewWellnessGoalResponses(goals),
		Plan:   dto.NewWellnessPlanResponse(plan),
	}, nil
}
